// Package feed implements the incremental "Show more posts" list: a page
// cursor over the post collection that appends one page per LoadMore call.
package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/diskusipajak/ghostblog/ghost"
)

// PageSize is the number of posts requested per page.
const PageSize = 6

// LoadErrorMessage is shown next to the loaded posts when a page fails.
const LoadErrorMessage = "Unable to load more posts. Please try again."

var (
	// ErrBusy is returned when LoadMore is called while a load is in flight.
	ErrBusy = errors.New("feed: load already in progress")
	// ErrNoMore is returned when the cursor is already on the last page.
	ErrNoMore = errors.New("feed: no more pages")
)

// Fetcher retrieves one page of post summaries.
type Fetcher interface {
	FetchPage(ctx context.Context, page, limit int) (ghost.PostsPage, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, page, limit int) (ghost.PostsPage, error)

// FetchPage calls f.
func (f FetcherFunc) FetchPage(ctx context.Context, page, limit int) (ghost.PostsPage, error) {
	return f(ctx, page, limit)
}

// Option configures a Feed.
type Option func(*Feed)

// WithLimit overrides PageSize.
func WithLimit(n int) Option {
	return func(f *Feed) {
		if n > 0 {
			f.limit = n
		}
	}
}

// Feed holds the accumulated posts and the pagination cursor. It is safe
// for concurrent use; only one LoadMore runs at a time.
type Feed struct {
	mu      sync.Mutex
	posts   []ghost.PostSummary
	page    int
	pages   int
	loading bool
	errMsg  string
	limit   int
	fetcher Fetcher
}

// New creates a Feed seeded with the server-rendered first page.
func New(initial []ghost.PostSummary, page, totalPages int, fetcher Fetcher, opts ...Option) *Feed {
	f := &Feed{
		posts:   append([]ghost.PostSummary(nil), initial...),
		page:    page,
		pages:   totalPages,
		limit:   PageSize,
		fetcher: fetcher,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// LoadMore requests the page after the current one and appends it.
//
// It returns the newly appended posts. An empty page ends the feed: page
// and total pages are clamped so HasMore reports false. On failure the
// posts and cursor are left as they were and ErrorMessage is set, so the
// next call retries the same page.
func (f *Feed) LoadMore(ctx context.Context) ([]ghost.PostSummary, error) {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return nil, ErrBusy
	}
	if f.page >= f.pages {
		f.mu.Unlock()
		return nil, ErrNoMore
	}
	f.loading = true
	f.errMsg = ""
	next := f.page + 1
	limit := f.limit
	f.mu.Unlock()

	defer f.release()

	resp, err := f.fetcher.FetchPage(ctx, next, limit)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.errMsg = LoadErrorMessage
		return nil, fmt.Errorf("feed: load page %d: %w", next, err)
	}

	if len(resp.Posts) == 0 {
		fallback := max(next-1, f.page)
		f.page = fallback
		f.pages = fallback
		return nil, nil
	}

	f.posts = append(f.posts, resp.Posts...)
	if resp.Pagination != nil {
		f.page = resp.Pagination.Page
		f.pages = resp.Pagination.Pages
	} else {
		f.page = next
	}
	return resp.Posts, nil
}

func (f *Feed) release() {
	f.mu.Lock()
	f.loading = false
	f.mu.Unlock()
}

// Posts returns a copy of the accumulated posts.
func (f *Feed) Posts() []ghost.PostSummary {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ghost.PostSummary(nil), f.posts...)
}

// Len returns the number of accumulated posts.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.posts)
}

// Page returns the last loaded page number.
func (f *Feed) Page() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page
}

// TotalPages returns the known page count.
func (f *Feed) TotalPages() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pages
}

// HasMore reports whether another page can be requested.
func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page < f.pages
}

// Loading reports whether a LoadMore call is in flight.
func (f *Feed) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// ErrorMessage returns the user-facing message of the last failed load,
// or "" after a successful one.
func (f *Feed) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}
