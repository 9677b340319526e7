package views

import (
	"bytes"
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/diskusipajak/ghostblog/ghost"
)

const calendarIcon = `<svg class="icon" viewBox="0 0 24 24" aria-hidden="true"><path d="M8 2v4M16 2v4M3 10h18M5 4h14a2 2 0 0 1 2 2v14a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V6a2 2 0 0 1 2-2Z" fill="none" stroke="currentColor" stroke-width="2"/></svg>`

// Index renders the blog index: heading, the first page of cards and the
// "Show more posts" control.
func Index(site Site, posts []ghost.PostSummary, cursor FeedCursor) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		e := templ.EscapeString[string]

		buf.WriteString(`<main class="index-page"><section id="blog" class="index-container">`)
		buf.WriteString(`<header class="index-header"><h1 class="index-title">` + e(site.Name) + `</h1>`)
		if site.Description != "" {
			buf.WriteString(`<p class="index-description">` + e(site.Description) + `</p>`)
		}
		buf.WriteString(`</header>`)

		if err := Feed(posts, cursor).Render(ctx, &buf); err != nil {
			return err
		}

		buf.WriteString(`</section></main>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Feed renders the card grid followed by the feed control.
func Feed(posts []ghost.PostSummary, cursor FeedCursor) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<div class="feed" data-feed>`)
		if len(posts) == 0 {
			buf.WriteString(`<p class="feed-empty">No posts yet.</p>`)
		}
		buf.WriteString(`<div id="feed-grid" class="feed-grid">`)
		for _, p := range posts {
			if err := PostCard(p).Render(ctx, &buf); err != nil {
				return err
			}
		}
		buf.WriteString(`</div>`)
		if err := FeedControl(cursor).Render(ctx, &buf); err != nil {
			return err
		}
		buf.WriteString(`</div>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// FeedChunk is the response of the "load more" fragment endpoint: the newly
// appended cards and the replacement control.
func FeedChunk(added []ghost.PostSummary, cursor FeedCursor) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<div id="feed-chunk">`)
		for _, p := range added {
			if err := PostCard(p).Render(ctx, &buf); err != nil {
				return err
			}
		}
		buf.WriteString(`</div>`)
		if err := FeedControl(cursor).Render(ctx, &buf); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// FeedControl renders the error line and, while more pages remain, the
// "Show more posts" button.
func FeedControl(cursor FeedCursor) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		e := templ.EscapeString[string]

		buf.WriteString(`<div id="feed-control" class="feed-control">`)
		if cursor.Error != "" {
			buf.WriteString(`<p class="feed-error" role="alert">` + e(cursor.Error) + `</p>`)
		}
		if cursor.HasMore() {
			next := "/blog/more/?page=" + strconv.Itoa(cursor.Page) + "&pages=" + strconv.Itoa(cursor.Pages)
			buf.WriteString(`<div class="feed-more"><button type="button" class="btn feed-more-button" data-more-url="` + e(next) + `">Show more posts</button></div>`)
		}
		buf.WriteString(`</div>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// PostCard renders one summary as a linked card.
func PostCard(p ghost.PostSummary) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		e := templ.EscapeString[string]

		buf.WriteString(`<a class="post-card-link" href="` + e(PostPath(p.Slug)) + `"><article class="post-card">`)
		buf.WriteString(`<div class="post-card-cover"><img src="` + e(CoverImage(p)) + `" alt="` + e(p.Title) + `" loading="lazy" sizes="(min-width: 1024px) 480px, (min-width: 640px) 50vw, 100vw"></div>`)
		buf.WriteString(`<div class="post-card-header">`)
		if names := p.TagNames(); len(names) > 0 {
			buf.WriteString(`<div class="post-card-tags">`)
			for _, name := range names {
				buf.WriteString(`<span class="badge badge-secondary">` + e(name) + `</span>`)
			}
			buf.WriteString(`</div>`)
		}
		buf.WriteString(`<h2 class="post-card-title line-clamp-2">` + e(p.Title) + `</h2>`)
		if date := ShortDate(p.PublishedAt); date != "" {
			buf.WriteString(`<span class="badge badge-outline post-card-date">` + calendarIcon + `<span>` + e(date) + `</span></span>`)
		}
		buf.WriteString(`</div>`)
		if p.Excerpt != "" {
			buf.WriteString(`<div class="post-card-footer"><p class="post-card-excerpt line-clamp-3">` + e(p.Excerpt) + `</p></div>`)
		}
		buf.WriteString(`</article></a>`)

		_, err := w.Write(buf.Bytes())
		return err
	})
}
