package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/diskusipajak/ghostblog/ghost"
)

// HTTPFetcher reads pages from the site's own /api/posts endpoint.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPFetcher returns a fetcher for the site at baseURL.
func NewHTTPFetcher(baseURL string, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{BaseURL: strings.TrimRight(baseURL, "/"), Client: client}
}

// FetchPage requests GET /api/posts?page=N&limit=L. Any non-2xx status is
// an error.
func (h *HTTPFetcher) FetchPage(ctx context.Context, page, limit int) (ghost.PostsPage, error) {
	q := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.BaseURL+"/api/posts?"+q.Encode(), nil)
	if err != nil {
		return ghost.PostsPage{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		return ghost.PostsPage{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ghost.PostsPage{}, fmt.Errorf("failed to fetch posts: status %d", resp.StatusCode)
	}

	var out ghost.PostsPage
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ghost.PostsPage{}, fmt.Errorf("decode posts: %w", err)
	}
	return out, nil
}
