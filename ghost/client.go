// Package ghost is a read-only client for the Ghost Content API.
package ghost

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultVersion = "v5.0"
	maxLimit       = 100
	include        = "tags,authors"
)

var (
	// ErrNotConfigured is returned without a network call when the API URL
	// or key is missing.
	ErrNotConfigured = errors.New("ghost: content api not configured")
	// ErrNotFound is returned when no post matches the requested slug.
	ErrNotFound = errors.New("ghost: post not found")
)

// Config holds the Content API endpoint and credential.
type Config struct {
	URL     string        // GHOST_CONTENT_API_URL, e.g. https://blog.example.com
	Key     string        // GHOST_CONTENT_API_KEY
	Version string        // GHOST_API_VERSION (default "v5.0")
	Timeout time.Duration // zero keeps the transport defaults
}

// ConfigFromEnv reads the Content API settings from the environment.
func ConfigFromEnv() Config {
	return Config{
		URL:     strings.TrimSpace(os.Getenv("GHOST_CONTENT_API_URL")),
		Key:     strings.TrimSpace(os.Getenv("GHOST_CONTENT_API_KEY")),
		Version: strings.TrimSpace(os.Getenv("GHOST_API_VERSION")),
	}
}

// Configured reports whether both the URL and key are present.
func (c Config) Configured() bool {
	return c.URL != "" && c.Key != ""
}

// Client fetches posts from the Ghost Content API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a Client. A nil httpClient gets a default one using
// cfg.Timeout.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if cfg.Version == "" {
		cfg.Version = defaultVersion
	}
	cfg.URL = strings.TrimRight(cfg.URL, "/")
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{cfg: cfg, httpClient: httpClient}
}

// Configured reports whether the client can talk to the CMS at all.
func (c *Client) Configured() bool {
	return c.cfg.Configured()
}

// PostBySlug returns the post with the given slug.
func (c *Client) PostBySlug(ctx context.Context, slug string) (Post, error) {
	if !c.Configured() {
		return Post{}, ErrNotConfigured
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return Post{}, ErrNotFound
	}

	var env postsEnvelope
	q := url.Values{"include": {include}}
	if err := c.get(ctx, "posts/slug/"+url.PathEscape(slug)+"/", q, &env); err != nil {
		return Post{}, fmt.Errorf("get post %q: %w", slug, err)
	}
	if len(env.Posts) == 0 {
		return Post{}, ErrNotFound
	}
	return env.Posts[0], nil
}

// Posts returns one page of post summaries, newest first.
func (c *Client) Posts(ctx context.Context, page, limit int) (PostsPage, error) {
	if !c.Configured() {
		return PostsPage{}, ErrNotConfigured
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	var env postsEnvelope
	q := url.Values{
		"include": {include},
		"page":    {strconv.Itoa(page)},
		"limit":   {strconv.Itoa(limit)},
	}
	if err := c.get(ctx, "posts/", q, &env); err != nil {
		return PostsPage{}, fmt.Errorf("list posts page %d: %w", page, err)
	}

	out := PostsPage{Posts: make([]PostSummary, 0, len(env.Posts))}
	for _, p := range env.Posts {
		out.Posts = append(out.Posts, p.PostSummary)
	}
	if env.Meta != nil && env.Meta.Pagination != nil {
		pg := *env.Meta.Pagination
		out.Pagination = &pg
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	q.Set("key", c.cfg.Key)
	endpoint := c.cfg.URL + "/ghost/api/content/" + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Version", c.cfg.Version)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
