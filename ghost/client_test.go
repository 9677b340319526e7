package ghost

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postJSON = `{
  "posts": [{
    "id": "64a1",
    "slug": "my-post",
    "title": "My Post",
    "excerpt": "Short summary",
    "feature_image": "https://cdn.example.com/cover.jpg",
    "published_at": "2024-03-05T10:00:00.000+00:00",
    "updated_at": "2024-03-06T08:30:00.000+00:00",
    "html": "<p>Hello <strong>world</strong></p>",
    "meta_title": null,
    "meta_description": "Meta description",
    "tags": [{"id": "1", "name": "Tax", "slug": "tax"}],
    "authors": [{"id": "a1", "name": "Rina"}, {"id": "a2", "name": "Budi"}]
  }]
}`

const pageJSON = `{
  "posts": [
    {"id": "1", "slug": "one", "title": "One", "html": "<p>ignored</p>"},
    {"id": "2", "slug": "two", "title": "Two"}
  ],
  "meta": {"pagination": {"page": 2, "limit": 2, "pages": 3, "total": 6, "next": 3, "prev": 1}}
}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Config{URL: srv.URL + "/", Key: "secret"}, srv.Client())
}

func TestPostBySlug(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ghost/api/content/posts/slug/my-post/", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		assert.Equal(t, "tags,authors", r.URL.Query().Get("include"))
		assert.Equal(t, "v5.0", r.Header.Get("Accept-Version"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(postJSON))
	})

	post, err := c.PostBySlug(context.Background(), "my-post")
	require.NoError(t, err)
	assert.Equal(t, "my-post", post.Slug)
	assert.Equal(t, "My Post", post.Title)
	assert.Equal(t, "", post.MetaTitle)
	assert.Equal(t, "Meta description", post.MetaDescription)
	assert.Equal(t, "<p>Hello <strong>world</strong></p>", post.HTML)
	assert.Equal(t, []string{"Tax"}, post.TagNames())
	assert.Equal(t, []string{"Rina", "Budi"}, post.AuthorNames())
}

func TestPostBySlugNotFound(t *testing.T) {
	tests := []struct {
		name string
		h    http.HandlerFunc
	}{
		{
			name: "404 status",
			h: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"errors":[{"message":"Resource not found"}]}`, http.StatusNotFound)
			},
		},
		{
			name: "empty posts",
			h: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"posts":[]}`))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.h)
			_, err := c.PostBySlug(context.Background(), "missing")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestNotConfiguredMakesNoRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	for _, cfg := range []Config{
		{URL: srv.URL},
		{Key: "secret"},
		{},
	} {
		c := NewClient(cfg, srv.Client())
		assert.False(t, c.Configured())

		_, err := c.PostBySlug(context.Background(), "anything")
		assert.ErrorIs(t, err, ErrNotConfigured)

		_, err = c.Posts(context.Background(), 1, 6)
		assert.ErrorIs(t, err, ErrNotConfigured)
	}
	assert.Equal(t, int32(0), hits.Load())
}

func TestPosts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ghost/api/content/posts/", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(pageJSON))
	})

	page, err := c.Posts(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, "one", page.Posts[0].Slug)
	assert.Equal(t, "two", page.Posts[1].Slug)
	require.NotNil(t, page.Pagination)
	assert.Equal(t, Pagination{Page: 2, Pages: 3, Total: 6}, *page.Pagination)
}

func TestPostsClampsArguments(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"posts":[]}`))
	})

	page, err := c.Posts(context.Background(), 0, 5000)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Nil(t, page.Pagination)
}

func TestFetchFailures(t *testing.T) {
	tests := []struct {
		name string
		h    http.HandlerFunc
	}{
		{
			name: "server error",
			h: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "bad json",
			h: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"posts": [`))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.h)

			_, err := c.Posts(context.Background(), 1, 6)
			require.Error(t, err)
			assert.False(t, errors.Is(err, ErrNotFound))
			assert.False(t, errors.Is(err, ErrNotConfigured))

			_, err = c.PostBySlug(context.Background(), "x")
			require.Error(t, err)
			assert.False(t, errors.Is(err, ErrNotFound))
		})
	}
}
