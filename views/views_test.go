package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diskusipajak/ghostblog/ghost"
	"github.com/diskusipajak/ghostblog/navbar"
)

func render(t *testing.T, c templ.Component) (string, *goquery.Document) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return buf.String(), doc
}

func samplePost() ghost.Post {
	return ghost.Post{
		PostSummary: ghost.PostSummary{
			ID:           "1",
			Slug:         "my-post",
			Title:        "My <Post>",
			Excerpt:      "Short summary",
			FeatureImage: "https://cdn.example.com/cover.jpg",
			PublishedAt:  "2024-03-05T10:00:00.000+00:00",
			UpdatedAt:    "2024-04-11T08:30:00Z",
			Tags:         []ghost.Tag{{ID: "1", Name: "Tax"}},
			Authors:      []ghost.Author{{Name: "Rina"}, {Name: "Budi"}},
		},
		HTML: `<h2>Heading</h2><p onclick="x()">Body <em>text</em></p>`,
	}
}

func TestDates(t *testing.T) {
	assert.Equal(t, "March 5, 2024", LongDate("2024-03-05T10:00:00.000+00:00"))
	assert.Equal(t, "Mar 2024", ShortDate("2024-03-05T10:00:00Z"))
	assert.Equal(t, "", LongDate(""))
	assert.Equal(t, "", ShortDate("not a date"))
}

func TestPostArticle(t *testing.T) {
	html, doc := render(t, PostArticle(samplePost()))

	tags := doc.Find(".post-tags .tag-pill")
	require.Equal(t, 1, tags.Length())
	assert.Equal(t, "Tax", tags.Text())

	assert.Equal(t, "My <Post>", doc.Find("h1.post-title").Text())
	assert.Equal(t, "By Rina, Budi", doc.Find(".post-authors").Text())
	assert.Equal(t, "March 5, 2024", doc.Find("time.post-published").Text())
	assert.Equal(t, "Updated April 11, 2024", doc.Find(".post-updated").Text())
	assert.Equal(t, "Short summary", doc.Find(".post-excerpt").Text())

	src, _ := doc.Find(".post-cover img").Attr("src")
	assert.Equal(t, "https://cdn.example.com/cover.jpg", src)

	// Body markup is inserted as-is.
	assert.Contains(t, html, `<h2>Heading</h2><p onclick="x()">Body <em>text</em></p>`)
}

func TestPostArticleOptionalParts(t *testing.T) {
	p := samplePost()
	p.Tags = nil
	p.Authors = nil
	p.FeatureImage = ""
	p.Excerpt = ""
	p.UpdatedAt = ""

	_, doc := render(t, PostArticle(p))
	assert.Equal(t, 0, doc.Find(".post-tags").Length())
	assert.Equal(t, 0, doc.Find(".post-authors").Length())
	assert.Equal(t, 0, doc.Find(".post-cover").Length())
	assert.Equal(t, 0, doc.Find(".post-excerpt").Length())
	assert.Equal(t, 0, doc.Find(".post-updated").Length())
}

func TestFallbackScreens(t *testing.T) {
	_, doc := render(t, NotConfigured())
	assert.Equal(t, "Ghost CMS not configured", doc.Find("h1").Text())

	_, doc = render(t, PostNotFound())
	assert.Equal(t, "Post not found", doc.Find("h1").Text())
}

func TestPostCardPlaceholder(t *testing.T) {
	_, doc := render(t, PostCard(ghost.PostSummary{Slug: "a b", Title: "No cover", FeatureImage: "javascript:alert(1)"}))

	src, _ := doc.Find("img").Attr("src")
	assert.Equal(t, PlaceholderImage, src)
	href, _ := doc.Find("a.post-card-link").Attr("href")
	assert.Equal(t, "/blog/a%20b/", href)
	assert.Equal(t, 0, doc.Find(".post-card-tags").Length())
	assert.Equal(t, 0, doc.Find(".post-card-date").Length())
}

func TestPostCard(t *testing.T) {
	_, doc := render(t, PostCard(samplePost().PostSummary))

	assert.Equal(t, "Tax", doc.Find(".post-card-tags .badge").Text())
	assert.Equal(t, "Mar 2024", doc.Find(".post-card-date").Text())
	assert.True(t, doc.Find(".post-card-title").HasClass("line-clamp-2"))
	assert.True(t, doc.Find(".post-card-excerpt").HasClass("line-clamp-3"))
}

func TestFeedControl(t *testing.T) {
	tests := []struct {
		name       string
		cursor     FeedCursor
		wantButton bool
		wantLabel  string
		wantError  bool
	}{
		{name: "more pages", cursor: FeedCursor{Page: 1, Pages: 3}, wantButton: true, wantLabel: "Show more posts"},
		{name: "last page", cursor: FeedCursor{Page: 3, Pages: 3}},
		{name: "error keeps button", cursor: FeedCursor{Page: 1, Pages: 3, Error: "Unable"}, wantButton: true, wantLabel: "Show more posts", wantError: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, doc := render(t, FeedControl(tt.cursor))
			btn := doc.Find("button.feed-more-button")
			assert.Equal(t, tt.wantButton, btn.Length() == 1)
			if tt.wantButton {
				assert.Equal(t, tt.wantLabel, btn.Text())
				url, _ := btn.Attr("data-more-url")
				assert.Equal(t, "/blog/more/?page=1&pages=3", url)
			}
			assert.Equal(t, tt.wantError, doc.Find(".feed-error").Length() == 1)
		})
	}
}

func TestNavbar(t *testing.T) {
	nav := Nav{Config: navbar.DefaultConfig(), Path: "/"}
	_, doc := render(t, Navbar(nav))

	links := doc.Find(".nav-links a")
	assert.Equal(t, 5, links.Length())
	assert.True(t, links.First().HasClass("is-active"))
	assert.Equal(t, 1, doc.Find(".nav-links a.is-active").Length())

	copies := doc.Find("[data-copy]")
	require.Equal(t, 2, copies.Length())
	v, _ := copies.First().Attr("data-copy")
	assert.Equal(t, "Diskusi Pajak", v)

	ext := doc.Find(`.context-menu a[target="_blank"]`)
	href, _ := ext.Attr("href")
	assert.Equal(t, "https://diskusipajak.com", href)

	_, hidden := doc.Find("[data-menu-overlay]").Attr("hidden")
	assert.True(t, hidden)
}

func TestNavbarMenuOpen(t *testing.T) {
	_, doc := render(t, Navbar(Nav{Config: navbar.DefaultConfig(), Path: "/blog/x/", MenuOpen: true}))
	_, hidden := doc.Find("[data-menu-overlay]").Attr("hidden")
	assert.False(t, hidden)
	assert.Equal(t, 0, doc.Find("a.is-active").Length())
}

func TestNavbarHiddenOnPitch(t *testing.T) {
	html, _ := render(t, Navbar(Nav{Config: navbar.DefaultConfig(), Path: "/pitch/deck-1"}))
	assert.Empty(t, html)
}

func TestLayout(t *testing.T) {
	meta := PageMeta{Title: "Hello", Description: "Desc", URL: "https://example.com/blog/x/", OGType: "article", JSONLD: `{"@type":"BlogPosting"}`}
	nav := Nav{Config: navbar.DefaultConfig(), Path: "/", PixelRatio: "0.5", BodyStyle: "overflow:hidden"}
	_, doc := render(t, Layout(Site{Name: "Blog"}, meta, nav, NotConfigured()))

	assert.Equal(t, "Hello", doc.Find("title").Text())
	d, _ := doc.Find(`meta[name="description"]`).Attr("content")
	assert.Equal(t, "Desc", d)
	style, _ := doc.Find("html").Attr("style")
	assert.Equal(t, "--pixel-ratio:0.5", style)
	bodyStyle, _ := doc.Find("body").Attr("style")
	assert.Equal(t, "overflow:hidden", bodyStyle)
	assert.Equal(t, `{"@type":"BlogPosting"}`, doc.Find(`script[type="application/ld+json"]`).Text())
	assert.Equal(t, 1, doc.Find("header.site-header").Length())
	assert.Equal(t, "Ghost CMS not configured", doc.Find("main h1").Text())
}

func TestLayoutDefaultsTitleToSiteName(t *testing.T) {
	_, doc := render(t, Layout(Site{Name: "Ghost CMS Blog"}, PageMeta{}, Nav{Config: navbar.DefaultConfig(), Path: "/pitch"}, nil))
	assert.Equal(t, "Ghost CMS Blog", doc.Find("title").Text())
	assert.Equal(t, 0, doc.Find("header.site-header").Length())
	assert.Equal(t, 0, doc.Find(`meta[name="description"]`).Length())
}
