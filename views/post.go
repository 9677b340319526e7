package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/diskusipajak/ghostblog/ghost"
)

// PostArticle renders a found post. The CMS is the trusted source of the
// body markup, so post.HTML is written verbatim.
func PostArticle(post ghost.Post) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		e := templ.EscapeString[string]

		buf.WriteString(`<main class="post-page"><div class="post-container">`)
		buf.WriteString(`<a href="/" class="back-link">← Back to all posts</a>`)

		buf.WriteString(`<header class="post-header">`)
		if names := post.TagNames(); len(names) > 0 {
			buf.WriteString(`<ul class="post-tags">`)
			for _, name := range names {
				buf.WriteString(`<li class="tag-pill">` + e(name) + `</li>`)
			}
			buf.WriteString(`</ul>`)
		}
		buf.WriteString(`<h1 class="post-title">` + e(post.Title) + `</h1>`)
		buf.WriteString(`<div class="post-meta">`)
		if authors := JoinAuthors(post.PostSummary); authors != "" {
			buf.WriteString(`<span class="post-authors">By ` + e(authors) + `</span>`)
		}
		if published := LongDate(post.PublishedAt); published != "" {
			buf.WriteString(`<time class="post-published" datetime="` + e(post.PublishedAt) + `">` + e(published) + `</time>`)
		}
		if updated := LongDate(post.UpdatedAt); updated != "" {
			buf.WriteString(`<span class="post-updated">Updated ` + e(updated) + `</span>`)
		}
		buf.WriteString(`</div></header>`)

		if img := imageURL(post.FeatureImage); img != "" {
			buf.WriteString(`<figure class="post-cover"><img src="` + e(img) + `" alt="` + e(post.Title) + `" sizes="(min-width: 1024px) 80vw, 100vw"></figure>`)
		}
		if post.Excerpt != "" {
			buf.WriteString(`<p class="post-excerpt">` + e(post.Excerpt) + `</p>`)
		}

		buf.WriteString(`<article class="post-body prose">`)
		buf.WriteString(post.HTML)
		buf.WriteString(`</article>`)

		buf.WriteString(`</div></main>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// NotConfigured is shown wherever content would render while the Content
// API credentials are missing.
func NotConfigured() templ.Component {
	return fallbackScreen("Ghost CMS not configured", "Set the Ghost Content API credentials to display blog posts.")
}

// PostNotFound is shown for slugs the CMS does not know.
func PostNotFound() templ.Component {
	return fallbackScreen("Post not found", "We couldn’t find the article you’re looking for.")
}

// NotFound is the generic 404 page.
func NotFound() templ.Component {
	return fallbackScreen("Page not found", "The page you’re looking for doesn’t exist.")
}

// ServerError is the generic 5xx page.
func ServerError() templ.Component {
	return fallbackScreen("Something went wrong", "Please try again in a moment.")
}

func fallbackScreen(title, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		e := templ.EscapeString[string]
		_, err := io.WriteString(w, `<main class="fallback"><div class="fallback-inner">`+
			`<h1 class="fallback-title">`+e(title)+`</h1>`+
			`<p class="fallback-message">`+e(message)+`</p>`+
			`</div></main>`)
		return err
	})
}
