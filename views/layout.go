package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps body in the document shell: head metadata, navigation bar
// and site assets.
func Layout(site Site, meta PageMeta, nav Nav, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		e := templ.EscapeString[string]

		title := meta.Title
		if title == "" {
			title = site.Name
		}
		description := meta.Description
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}

		buf.WriteString(`<!DOCTYPE html><html lang="en"`)
		if nav.PixelRatio != "" {
			buf.WriteString(` style="--pixel-ratio:` + e(nav.PixelRatio) + `"`)
		}
		buf.WriteString(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		buf.WriteString(`<title>` + e(title) + `</title>`)
		if description != "" {
			buf.WriteString(`<meta name="description" content="` + e(description) + `">`)
			buf.WriteString(`<meta property="og:description" content="` + e(description) + `">`)
		}
		buf.WriteString(`<meta property="og:title" content="` + e(title) + `">`)
		buf.WriteString(`<meta property="og:type" content="` + e(ogType) + `">`)
		buf.WriteString(`<meta property="og:site_name" content="` + e(site.Name) + `">`)
		if meta.URL != "" {
			buf.WriteString(`<link rel="canonical" href="` + e(meta.URL) + `">`)
			buf.WriteString(`<meta property="og:url" content="` + e(meta.URL) + `">`)
		}
		if img := imageURL(meta.Image); img != "" {
			buf.WriteString(`<meta property="og:image" content="` + e(img) + `">`)
		}
		buf.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + e(site.Name) + `" href="/feed.xml">`)
		buf.WriteString(`<link rel="stylesheet" href="/public/site.css">`)
		buf.WriteString(`<script src="/public/site.js" defer></script>`)
		if meta.JSONLD != "" {
			buf.WriteString(`<script type="application/ld+json">` + meta.JSONLD + `</script>`)
		}
		buf.WriteString(`</head><body class="site-body"`)
		if nav.BodyStyle != "" {
			buf.WriteString(` style="` + e(nav.BodyStyle) + `"`)
		}
		buf.WriteString(`>`)

		if err := Navbar(nav).Render(ctx, &buf); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, &buf); err != nil {
				return err
			}
		}
		buf.WriteString(`</body></html>`)

		_, err := w.Write(buf.Bytes())
		return err
	})
}
