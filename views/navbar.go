package views

import (
	"bytes"
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/diskusipajak/ghostblog/navbar"
)

const (
	hamburgerIcon = `<svg fill="none" height="13" width="18" xmlns="http://www.w3.org/2000/svg" aria-hidden="true"><path d="M0 12.195v-2.007h18v2.007H0Zm0-5.017V5.172h18v2.006H0Zm0-5.016V.155h18v2.007H0Z" fill="currentColor"/></svg>`
	closeIcon     = `<svg class="icon-close" height="24" width="24" xmlns="http://www.w3.org/2000/svg" aria-hidden="true"><path d="M0 0h24v24H0V0z" fill="none"/><path d="M19 6.41 17.59 5 12 10.59 6.41 5 5 6.41 10.59 12 5 17.59 6.41 19 12 13.41 17.59 19 19 17.59 13.41 12 19 6.41z"/></svg>`
)

var actionIcons = map[string]string{
	"copy":          `<svg class="icon" viewBox="0 0 24 24" aria-hidden="true"><path d="M16 1H4a2 2 0 0 0-2 2v14h2V3h12V1Zm3 4H8a2 2 0 0 0-2 2v14a2 2 0 0 0 2 2h11a2 2 0 0 0 2-2V7a2 2 0 0 0-2-2Zm0 16H8V7h11v14Z" fill="currentColor"/></svg>`,
	"description":   `<svg class="icon" viewBox="0 0 24 24" aria-hidden="true"><path d="M8 16h8v2H8v-2Zm0-4h8v2H8v-2Zm6-10H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V8l-6-6Zm4 18H6V4h7v5h5v11Z" fill="currentColor"/></svg>`,
	"external-link": `<svg class="icon" viewBox="0 0 24 24" aria-hidden="true"><path d="M19 19H5V5h7V3H5a2 2 0 0 0-2 2v14a2 2 0 0 0 2 2h14a2 2 0 0 0 2-2v-7h-2v7ZM14 3v2h3.59l-9.83 9.83 1.41 1.41L19 6.41V10h2V3h-7Z" fill="currentColor"/></svg>`,
}

// Navbar renders the fixed header. It renders nothing on pitch routes.
func Navbar(nav Nav) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if navbar.Hidden(nav.Path) {
			return nil
		}
		var buf bytes.Buffer
		e := templ.EscapeString[string]
		cfg := nav.Config

		buf.WriteString(`<header class="site-header" data-navbar>`)
		buf.WriteString(`<nav class="navbar">`)

		// Brand with context menu.
		buf.WriteString(`<div class="brand" data-context-menu>`)
		buf.WriteString(`<a href="/" class="brand-link"><span class="brand-mark">` + e(cfg.Brand) + `</span></a>`)
		buf.WriteString(`<div class="context-menu" role="menu" hidden>`)
		for _, a := range cfg.Actions() {
			icon := actionIcons[a.Icon]
			switch a.Kind {
			case navbar.ActionCopy:
				buf.WriteString(`<button type="button" role="menuitem" class="context-menu-item" data-copy="` + e(a.Value) + `">` +
					icon + `<span>` + e(a.Label) + `</span></button>`)
			case navbar.ActionOpen:
				buf.WriteString(`<a role="menuitem" class="context-menu-item" href="` + e(a.Value) + `" target="_blank" rel="noopener noreferrer">` +
					icon + `<span>` + e(a.Label) + `</span></a>`)
			}
		}
		buf.WriteString(`</div></div>`)

		// Desktop links.
		buf.WriteString(`<ul class="nav-links">`)
		for _, l := range cfg.Links {
			cls := classes("nav-link", "is-active", navbar.IsActive(l.Href, nav.Path))
			buf.WriteString(`<li><a class="` + cls + `" href="` + e(l.Href) + `">` + e(l.Label) + `</a></li>`)
		}
		buf.WriteString(`</ul>`)

		buf.WriteString(`<a class="menu-toggle" href="` + e(nav.Path) + `?menu=open" data-menu-toggle aria-label="Open menu">` + hamburgerIcon + `</a>`)
		buf.WriteString(`</nav>`)

		// Mobile overlay.
		buf.WriteString(`<div class="menu-overlay" data-menu-overlay`)
		if !nav.MenuOpen {
			buf.WriteString(` hidden`)
		}
		buf.WriteString(`><div class="menu-overlay-head">`)
		buf.WriteString(`<a href="/" class="menu-logo" data-menu-close><span class="sr-only">` + e(cfg.Brand) + `</span><span class="brand-mark small">` + e(initials(cfg.Brand)) + `</span></a>`)
		buf.WriteString(`<a class="menu-close" href="` + e(nav.Path) + `" data-menu-close aria-label="Close menu">` + closeIcon + `</a>`)
		buf.WriteString(`</div><div class="menu-overlay-body"><ul class="menu-list">`)
		for i, l := range cfg.Links {
			cls := classes("menu-link", "is-active", navbar.IsActive(l.Href, nav.Path))
			buf.WriteString(`<li class="menu-item" style="--stagger:` + strconv.Itoa(i) + `"><a class="` + cls + `" href="` + e(l.Href) + `" data-menu-close>` + e(l.Label) + `</a></li>`)
		}
		buf.WriteString(`</ul></div></div>`)

		buf.WriteString(`</header>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func initials(s string) string {
	var out []rune
	start := true
	for _, r := range s {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, r)
			start = false
		}
	}
	return string(out)
}
