package views

import "github.com/diskusipajak/ghostblog/navbar"

// Site holds site-wide settings every page template reads.
type Site struct {
	Name        string // SITE_NAME
	URL         string // SITE_URL
	Description string // SITE_DESCRIPTION
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // og:image
	JSONLD      string
}

// Nav is the per-request navigation bar state.
type Nav struct {
	Config     navbar.Config
	Path       string
	MenuOpen   bool
	PixelRatio string
	BodyStyle  string
}

// FeedCursor is what the "Show more posts" control needs to request the
// next page and to report the last failure.
type FeedCursor struct {
	Page  int
	Pages int
	Error string
}

// HasMore reports whether the control should be shown.
func (f FeedCursor) HasMore() bool {
	return f.Page < f.Pages
}
