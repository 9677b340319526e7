package views

import (
	"net/url"
	"strings"
	"time"

	"github.com/diskusipajak/ghostblog/ghost"
)

// PlaceholderImage is served when a post has no feature image.
const PlaceholderImage = "/public/placeholder.jpg"

// LongDate formats an RFC 3339 timestamp as "January 2, 2006".
// Empty or unparseable input yields "".
func LongDate(iso string) string {
	return formatDate(iso, "January 2, 2006")
}

// ShortDate formats an RFC 3339 timestamp as "Jan 2006".
func ShortDate(iso string) string {
	return formatDate(iso, "Jan 2006")
}

func formatDate(iso, layout string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return ""
	}
	return t.Format(layout)
}

// JoinAuthors joins author names with ", ".
func JoinAuthors(p ghost.PostSummary) string {
	return strings.Join(p.AuthorNames(), ", ")
}

// CoverImage returns the feature image, or the bundled placeholder.
func CoverImage(p ghost.PostSummary) string {
	if u := imageURL(p.FeatureImage); u != "" {
		return u
	}
	return PlaceholderImage
}

// PostPath returns the detail route for a slug.
func PostPath(slug string) string {
	return "/blog/" + url.PathEscape(slug) + "/"
}

// imageURL accepts absolute http(s) URLs and site-relative paths only.
func imageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if u.Scheme == "http" || u.Scheme == "https" {
		return u.String()
	}
	return ""
}

func classes(base string, extra string, on bool) string {
	if on {
		return base + " " + extra
	}
	return base
}
