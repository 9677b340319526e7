// Package navbar holds the navigation bar model: links, active-route
// matching, the brand context menu actions and the mobile overlay state.
package navbar

import (
	"strconv"
	"strings"
)

// Link is a single navigation entry.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Config is the brand and link set rendered by the bar.
type Config struct {
	Brand   string `yaml:"brand"`
	Tagline string `yaml:"tagline"`
	SiteURL string `yaml:"site_url"`
	Links   []Link `yaml:"links"`
}

// DefaultConfig returns the built-in brand and links.
func DefaultConfig() Config {
	return Config{
		Brand:   "Diskusi Pajak",
		Tagline: "Rujukan perpajakan, akuntansi, dan diskusi profesional dalam satu platform.",
		SiteURL: "https://diskusipajak.com",
		Links: []Link{
			{Label: "Beranda", Href: "/"},
			{Label: "Peraturan", Href: "/#peraturan"},
			{Label: "Akuntansi", Href: "/#akuntansi"},
			{Label: "Blog", Href: "/#blog"},
			{Label: "Tanya Jawab", Href: "/#tanya-jawab"},
		},
	}
}

// WithDefaults fills every empty field from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.Brand == "" {
		c.Brand = d.Brand
	}
	if c.Tagline == "" {
		c.Tagline = d.Tagline
	}
	if c.SiteURL == "" {
		c.SiteURL = d.SiteURL
	}
	if len(c.Links) == 0 {
		c.Links = d.Links
	}
	return c
}

// IsActive reports whether href should be highlighted for the current path.
// The root link matches only the root path; anchor links never match.
func IsActive(href, path string) bool {
	if href == "/" {
		return path == "/"
	}
	if !strings.HasPrefix(href, "/") || strings.Contains(href, "#") {
		return false
	}
	return strings.HasPrefix(path, href)
}

// Hidden reports whether the bar is suppressed on path. Pitch-deck embeds
// render without navigation.
func Hidden(path string) bool {
	return strings.Contains(path, "pitch")
}

// PixelRatio returns the --pixel-ratio CSS value for a display density,
// the inverse of the device pixel ratio. Non-positive ratios count as 1.
func PixelRatio(dpr float64) string {
	if dpr <= 0 {
		dpr = 1
	}
	return strconv.FormatFloat(1/dpr, 'f', -1, 64)
}

// ParseDPR reads a DPR client hint header value. Missing or malformed
// values yield 1.
func ParseDPR(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f <= 0 {
		return 1
	}
	return f
}
