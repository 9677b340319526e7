package ghostblog

import (
	"regexp"
	"strings"
)

// knownCrawlers is checked in order; specific names come before the
// generic patterns.
var knownCrawlers = []struct{ pattern, name string }{
	{"googlebot", "Googlebot"},
	{"bingbot", "Bingbot"},
	{"yandex", "Yandex"},
	{"baidu", "Baidu"},
	{"duckduckbot", "DuckDuckBot"},
	{"facebookexternalhit", "Facebook"},
	{"twitterbot", "Twitterbot"},
	{"linkedinbot", "LinkedIn"},
	{"ahrefsbot", "Ahrefs"},
	{"semrushbot", "SEMrush"},
	{"mj12bot", "Majestic"},
	{"dotbot", "Moz"},
	{"slurp", "Yahoo Slurp"},
	{"crawler", "Generic Crawler"},
	{"spider", "Generic Spider"},
	{"scrape", "Generic Scraper"},
	{"bot", "Other Bot"},
}

// crawlerName returns a display name for crawler user agents and "" for
// everything else.
func crawlerName(ua string) string {
	ua = strings.ToLower(ua)
	for _, c := range knownCrawlers {
		if strings.Contains(ua, c.pattern) {
			return c.name
		}
	}
	return ""
}

var referrerDomainRegex = regexp.MustCompile(`^https?://(?:www\.)?([^/:]+)`)

// referrerDomain reduces a Referer header to its host, or "" when absent
// or unparseable.
func referrerDomain(ref string) string {
	m := referrerDomainRegex.FindStringSubmatch(ref)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}
