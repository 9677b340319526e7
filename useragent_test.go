package ghostblog

import "testing"

func TestCrawlerName(t *testing.T) {
	tests := []struct {
		ua   string
		want string
	}{
		{"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", "Googlebot"},
		{"Mozilla/5.0 (compatible; bingbot/2.0)", "Bingbot"},
		{"facebookexternalhit/1.1", "Facebook"},
		{"SomeCrawler/1.0", "Generic Crawler"},
		{"FeedFetcher-bot", "Other Bot"},
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Safari/604.1", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := crawlerName(tt.ua); got != tt.want {
			t.Fatalf("crawlerName(%q) = %q, want %q", tt.ua, got, tt.want)
		}
	}
}

func TestReferrerDomain(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"https://www.Google.com/search?q=pajak", "google.com"},
		{"http://news.example.com:8080/a", "news.example.com"},
		{"android-app://com.slack", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := referrerDomain(tt.ref); got != tt.want {
			t.Fatalf("referrerDomain(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}
