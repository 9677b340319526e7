package ghostblog

import "embed"

// EmbeddedAssets contains static assets shipped with the binary:
// site.js and site.css
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
