package portfolio

import "embed"

// EmbeddedAssets contains the page's script and stylesheet: app.js, site.css
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
