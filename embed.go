package inkwell

import "embed"

// EmbeddedAssets contains static assets shipped with the binary, served
// under /public/ ahead of the user's static directory.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
