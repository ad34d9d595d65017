// Package schemas embeds the JSON Schema documents for roadmap requests,
// generated roadmaps and service responses.
package schemas

import "embed"

// Files holds every *.schema.json in this directory.
//
//go:embed *.schema.json
var Files embed.FS
