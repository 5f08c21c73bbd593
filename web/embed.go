// Package web embeds the single-page map viewer served at the root path.
package web

import (
	"embed"
)

//go:embed static
var static embed.FS

// Index returns the viewer page bytes.
func Index() ([]byte, error) {
	return static.ReadFile("static/index.html")
}
