// Package templates embeds the built-in pongo2 templates.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed *.tpl
var files embed.FS

// FS exposes the embedded templates.
func FS() fs.FS {
	return files
}
