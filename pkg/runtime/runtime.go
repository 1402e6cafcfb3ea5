// Package runtime embeds the browser runtime shipped with injected pages.
package runtime

import (
	"embed"
	"io/fs"
)

//go:embed assets/*.js assets/*.css
var embedded embed.FS

const (
	Script     = "cms.js"
	Stylesheet = "cms.css"
)

// FS returns the assets rooted at the asset directory.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		return embedded
	}
	return sub
}
