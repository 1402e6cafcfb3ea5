package cmsfields

import (
	"io/fs"

	"github.com/goliatone/go-cmsfields/pkg/runtime"
)

// Runtime asset names linked into injected pages.
const (
	RuntimeScript     = runtime.Script
	RuntimeStylesheet = runtime.Stylesheet
)

// RuntimeAssetsFS exposes the browser runtime (toggle binding script and panel
// stylesheet) so Go applications can serve it next to injected pages.
//
// Typical mount:
//
//	mux.Handle("/runtime/",
//	  http.StripPrefix("/runtime/",
//	    http.FileServerFS(cmsfields.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return runtime.FS()
}
