package panel

import (
	"golang.org/x/net/html"

	"github.com/goliatone/go-cmsfields/pkg/dom"
)

// Toggle flips class on node and reports whether it is now present.
func Toggle(node *html.Node, class string) bool {
	if node == nil {
		return false
	}
	return dom.ToggleClass(node, class)
}
