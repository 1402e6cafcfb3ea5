package orchestrator

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-cmsfields/pkg/dom"
	"github.com/goliatone/go-cmsfields/pkg/runtime"
)

const (
	defaultAssetPrefix = "/runtime/"

	attrRuntimePanel   = "data-cms-panel"
	attrRuntimeTrigger = "data-cms-trigger"
	attrRuntimeClass   = "data-cms-class"
)

// AssetURL joins the asset prefix and name.
func AssetURL(prefix, name string) string {
	if prefix == "" {
		prefix = defaultAssetPrefix
	}
	return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(name, "/")
}

// linkRuntime adds the runtime stylesheet and script to <head> once and
// records the element ids on the root so the script binds the same elements.
func (o *Orchestrator) linkRuntime(doc *html.Node) {
	root := dom.Root(doc)
	if root == nil {
		return
	}
	dom.SetAttr(root, attrRuntimePanel, o.panelID)
	dom.SetAttr(root, attrRuntimeTrigger, o.triggerID)
	dom.SetAttr(root, attrRuntimeClass, o.visibleClass)

	head := dom.FindFirst(doc, "head")
	if head == nil {
		return
	}

	cssURL := AssetURL(o.assetPrefix, runtime.Stylesheet)
	if !hasElementWithAttr(head, "link", "href", cssURL) {
		head.AppendChild(dom.Element("link",
			html.Attribute{Key: "rel", Val: "stylesheet"},
			html.Attribute{Key: "href", Val: cssURL},
		))
	}

	jsURL := AssetURL(o.assetPrefix, runtime.Script)
	if !hasElementWithAttr(head, "script", "src", jsURL) {
		head.AppendChild(dom.Element("script",
			html.Attribute{Key: "src", Val: jsURL},
			html.Attribute{Key: "defer", Val: ""},
		))
	}
}

func hasElementWithAttr(scope *html.Node, tag, key, value string) bool {
	return dom.Find(scope, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != tag {
			return false
		}
		v, ok := dom.Attr(n, key)
		return ok && v == value
	}) != nil
}
