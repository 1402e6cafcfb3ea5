// Package dom holds small helpers over golang.org/x/net/html trees used by the
// panel controller and the page orchestrator.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse reads a full HTML document.
func Parse(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse document: %w", err)
	}
	return doc, nil
}

// ParseString is Parse over a string.
func ParseString(markup string) (*html.Node, error) {
	return Parse(strings.NewReader(markup))
}

// Render serialises the tree.
func Render(node *html.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, node); err != nil {
		return nil, fmt.Errorf("dom: render: %w", err)
	}
	return buf.Bytes(), nil
}

// Root returns the <html> element of a document, or nil.
func Root(doc *html.Node) *html.Node {
	return FindFirst(doc, "html")
}

// FindFirst returns the first element with the given tag in document order.
func FindFirst(node *html.Node, tag string) *html.Node {
	return Find(node, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	})
}

// FindByID returns the first element whose id attribute equals id.
func FindByID(node *html.Node, id string) *html.Node {
	if id == "" {
		return nil
	}
	return Find(node, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		value, ok := Attr(n, "id")
		return ok && value == id
	})
}

// Find walks the tree depth first and returns the first node matching.
func Find(node *html.Node, match func(*html.Node) bool) *html.Node {
	if node == nil {
		return nil
	}
	if match(node) {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := Find(child, match); found != nil {
			return found
		}
	}
	return nil
}

// Contains reports whether descendant is ancestor or lies beneath it.
func Contains(ancestor, descendant *html.Node) bool {
	for n := descendant; n != nil; n = n.Parent {
		if n == ancestor {
			return true
		}
	}
	return false
}

// Attr returns the value of key on node.
func Attr(node *html.Node, key string) (string, bool) {
	if node == nil {
		return "", false
	}
	for _, attr := range node.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// SetAttr replaces or appends the attribute.
func SetAttr(node *html.Node, key, value string) {
	for i, attr := range node.Attr {
		if attr.Namespace == "" && attr.Key == key {
			node.Attr[i].Val = value
			return
		}
	}
	node.Attr = append(node.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttr drops the attribute if present.
func RemoveAttr(node *html.Node, key string) {
	out := node.Attr[:0]
	for _, attr := range node.Attr {
		if attr.Namespace == "" && attr.Key == key {
			continue
		}
		out = append(out, attr)
	}
	node.Attr = out
}

// Classes splits the class attribute.
func Classes(node *html.Node) []string {
	value, _ := Attr(node, "class")
	return strings.Fields(value)
}

func HasClass(node *html.Node, class string) bool {
	for _, c := range Classes(node) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends class unless already present.
func AddClass(node *html.Node, class string) {
	if HasClass(node, class) {
		return
	}
	SetAttr(node, "class", strings.Join(append(Classes(node), class), " "))
}

// RemoveClass removes every occurrence of class. The class attribute is
// dropped when nothing is left.
func RemoveClass(node *html.Node, class string) {
	classes := Classes(node)
	kept := classes[:0]
	for _, c := range classes {
		if c != class {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		RemoveAttr(node, "class")
		return
	}
	SetAttr(node, "class", strings.Join(kept, " "))
}

// ToggleClass flips class and reports whether it is now present.
func ToggleClass(node *html.Node, class string) bool {
	if HasClass(node, class) {
		RemoveClass(node, class)
		return false
	}
	AddClass(node, class)
	return true
}

// Element creates a detached element node with attributes in the given order.
func Element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

// Text creates a detached text node.
func Text(data string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: data}
}

// Children returns the element children of node.
func Children(node *html.Node) []*html.Node {
	var out []*html.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			out = append(out, child)
		}
	}
	return out
}
