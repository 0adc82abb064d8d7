// Package dom provides small helpers over golang.org/x/net/html for code that
// treats a parsed document as a live element tree: attribute access, element
// creation, selector queries and the event values exchanged with a host.
package dom

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse parses a full HTML document.
func Parse(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// ParseString is Parse for in-memory markup.
func ParseString(s string) (*html.Node, error) {
	return Parse(strings.NewReader(s))
}

// Render writes n and its descendants as HTML.
func Render(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}

// RenderString renders n to a string. Rendering errors yield "".
func RenderString(n *html.Node) string {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return ""
	}
	return sb.String()
}

// Attr returns the value of attribute key and whether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the attribute is present, regardless of value.
func HasAttr(n *html.Node, key string) bool {
	_, ok := Attr(n, key)
	return ok
}

// SetAttr sets or replaces an attribute.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes an attribute if present.
func RemoveAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// ToggleAttr sets a presence flag to "" when on and removes it when off.
func ToggleAttr(n *html.Node, key string, on bool) {
	if on {
		SetAttr(n, key, "")
		return
	}
	RemoveAttr(n, key)
}

// TabIndex returns the parsed tabindex attribute, or def when absent or invalid.
func TabIndex(n *html.Node, def int) int {
	v, ok := Attr(n, "tabindex")
	if !ok {
		return def
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return i
}

// SetTabIndex writes the tabindex attribute.
func SetTabIndex(n *html.Node, i int) {
	SetAttr(n, "tabindex", strconv.Itoa(i))
}

// NewElement creates a detached element node.
func NewElement(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

// AppendChildren appends nodes to parent in order. Nodes that are still
// attached elsewhere are detached first.
func AppendChildren(parent *html.Node, nodes ...*html.Node) {
	for _, n := range nodes {
		Detach(n)
		parent.AppendChild(n)
	}
}

// Detach removes n from its parent. A detached node is left untouched.
func Detach(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Text returns the concatenated, whitespace-collapsed text content of n.
func Text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		for k := c.FirstChild; k != nil; k = k.NextSibling {
			walk(k)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// Contains reports whether n is root or one of its descendants.
func Contains(root, n *html.Node) bool {
	for c := n; c != nil; c = c.Parent {
		if c == root {
			return true
		}
	}
	return false
}
