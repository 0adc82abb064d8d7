package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// FindAll returns the descendants of root matching the CSS selector, in
// document order. root itself is never included.
func FindAll(root *html.Node, selector string) []*html.Node {
	if root == nil {
		return nil
	}
	return goquery.NewDocumentFromNode(root).Find(selector).Nodes
}

// First returns the first descendant of root matching selector, or nil.
func First(root *html.Node, selector string) *html.Node {
	nodes := FindAll(root, selector)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// Closest returns n itself or its nearest ancestor matching selector, or nil.
func Closest(n *html.Node, selector string) *html.Node {
	if n == nil {
		return nil
	}
	sel := goquery.NewDocumentFromNode(n).Closest(selector)
	if sel.Length() == 0 {
		return nil
	}
	return sel.Nodes[0]
}

// Root returns the topmost ancestor of n.
func Root(n *html.Node) *html.Node {
	for n != nil && n.Parent != nil {
		n = n.Parent
	}
	return n
}

// IsRTL reports whether the document containing n is laid out right to left,
// taken from the dir attribute of its <html> element.
func IsRTL(n *html.Node) bool {
	root := Root(n)
	if root == nil {
		return false
	}
	el := root
	if root.Type == html.DocumentNode {
		el = First(root, "html")
	}
	dir, _ := Attr(el, "dir")
	return strings.EqualFold(strings.TrimSpace(dir), "rtl")
}
