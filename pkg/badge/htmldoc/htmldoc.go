// Package htmldoc hosts the badge colorizer on a parsed HTML document.
//
// Elements are addressed by their position among all element nodes in
// document order, which is what [Document.Query] returns and what the
// [badge.Styler] methods accept.
package htmldoc

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/matzehuels/snippetdocs/pkg/badge"
)

// Document is a parsed HTML tree with an index of its element nodes.
type Document struct {
	root  *html.Node
	elems []*html.Node
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	d := &Document{root: root}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			d.elems = append(d.elems, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return d, nil
}

// Len returns the number of element nodes in the document.
func (d *Document) Len() int { return len(d.elems) }

// Query returns the ids of elements carrying the given class token,
// in document order.
func (d *Document) Query(class string) []int {
	var ids []int
	for i, n := range d.elems {
		if slices.Contains(strings.Fields(attr(n, "class")), class) {
			ids = append(ids, i)
		}
	}
	return ids
}

// Style returns the inline style attribute of element id.
func (d *Document) Style(id int) string {
	n := d.elem(id)
	if n == nil {
		return ""
	}
	return attr(n, "style")
}

// Text returns the concatenated text content of element id.
func (d *Document) Text(id int) string {
	n := d.elem(id)
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// SetBackground sets the background-color declaration on element id.
func (d *Document) SetBackground(id int, color string) {
	d.setStyle(id, "background-color", color)
}

// SetForeground sets the color declaration on element id.
func (d *Document) SetForeground(id int, color string) {
	d.setStyle(id, "color", color)
}

// Render writes the document back out as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *Document) elem(id int) *html.Node {
	if id < 0 || id >= len(d.elems) {
		return nil
	}
	return d.elems[id]
}

func (d *Document) setStyle(id int, prop, value string) {
	n := d.elem(id)
	if n == nil {
		return
	}
	decls := parseStyle(attr(n, "style"))
	decls = setDecl(decls, prop, value)
	setAttr(n, "style", formatStyle(decls))
}

// ColorizeHTML parses r, paints every badge once and writes the result to w.
// It returns the number of badges painted.
func ColorizeHTML(r io.Reader, w io.Writer, src badge.Source) (int, error) {
	doc, err := Parse(r)
	if err != nil {
		return 0, err
	}
	assigned, _ := badge.NewTrigger(src).Fire(doc.Query(badge.ClassName), doc)
	if err := doc.Render(w); err != nil {
		return 0, fmt.Errorf("render html: %w", err)
	}
	return len(assigned), nil
}

// Ensure Document implements badge.Styler.
var _ badge.Styler = (*Document)(nil)

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
