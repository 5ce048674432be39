package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/matzehuels/snippetdocs/pkg/buildinfo"
	"github.com/matzehuels/snippetdocs/pkg/snippet"
)

// templateVersion is part of every page cache key. Bump it whenever a
// template or the page data changes shape.
const templateVersion = "1"

//go:embed templates/*.html
var templateFS embed.FS

// Renderer turns snippets and trees into HTML pages.
type Renderer struct {
	index    *template.Template
	page     *template.Template
	md       goldmark.Markdown
	title    string
	markdown bool
	script   bool
}

// NewRenderer parses the embedded templates.
func NewRenderer(title string, markdown, script bool) (*Renderer, error) {
	index, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}
	page, err := template.ParseFS(templateFS, "templates/snippet.html")
	if err != nil {
		return nil, fmt.Errorf("parse snippet template: %w", err)
	}
	return &Renderer{
		index:    index,
		page:     page,
		md:       goldmark.New(goldmark.WithExtensions(extension.GFM)),
		title:    title,
		markdown: markdown,
		script:   script,
	}, nil
}

type pageData struct {
	Title       string
	Script      bool
	Snippet     snippet.Snippet
	Description template.HTML
}

type indexData struct {
	Title     string
	Generator string
	Script    bool
	Empty     bool
	Tree      *Folder
}

// Snippet renders the page of a single snippet.
func (r *Renderer) Snippet(s snippet.Snippet) ([]byte, error) {
	desc, err := r.description(s.Description)
	if err != nil {
		return nil, fmt.Errorf("render description of %q: %w", s.Name, err)
	}
	var buf bytes.Buffer
	err = r.page.ExecuteTemplate(&buf, "snippet.html", pageData{
		Title:       r.title,
		Script:      r.script,
		Snippet:     s,
		Description: desc,
	})
	if err != nil {
		return nil, fmt.Errorf("render snippet %q: %w", s.Name, err)
	}
	return buf.Bytes(), nil
}

// Index renders the tree page.
func (r *Renderer) Index(t *Tree) ([]byte, error) {
	var buf bytes.Buffer
	err := r.index.ExecuteTemplate(&buf, "index.html", indexData{
		Title:     r.title,
		Generator: buildinfo.Generator(),
		Script:    r.script,
		Empty:     t.Empty(),
		Tree:      t.Root,
	})
	if err != nil {
		return nil, fmt.Errorf("render index: %w", err)
	}
	return buf.Bytes(), nil
}

// description renders s as Markdown when enabled, otherwise as escaped text.
// goldmark's default renderer drops raw HTML from the source.
func (r *Renderer) description(s string) (template.HTML, error) {
	if s == "" {
		return "", nil
	}
	if !r.markdown {
		return template.HTML(template.HTMLEscapeString(s)), nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(s), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
