package site

import (
	"strings"
	"testing"

	"github.com/matzehuels/snippetdocs/pkg/buildinfo"
	"github.com/matzehuels/snippetdocs/pkg/snippet"
)

func TestRendererSnippet(t *testing.T) {
	r, err := NewRenderer("My Snippets", true, false)
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}

	page, err := r.Snippet(snippet.Snippet{
		Name:           "For <Loop>",
		Scope:          []string{"go", "rust"},
		Prefix:         []string{"for", "fori"},
		IsFileTemplate: true,
		Description:    "A **bold** loop <script>alert(1)</script>",
		Body:           "for i := 0; i < n; i++ {\n\t$0\n}",
	})
	if err != nil {
		t.Fatalf("Snippet() error: %v", err)
	}
	html := string(page)

	for _, want := range []string{
		"<title>For &lt;Loop&gt; · My Snippets</title>",
		`<span class="scope-badge">go</span>`,
		`<span class="scope-badge">rust</span>`,
		"<code>for</code>, <code>fori</code>",
		"<strong>bold</strong>",
		"i &lt; n",
		"File template",
		`href="../style.css"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("raw HTML from the description must not reach the page")
	}
	if strings.Contains(html, "scopes-color.js") {
		t.Error("script should only be included in client mode")
	}
}

func TestRendererPlainDescription(t *testing.T) {
	r, err := NewRenderer("t", false, true)
	if err != nil {
		t.Fatal(err)
	}
	page, err := r.Snippet(snippet.Snippet{Name: "x", Description: "a **b** <i>c</i>"})
	if err != nil {
		t.Fatal(err)
	}
	html := string(page)
	if !strings.Contains(html, "a **b** &lt;i&gt;c&lt;/i&gt;") {
		t.Errorf("plain description not escaped verbatim:\n%s", html)
	}
	if !strings.Contains(html, `src="../scopes-color.js"`) {
		t.Error("client mode page should load the colorizer script")
	}
}

func TestRendererIndex(t *testing.T) {
	r, err := NewRenderer("Index Title", true, false)
	if err != nil {
		t.Fatal(err)
	}

	empty, err := r.Index(NewTree())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(empty), "No snippets found.") {
		t.Error("empty index should say so")
	}

	tree := NewTree()
	fn := tree.File([]string{"web"}, "loops")
	fn.Snippets = append(fn.Snippets, Link{Name: "For Loop", File: "snippets/For-Loop.html", Scope: []string{"js"}})

	page, err := r.Index(tree)
	if err != nil {
		t.Fatal(err)
	}
	html := string(page)
	for _, want := range []string{
		"<summary>web</summary>",
		`<span class="file-name">loops</span>`,
		`<a href="snippets/For-Loop.html">For Loop</a>`,
		`<span class="scope-badge">js</span>`,
		`<meta name="generator" content="` + buildinfo.Generator() + `">`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("index missing %q", want)
		}
	}
}
