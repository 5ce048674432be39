package htmldoc

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// decl is a single inline CSS declaration. Entries the tokenizer could not
// read as a declaration keep their source text in raw and are written back
// unchanged.
type decl struct {
	prop  string
	value string
	raw   string
}

// parseStyle splits an inline style attribute into declarations, keeping
// their order. Values are taken verbatim from the source, so semicolons
// inside url(), strings or functions survive. Standard property names are
// case-insensitive and come back lowercased; custom properties keep their
// spelling.
func parseStyle(s string) []decl {
	var out []decl
	p := css.NewParser(parse.NewInputString(s), true)
	start := 0
	for {
		gt, _, data := p.Next()
		end := min(p.Offset(), len(s))
		segment := strings.Trim(s[start:end], " \t\r\n\f;")
		start = end

		switch gt {
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			_, value, _ := strings.Cut(segment, ":")
			out = append(out, decl{prop: string(data), value: strings.TrimSpace(value)})
		case css.ErrorGrammar:
			if !p.HasParseError() {
				return out
			}
			if segment != "" {
				out = append(out, decl{raw: segment})
			}
		default:
			if segment != "" {
				out = append(out, decl{raw: segment})
			}
		}
	}
}

// setDecl replaces prop in place or appends it.
func setDecl(decls []decl, prop, value string) []decl {
	for i := range decls {
		if decls[i].raw == "" && decls[i].prop == prop {
			decls[i].value = value
			return decls
		}
	}
	return append(decls, decl{prop: prop, value: value})
}

func formatStyle(decls []decl) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		if d.raw != "" {
			parts[i] = d.raw
			continue
		}
		parts[i] = d.prop + ": " + d.value
	}
	return strings.Join(parts, "; ")
}
