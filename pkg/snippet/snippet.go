// Package snippet reads VS Code ".code-snippets" files.
//
// Snippet files are JSON objects keyed by snippet name. They routinely carry
// comments and trailing commas, so they are standardized with hujson before
// decoding. Several fields accept more than one shape; [Snippet] holds the
// normalized form.
package snippet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tailscale/hujson"

	"github.com/matzehuels/snippetdocs/pkg/errors"
)

// Ext is the file extension of snippet files.
const Ext = ".code-snippets"

// Snippet is one entry of a snippet file.
type Snippet struct {
	Name           string   `json:"name"`
	Scope          []string `json:"scope,omitempty"`
	IsFileTemplate bool     `json:"isFileTemplate,omitempty"`
	Prefix         []string `json:"prefix,omitempty"`
	Description    string   `json:"description,omitempty"`
	Body           string   `json:"body"`
}

// raw mirrors the on-disk shape of a snippet entry.
type raw struct {
	Scope          commaList `json:"scope"`
	IsFileTemplate flexBool  `json:"isFileTemplate"`
	Prefix         commaList `json:"prefix"`
	Description    string    `json:"description"`
	Body           lines     `json:"body"`
}

// Parse decodes the snippets in data, keeping their order in the file.
// A repeated name keeps its first position and takes its last value.
func Parse(data []byte) ([]Snippet, error) {
	std, err := hujson.Standardize(bytes.Clone(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSnippet, err, "invalid snippet JSON")
	}

	dec := json.NewDecoder(bytes.NewReader(std))
	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSnippet, err, "read snippet file")
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New(errors.ErrCodeInvalidSnippet, "snippet file must be a JSON object")
	}

	var (
		out   []Snippet
		index = make(map[string]int)
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSnippet, err, "read snippet name")
		}
		name, _ := tok.(string)

		var r raw
		if err := dec.Decode(&r); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSnippet, err, "decode snippet %q", name)
		}
		s := Snippet{
			Name:           name,
			Scope:          []string(r.Scope),
			IsFileTemplate: bool(r.IsFileTemplate),
			Prefix:         []string(r.Prefix),
			Description:    r.Description,
			Body:           string(r.Body),
		}
		if i, ok := index[name]; ok {
			out[i] = s
			continue
		}
		index[name] = len(out)
		out = append(out, s)
	}
	return out, nil
}

// Slugify turns a snippet name into a page name by replacing spaces and
// path separators with dashes.
func Slugify(name string) string {
	return strings.NewReplacer(" ", "-", "/", "-", `\`, "-").Replace(name)
}

// commaList accepts "a, b" or ["a", "b"], trimming entries and dropping
// empty ones.
type commaList []string

func (c *commaList) UnmarshalJSON(b []byte) error {
	var parts []string
	switch {
	case bytes.Equal(b, []byte("null")):
		*c = nil
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parts = strings.Split(s, ",")
	default:
		if err := json.Unmarshal(b, &parts); err != nil {
			return fmt.Errorf("expected string or list of strings: %w", err)
		}
	}

	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*c = out
	return nil
}

// flexBool accepts true/false or a string compared to "true".
type flexBool bool

func (f *flexBool) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexBool(strings.EqualFold(strings.TrimSpace(s), "true"))
		return nil
	}
	var v bool
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("expected bool or string: %w", err)
	}
	*f = flexBool(v)
	return nil
}

// lines accepts a string or a list of strings joined with newlines.
type lines string

func (l *lines) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = lines(s)
		return nil
	}
	var parts []string
	if err := json.Unmarshal(b, &parts); err != nil {
		return fmt.Errorf("expected string or list of strings: %w", err)
	}
	*l = lines(strings.Join(parts, "\n"))
	return nil
}
