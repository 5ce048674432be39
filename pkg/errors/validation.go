package errors

import (
	"strings"
	"unicode"
)

// maxPathLength bounds user-supplied paths and slugs.
const maxPathLength = 500

// ValidateOutputDir checks an output directory before anything is written
// into it. Relative and absolute paths are both accepted; the filesystem
// root is not.
func ValidateOutputDir(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output directory too long (max %d characters)", maxPathLength)
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid characters")
		}
	}
	if path == "/" || path == `\` {
		return New(ErrCodeInvalidPath, "refusing to write into the filesystem root")
	}
	return nil
}

// ValidateSlug checks that a page slug is a plain file name.
//
// Validation rules:
//   - Slug cannot be empty
//   - No null bytes or control characters
//   - No path separators
//   - Not "." or ".."
func ValidateSlug(slug string) error {
	if slug == "" {
		return New(ErrCodeInvalidSnippet, "snippet name produces an empty page name")
	}
	if len(slug) > maxPathLength {
		return New(ErrCodeInvalidSnippet, "snippet name too long (max %d characters)", maxPathLength)
	}
	for _, r := range slug {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidSnippet, "snippet name contains control characters")
		}
	}
	if strings.ContainsAny(slug, `/\`) {
		return New(ErrCodeInvalidSnippet, "page name cannot contain path separators: %q", slug)
	}
	if slug == "." || slug == ".." {
		return New(ErrCodeInvalidSnippet, "page name cannot be %q", slug)
	}
	return nil
}
