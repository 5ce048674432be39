package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// PageKeyOpts lists the render options that change a page's HTML.
type PageKeyOpts struct {
	Template string // template set version
	Title    string
	Markdown bool
	Script   bool // client-side colorizer script included
}

// PageKey returns the cache key of a rendered snippet page. snippetData is
// the snippet's canonical encoding.
func PageKey(snippetData []byte, opts PageKeyOpts) string {
	return hashKey("page", Hash(snippetData), opts)
}
