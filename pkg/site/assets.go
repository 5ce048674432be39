package site

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed static
var staticFS embed.FS

// scriptAsset is the client-side colorizer shipped with ColorizeClient.
const scriptAsset = "scopes-color.js"

// copyAssets writes the embedded static files into dir and returns their
// names. The client script is only copied when withScript is set.
func copyAssets(dir string, withScript bool) ([]string, error) {
	entries, err := fs.ReadDir(staticFS, "static")
	if err != nil {
		return nil, err
	}
	var written []string
	for _, e := range entries {
		if e.IsDir() || (e.Name() == scriptAsset && !withScript) {
			continue
		}
		data, err := staticFS.ReadFile("static/" + e.Name())
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(filepath.Join(dir, e.Name()), data, 0644); err != nil {
			return written, err
		}
		written = append(written, e.Name())
	}
	return written, nil
}
