package snippet

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/snippetdocs/pkg/errors"
)

// File is a parsed snippet file and its place in the input tree.
type File struct {
	Path     string    // absolute path on disk
	Folders  []string  // directories between the input root and the file
	Name     string    // base name without the .code-snippets extension
	Data     []byte    // raw file contents
	Snippets []Snippet // snippets in file order
}

// Discover returns every snippet file below root in lexical order.
func Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input directory %s", root)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "input %s is not a directory", root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), Ext) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// Load reads and parses the snippet file at path. root is the input
// directory the folder chain is computed from.
func Load(root, path string) (*File, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, errors.New(errors.ErrCodeInvalidPath, "%s is outside %s", path, root)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}
	snippets, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rel, err)
	}

	parts := strings.Split(filepath.ToSlash(rel), "/")
	return &File{
		Path:     absPath,
		Folders:  parts[:len(parts)-1],
		Name:     strings.TrimSuffix(parts[len(parts)-1], Ext),
		Data:     data,
		Snippets: snippets,
	}, nil
}
