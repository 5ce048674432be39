package site

// Link points at one rendered snippet page.
type Link struct {
	Name  string
	File  string // path relative to the output root, e.g. snippets/for-loop.html
	Scope []string
}

// FileNode lists the snippets of one .code-snippets file.
type FileNode struct {
	Name     string
	Snippets []Link
}

// Folder is a directory of the input tree. The root folder has no name.
type Folder struct {
	Name    string
	Folders []*Folder
	Files   []*FileNode
}

// Tree mirrors the input directory: folders, then the snippet files inside
// them, then the snippets of each file. Children keep insertion order.
type Tree struct {
	Root *Folder
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{Root: &Folder{}}
}

// File returns the node for the given folder chain and file name, creating
// missing folders and the file node on first use.
func (t *Tree) File(folders []string, name string) *FileNode {
	cur := t.Root
	for _, f := range folders {
		cur = cur.folder(f)
	}
	for _, fn := range cur.Files {
		if fn.Name == name {
			return fn
		}
	}
	fn := &FileNode{Name: name}
	cur.Files = append(cur.Files, fn)
	return fn
}

// Empty reports whether the tree holds no files.
func (t *Tree) Empty() bool {
	return t.Root.empty()
}

// Count returns the number of snippet links in the tree.
func (t *Tree) Count() int {
	return t.Root.count()
}

func (f *Folder) folder(name string) *Folder {
	for _, c := range f.Folders {
		if c.Name == name {
			return c
		}
	}
	c := &Folder{Name: name}
	f.Folders = append(f.Folders, c)
	return c
}

func (f *Folder) empty() bool {
	if len(f.Files) > 0 {
		return false
	}
	for _, c := range f.Folders {
		if !c.empty() {
			return false
		}
	}
	return true
}

func (f *Folder) count() int {
	n := 0
	for _, fn := range f.Files {
		n += len(fn.Snippets)
	}
	for _, c := range f.Folders {
		n += c.count()
	}
	return n
}
