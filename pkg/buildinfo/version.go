// Package buildinfo carries the snippetdocs version stamped in at link time:
//
//	go build -ldflags "-X github.com/matzehuels/snippetdocs/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/snippetdocs/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/snippetdocs/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/snippetdocs
//
// The version shows up in --version and in the generator meta tag of every
// generated index page.
package buildinfo

import "fmt"

// Name is the program name reported in generated pages.
const Name = "snippetdocs"

var (
	Version = "dev"     // semantic version, e.g. "v0.3.0"
	Commit  = "none"    // git commit SHA
	Date    = "unknown" // build timestamp
)

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// Generator returns the value of the HTML generator meta tag.
func Generator() string {
	return Name + " " + Version
}
