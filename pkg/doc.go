// Package pkg provides the libraries behind snippetdocs, a static HTML
// documentation generator for VS Code .code-snippets files.
//
// # Overview
//
// Every snippet gets its own page and an index page lists the folder, file
// and snippet tree. Snippet scopes are shown as scope badges, which are
// painted with a random background and a black or white text colour chosen
// by luminance.
//
// # Architecture
//
// The data flow of a build:
//
//	.code-snippets files
//	         ↓
//	    [snippet] package (discover, parse JSON with comments, normalise)
//	         ↓
//	    [site] package (tree, html/template pages, page cache)
//	         ↓
//	    [badge] package (colour scope badges at build time)
//	         ↓
//	    HTML site on disk, optionally served by [server]
//
// # Quick Start
//
//	g := site.NewGenerator(site.Options{
//	    Input:    "snippets",
//	    Output:   "dist",
//	    Colorize: site.ColorizeBuild,
//	    Seed:     42,
//	}, nil, logger)
//	res, err := g.Generate(ctx)
//
// # Main Packages
//
// [badge] - Random badge colours and their contrast foreground. The colorizer
// works against any host implementing [badge.Styler]; [badge/htmldoc] hosts
// it on a parsed HTML document.
//
// [snippet] - Snippet model and loader for JSON-with-comments snippet files.
//
// [site] - Site generator: tree building, page rendering, static assets.
//
// [server] - Local preview server and file watcher for rebuilds.
//
// ## Infrastructure
//
// [cache] - File and null caches for rendered pages.
//
// [config] - The optional snippetdocs.toml project file.
//
// [errors] - Coded errors and input validation.
//
// [observability] - Hooks for build, cache and server events.
//
// [buildinfo] - Version information set via ldflags.
//
// [badge]: https://pkg.go.dev/github.com/matzehuels/snippetdocs/pkg/badge
// [badge.Styler]: https://pkg.go.dev/github.com/matzehuels/snippetdocs/pkg/badge#Styler
// [badge/htmldoc]: https://pkg.go.dev/github.com/matzehuels/snippetdocs/pkg/badge/htmldoc
// [snippet]: https://pkg.go.dev/github.com/matzehuels/snippetdocs/pkg/snippet
// [site]: https://pkg.go.dev/github.com/matzehuels/snippetdocs/pkg/site
// [server]: https://pkg.go.dev/github.com/matzehuels/snippetdocs/pkg/server
// [cache]: https://pkg.go.dev/github.com/matzehuels/snippetdocs/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/snippetdocs/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/snippetdocs/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/snippetdocs/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/snippetdocs/pkg/buildinfo
package pkg
