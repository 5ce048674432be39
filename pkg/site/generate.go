package site

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/snippetdocs/internal/fsutil"
	"github.com/matzehuels/snippetdocs/pkg/badge"
	"github.com/matzehuels/snippetdocs/pkg/badge/htmldoc"
	"github.com/matzehuels/snippetdocs/pkg/cache"
	"github.com/matzehuels/snippetdocs/pkg/errors"
	"github.com/matzehuels/snippetdocs/pkg/observability"
	"github.com/matzehuels/snippetdocs/pkg/snippet"
)

// ColorizeMode selects how scope badges get their colours.
type ColorizeMode string

const (
	ColorizeBuild  ColorizeMode = "build"
	ColorizeClient ColorizeMode = "client"
	ColorizeOff    ColorizeMode = "off"
)

// ParseColorizeMode validates a mode name. The empty string selects
// ColorizeBuild.
func ParseColorizeMode(s string) (ColorizeMode, error) {
	switch m := ColorizeMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorizeBuild, nil
	case ColorizeBuild, ColorizeClient, ColorizeOff:
		return m, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidColorize, "invalid colorize mode: %q (must be one of: build, client, off)", s)
	}
}

// Defaults for Options.
const (
	DefaultOutput = "dist"
	DefaultTitle  = "Snippets"
)

// PagesDir is the output subdirectory holding snippet pages.
const PagesDir = "snippets"

// cacheKeyType labels page cache events.
const cacheKeyType = "page"

// Options configures a site build.
type Options struct {
	Input    string       // directory searched for .code-snippets files
	Output   string       // site root, created if missing
	Title    string       // shown on every page
	Colorize ColorizeMode // badge colouring strategy
	Seed     uint64       // badge palette seed for ColorizeBuild, 0 for time-seeded
	Markdown bool         // render descriptions as Markdown
}

// ValidateAndSetDefaults fills empty fields and checks the rest.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Input == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		o.Input = wd
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	mode, err := ParseColorizeMode(string(o.Colorize))
	if err != nil {
		return err
	}
	o.Colorize = mode
	return errors.ValidateOutputDir(o.Output)
}

// Result summarizes a build.
type Result struct {
	Output    string   // absolute site root
	Files     int      // snippet files read
	Snippets  int      // snippets written
	Skipped   int      // snippets without a usable page name
	Pages     int      // pages written, index included
	Badges    int      // badges painted at build time
	CacheHits int      // snippet pages served from cache
	Assets    []string // static files copied
	Duration  time.Duration
}

// Generator builds a site from a snippet directory.
type Generator struct {
	Options Options
	Cache   cache.Cache
	Logger  *log.Logger
}

// NewGenerator creates a generator. A nil cache disables caching and a nil
// logger discards output.
func NewGenerator(opts Options, c cache.Cache, logger *log.Logger) *Generator {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Generator{Options: opts, Cache: c, Logger: logger}
}

// build holds per-run state.
type build struct {
	*Generator
	opts     Options
	renderer *Renderer
	src      badge.Source
	pages    string
	slugs    map[string]string
	res      *Result
}

// Generate discovers snippet files, renders every page, paints badges and
// writes the site.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	start := time.Now()
	res, err := g.generate(ctx, start)
	pages := 0
	if res != nil {
		pages = res.Pages
	}
	observability.Build().OnBuildComplete(ctx, pages, time.Since(start), err)
	return res, err
}

func (g *Generator) generate(ctx context.Context, start time.Time) (*Result, error) {
	opts := g.Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	out, err := filepath.Abs(opts.Output)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve output %s", opts.Output)
	}
	pages := filepath.Join(out, PagesDir)
	if err := os.MkdirAll(pages, 0755); err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}

	renderer, err := NewRenderer(opts.Title, opts.Markdown, opts.Colorize == ColorizeClient)
	if err != nil {
		return nil, err
	}

	b := &build{
		Generator: g,
		opts:      opts,
		renderer:  renderer,
		src:       badge.NewSource(opts.Seed),
		pages:     pages,
		slugs:     make(map[string]string),
		res:       &Result{Output: out},
	}

	g.Logger.Info("analyzing snippets", "input", opts.Input)
	paths, err := snippet.Discover(opts.Input)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		g.Logger.Warn("no snippets exist", "input", opts.Input)
	}
	observability.Build().OnBuildStart(ctx, opts.Input, len(paths))

	tree := NewTree()
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := b.file(ctx, tree, path); err != nil {
			return nil, err
		}
	}

	index, err := renderer.Index(tree)
	if err != nil {
		return nil, err
	}
	if err := b.write(ctx, filepath.Join(out, "index.html"), index); err != nil {
		return nil, err
	}

	assets, err := copyAssets(out, opts.Colorize == ColorizeClient)
	if err != nil {
		return nil, fmt.Errorf("copy static files: %w", err)
	}
	b.res.Assets = assets
	b.res.Duration = time.Since(start)

	g.Logger.Info("documentation generated",
		"output", out,
		"snippets", b.res.Snippets,
		"badges", b.res.Badges,
		"duration", b.res.Duration.Round(time.Millisecond))
	return b.res, nil
}

func (b *build) file(ctx context.Context, tree *Tree, path string) error {
	f, err := snippet.Load(b.opts.Input, path)
	if err != nil {
		observability.Build().OnFileParsed(ctx, path, 0, err)
		return err
	}
	observability.Build().OnFileParsed(ctx, path, len(f.Snippets), nil)
	b.res.Files++
	b.Logger.Info("code snippet file", "path", path, "snippets", len(f.Snippets))

	node := tree.File(f.Folders, f.Name)
	for _, s := range f.Snippets {
		slug := snippet.Slugify(s.Name)
		if err := errors.ValidateSlug(slug); err != nil {
			b.Logger.Warn("snippet skipped", "path", path, "snippet", s.Name, "reason", errors.UserMessage(err))
			b.res.Skipped++
			continue
		}
		if prev, ok := b.slugs[slug]; ok {
			b.Logger.Warn("page overwritten by a later snippet", "page", slug+".html", "previous", prev, "snippet", s.Name)
		}
		b.slugs[slug] = s.Name

		page, err := b.page(ctx, s)
		if err != nil {
			return err
		}
		if err := b.write(ctx, filepath.Join(b.pages, slug+".html"), page); err != nil {
			return err
		}
		b.res.Snippets++
		node.Snippets = append(node.Snippets, Link{
			Name:  s.Name,
			File:  PagesDir + "/" + slug + ".html",
			Scope: s.Scope,
		})
	}
	return nil
}

// page renders s, going through the cache.
func (b *build) page(ctx context.Context, s snippet.Snippet) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	key := cache.PageKey(data, cache.PageKeyOpts{
		Template: templateVersion,
		Title:    b.opts.Title,
		Markdown: b.opts.Markdown,
		Script:   b.opts.Colorize == ColorizeClient,
	})

	cached, hit, err := b.Cache.Get(ctx, key)
	if err != nil {
		b.Logger.Debug("cache read failed", "snippet", s.Name, "err", err)
	}
	if err == nil && hit {
		observability.Cache().OnCacheHit(ctx, cacheKeyType)
		b.res.CacheHits++
		b.Logger.Debug("page from cache", "snippet", s.Name)
		return cached, nil
	}

	observability.Cache().OnCacheMiss(ctx, cacheKeyType)

	page, err := b.renderer.Snippet(s)
	if err != nil {
		return nil, err
	}
	if err := b.Cache.Set(ctx, key, page, cache.TTLPage); err != nil {
		b.Logger.Debug("cache write failed", "snippet", s.Name, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, cacheKeyType, len(page))
	}
	return page, nil
}

// write paints badges when colouring at build time, then writes the page.
func (b *build) write(ctx context.Context, path string, page []byte) error {
	badges := 0
	if b.opts.Colorize == ColorizeBuild {
		var buf bytes.Buffer
		n, err := htmldoc.ColorizeHTML(bytes.NewReader(page), &buf, b.src)
		if err != nil {
			return fmt.Errorf("colorize %s: %w", filepath.Base(path), err)
		}
		badges = n
		page = buf.Bytes()
	}
	if err := fsutil.WriteFileAtomic(path, page, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	b.res.Pages++
	b.res.Badges += badges
	observability.Build().OnPageWritten(ctx, path, badges)
	return nil
}
