// Package config loads the optional snippetdocs.toml project file.
//
// Values from the file sit between built-in defaults and command-line
// flags: a flag the user set explicitly always wins.
//
//	input = "snippets"
//	output = "public"
//	title = "Team snippets"
//	colorize = "build"   # build, client or off
//	seed = 42            # 0 picks a new palette on every build
//	markdown = true
//
//	[serve]
//	addr = "127.0.0.1:8080"
//	watch = true
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/snippetdocs/pkg/errors"
)

// FileName is the config file looked up in the input directory.
const FileName = "snippetdocs.toml"

// Defaults applied when neither the file nor a flag sets a value.
const (
	DefaultOutput    = "dist"
	DefaultTitle     = "Snippets"
	DefaultColorize  = "build"
	DefaultServeAddr = "127.0.0.1:8080"
)

// Config is the decoded project file.
type Config struct {
	Input    string `toml:"input"`
	Output   string `toml:"output"`
	Title    string `toml:"title"`
	Colorize string `toml:"colorize"`
	Seed     uint64 `toml:"seed"`
	Markdown *bool  `toml:"markdown"`
	Serve    Serve  `toml:"serve"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

// Serve configures the preview server.
type Serve struct {
	Addr  string `toml:"addr"`
	Watch bool   `toml:"watch"`
}

// Default returns a config holding only built-in defaults.
func Default() *Config {
	md := true
	return &Config{
		Output:   DefaultOutput,
		Title:    DefaultTitle,
		Colorize: DefaultColorize,
		Markdown: &md,
		Serve:    Serve{Addr: DefaultServeAddr},
	}
}

// Load decodes the file at path on top of the defaults. Unknown keys are
// rejected so typos do not go unnoticed. Relative input and output paths are
// resolved against the file's directory.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	dir := filepath.Dir(path)
	if cfg.Input != "" && !filepath.IsAbs(cfg.Input) {
		cfg.Input = filepath.Join(dir, cfg.Input)
	}
	if cfg.Output != "" && !filepath.IsAbs(cfg.Output) && md.IsDefined("output") {
		cfg.Output = filepath.Join(dir, cfg.Output)
	}
	cfg.Path = path
	return cfg, nil
}

// Find loads explicit when set, otherwise FileName inside dir if present,
// otherwise the defaults.
func Find(explicit, dir string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		return Default(), nil
	}
	return Load(path)
}

// MarkdownEnabled reports whether descriptions are rendered as Markdown.
func (c *Config) MarkdownEnabled() bool {
	return c.Markdown == nil || *c.Markdown
}
