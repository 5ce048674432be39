package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/snippetdocs/pkg/config"
	"github.com/matzehuels/snippetdocs/pkg/site"
)

// siteFlags holds the flags shared by generate and serve.
type siteFlags struct {
	config   string // explicit config file
	input    string // folder containing .code-snippets files
	output   string // output folder for HTML files
	title    string // site title
	colorize string // badge colouring: build, client, off
	seed     uint64 // badge palette seed, 0 for a fresh palette
	markdown bool   // render descriptions as Markdown
	noCache  bool   // bypass the page cache
}

func (f *siteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.config, "config", "", "config file (default: "+config.FileName+" in the input folder)")
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "folder containing .code-snippets files (default: current directory)")
	cmd.Flags().StringVarP(&f.output, "output", "o", config.DefaultOutput, "output folder for HTML files")
	cmd.Flags().StringVar(&f.title, "title", config.DefaultTitle, "site title")
	cmd.Flags().StringVar(&f.colorize, "colorize", config.DefaultColorize, "badge colouring: build, client, off")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "badge palette seed (0 picks a new palette on every build)")
	cmd.Flags().BoolVar(&f.markdown, "markdown", true, "render snippet descriptions as Markdown")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the rendered page cache")

	registerColorizeCompletion(cmd)
	_ = cmd.MarkFlagFilename("config", "toml")
	_ = cmd.MarkFlagDirname("input")
}

// resolve merges flags over the config file over built-in defaults. Only
// flags the user set explicitly override the file.
func (f *siteFlags) resolve(cmd *cobra.Command) (site.Options, *config.Config, error) {
	changed := cmd.Flags().Changed

	lookup := f.input
	if lookup == "" {
		wd, err := os.Getwd()
		if err != nil {
			return site.Options{}, nil, err
		}
		lookup = wd
	}
	cfg, err := config.Find(f.config, lookup)
	if err != nil {
		return site.Options{}, nil, err
	}

	opts := site.Options{
		Input:    cfg.Input,
		Output:   cfg.Output,
		Title:    cfg.Title,
		Seed:     cfg.Seed,
		Markdown: cfg.MarkdownEnabled(),
	}
	if opts.Input == "" || changed("input") {
		opts.Input = lookup
	}
	if changed("output") {
		opts.Output = f.output
	}
	if changed("title") {
		opts.Title = f.title
	}
	if changed("seed") {
		opts.Seed = f.seed
	}
	if changed("markdown") {
		opts.Markdown = f.markdown
	}

	mode := cfg.Colorize
	if changed("colorize") {
		mode = f.colorize
	}
	opts.Colorize, err = site.ParseColorizeMode(mode)
	if err != nil {
		return site.Options{}, nil, err
	}
	return opts, cfg, nil
}
