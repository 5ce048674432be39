package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/snippetdocs/pkg/site"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var flags siteFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate HTML documentation for snippet files",
		Long: `Generate reads every .code-snippets file below the input folder and writes
one HTML page per snippet plus an index of the folder tree.

Scope badges are coloured at build time by default (--colorize=build); use
--seed to get the same palette on every build, --colorize=client to let the
browser pick colours on load, or --colorize=off to keep the stylesheet colours.`,
		Example: `  snippetdocs generate
  snippetdocs generate -i ./snippets -o ./public --seed 42
  snippetdocs generate --colorize client`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			if cfg.Path != "" {
				c.Logger.Debug("loaded config", "path", cfg.Path)
			}
			res, err := c.runGenerate(cmd.Context(), opts, flags.noCache)
			if err != nil {
				return err
			}
			printGenerateResult(res)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// runGenerate builds the site once.
func (c *CLI) runGenerate(ctx context.Context, opts site.Options, noCache bool) (*site.Result, error) {
	logger := loggerFromContext(ctx)
	store := newCache(noCache)
	defer store.Close()

	prog := newProgress(logger)
	res, err := site.NewGenerator(opts, store, logger).Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	prog.done(generatedMessage(res))
	return res, nil
}

func generatedMessage(res *site.Result) string {
	if res.CacheHits > 0 {
		return fmt.Sprintf("Generated %d pages, %d from cache", res.Pages, res.CacheHits)
	}
	return fmt.Sprintf("Generated %d pages", res.Pages)
}

func printGenerateResult(res *site.Result) {
	printSuccess("Documentation generated")
	printStats(res.Files, res.Snippets, res.Badges, res.CacheHits)
	printFile(filepath.Join(res.Output, "index.html"))
	printNextStep("Preview it", "snippetdocs serve -o "+res.Output)
}
