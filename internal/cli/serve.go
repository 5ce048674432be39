package cli

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/snippetdocs/pkg/config"
	"github.com/matzehuels/snippetdocs/pkg/server"
	"github.com/matzehuels/snippetdocs/pkg/site"
)

// serveOptions holds flags for the serve command.
type serveOptions struct {
	site  siteFlags
	addr  string
	watch bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Generate the site and serve it locally",
		Long: `Serve generates the site once, then serves the output folder over HTTP.
With --watch the site is rebuilt whenever a .code-snippets file or the
config file changes. Config edits take effect on the next rebuild, except
for input and output, which stay fixed while serving.`,
		Example: `  snippetdocs serve
  snippetdocs serve -i ./snippets --addr :9000 --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}

	opts.site.register(cmd)
	cmd.Flags().StringVar(&opts.addr, "addr", config.DefaultServeAddr, "listen address")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "rebuild when snippet or config files change")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts *serveOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	siteOpts, cfg, err := opts.site.resolve(cmd)
	if err != nil {
		return err
	}
	addr, watch := opts.addr, opts.watch
	if !cmd.Flags().Changed("addr") {
		addr = cfg.Serve.Addr
	}
	if !cmd.Flags().Changed("watch") {
		watch = cfg.Serve.Watch
	}

	res, err := c.runGenerate(ctx, siteOpts, opts.site.noCache)
	if err != nil {
		return err
	}
	printGenerateResult(res)

	g, ctx := errgroup.WithContext(ctx)

	srv := &server.Server{Root: res.Output, Addr: addr, Logger: logger}
	g.Go(func() error {
		return srv.Run(ctx)
	})

	if watch {
		w := &server.Watcher{
			Root:  siteOpts.Input,
			Match: server.MatchSources(config.FileName),
			OnChange: func(ctx context.Context) error {
				next, err := c.reloadOptions(cmd, &opts.site, siteOpts, res.Output)
				if err != nil {
					return err
				}
				rebuilt, err := c.runGenerate(ctx, next, opts.site.noCache)
				if err != nil {
					return err
				}
				logger.Info("site rebuilt", "pages", rebuilt.Pages, "badges", rebuilt.Badges)
				return nil
			},
			Logger: logger,
		}
		if cfg.Path != "" {
			w.Files = []string{cfg.Path}
		}
		g.Go(func() error {
			return w.Run(ctx)
		})
	}

	return g.Wait()
}

// reloadOptions re-reads the config file for a rebuild. Input and output
// are pinned to the directories being watched and served.
func (c *CLI) reloadOptions(cmd *cobra.Command, flags *siteFlags, current site.Options, output string) (site.Options, error) {
	next, _, err := flags.resolve(cmd)
	if err != nil {
		return site.Options{}, err
	}
	logger := loggerFromContext(cmd.Context())
	if next.Input != current.Input {
		logger.Warn("input changed in config, restart serve to use it", "input", next.Input)
	}
	if next.Output != current.Output {
		logger.Warn("output changed in config, restart serve to use it", "output", next.Output)
	}
	next.Input = current.Input
	next.Output = output
	return next, nil
}
