package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// completionShells lists the shells cobra can generate scripts for.
var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for snippetdocs. Besides command names it
completes --colorize modes and restricts file arguments to .html for colorize
and to .toml for --config.

Bash:
  $ source <(snippetdocs completion bash)

Zsh:
  $ snippetdocs completion zsh > "${fpath[1]}/_snippetdocs"

Fish:
  $ snippetdocs completion fish > ~/.config/fish/completions/snippetdocs.fish

PowerShell:
  PS> snippetdocs completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			}
			return fmt.Errorf("unsupported shell %q", args[0])
		},
	}
}

// registerColorizeCompletion offers the colorize modes for --colorize.
func registerColorizeCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("colorize",
		cobra.FixedCompletions([]string{
			"build\tpaint badges while generating",
			"client\tlet the browser paint badges on load",
			"off\tkeep the stylesheet colours",
		}, cobra.ShellCompDirectiveNoFileComp))
}
