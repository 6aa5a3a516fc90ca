package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for cosmos.

To load completions:

Bash:
  $ source <(cosmos completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ cosmos completion bash > /etc/bash_completion.d/cosmos
  # macOS:
  $ cosmos completion bash > $(brew --prefix)/etc/bash_completion.d/cosmos

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ cosmos completion zsh > "${fpath[1]}/_cosmos"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ cosmos completion fish | source

  # To load completions for each session, execute once:
  $ cosmos completion fish > ~/.config/fish/completions/cosmos.fish

PowerShell:
  PS> cosmos completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> cosmos completion powershell > cosmos.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(w)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}
