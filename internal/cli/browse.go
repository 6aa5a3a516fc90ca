package cli

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cosmos/pkg/catalog"
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the structural levels interactively",
		Long: `Browse the structural levels interactively. The highlighted level is
previewed below the list; selecting one prints its full analysis.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			snaps := make([]catalog.Snapshot, 0, catalog.MaxLevel-catalog.MinLevel+1)
			for level := catalog.MinLevel; level <= catalog.MaxLevel; level++ {
				snap, _, err := runner.Analyze(cmd.Context(), level)
				if err != nil {
					return err
				}
				snaps = append(snaps, snap)
			}

			w := cmd.OutOrStdout()
			p := tea.NewProgram(NewLevelListModel(snaps),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(w),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}

			fm, ok := final.(LevelListModel)
			if !ok || fm.Selected == nil {
				printDetail(w, "No selection made")
				return nil
			}
			printNewline(w)
			writeSnapshot(w, *fm.Selected, false)
			printNewline(w)
			printNextStep(w, "Export this level", "cosmos analyze "+strconv.Itoa(fm.Selected.Level)+" -f json")
			return nil
		},
	}
}
