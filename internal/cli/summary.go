package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cosmos/pkg/catalog"
)

// summaryCommand creates the summary command.
func (c *CLI) summaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print tables of all structural levels",
		Long: `Print three tables covering every structural level: the level constants,
the Pascal row of each level, and its Matula codes decoded to bracket text.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeSummary(cmd.OutOrStdout(), catalog.All())
		},
	}
}

func writeSummary(w io.Writer, systems []catalog.System) error {
	printTitle(w, "Structural Levels")
	rows := make([][]string, len(systems))
	for i, s := range systems {
		rows[i] = []string{
			strconv.Itoa(s.Level), s.Name, strconv.Itoa(s.Terms), strconv.Itoa(s.Partitions),
			strconv.Itoa(s.SimplexDim), s.SimplexName, s.ConcurrencyName,
		}
	}
	fmt.Fprintln(w, newTable("Lvl", "Name", "Terms", "Parts", "Dim", "Polytope", "Concurrency").Rows(rows...).Render())
	printNewline(w)

	printTitle(w, "Pascal's Triangle")
	rows = make([][]string, len(systems))
	for i, s := range systems {
		row := s.PascalCoefficients()
		rows[i] = []string{strconv.Itoa(s.Level), row.String(), row.Sum().String()}
	}
	fmt.Fprintln(w, newTable("Lvl", "Row", "Sum").Rows(rows...).Render())
	printNewline(w)

	printTitle(w, "Matula Codes")
	rows = make([][]string, len(systems))
	for i, s := range systems {
		trees, err := s.Trees()
		if err != nil {
			return err
		}
		codes := make([]string, len(s.Matula))
		for j, m := range s.Matula {
			codes[j] = strconv.Itoa(m)
		}
		rows[i] = []string{strconv.Itoa(s.Level), strings.Join(codes, ", "), strings.Join(quoteEmpty(trees), " ")}
	}
	fmt.Fprintln(w, newTable("Lvl", "Codes", "Trees").Rows(rows...).Render())
	return nil
}

// newTable returns a rounded-border table with styled headers.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 { // header
				return styleHeader.Padding(0, 1)
			}
			if col == 0 {
				return StyleNumber.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// quoteEmpty renders the empty tree as "ε" so it stays visible in tables.
func quoteEmpty(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		if s == "" {
			s = "ε"
		}
		out[i] = s
	}
	return out
}
