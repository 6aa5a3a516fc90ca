package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cosmos/pkg/catalog"
	"github.com/matzehuels/cosmos/pkg/errors"
	"github.com/matzehuels/cosmos/pkg/simplex"
)

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "analyze <level>",
		Short: "Print the full analysis of one structural level",
		Example: `  cosmos analyze 3
  cosmos analyze 5 -f json`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: levelArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseInt("level", args[0])
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(loggerFromContext(cmd.Context()))
			snap, hit, err := runner.Analyze(cmd.Context(), level)
			if err != nil {
				return err
			}
			prog.debug("analyzed level", "system", level, "cached", hit)

			w := cmd.OutOrStdout()
			return emit(w, format, snap, func() error {
				writeSnapshot(w, snap, hit)
				return nil
			})
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

func writeSnapshot(w io.Writer, s catalog.Snapshot, cached bool) {
	printTitle(w, fmt.Sprintf("Level %d: %s", s.Level, s.Name))
	printKeyValue(w, "Terms", strconv.Itoa(s.Terms))
	printKeyValue(w, "Partitions", strconv.Itoa(s.Partitions))
	printKeyValue(w, "Universal", strconv.Itoa(s.Universal))
	printKeyValue(w, "Particular", strconv.Itoa(s.Particular))
	printKeyValue(w, "Pascal row", fmt.Sprintf("%s (sum %s)", simplex.Row(s.PascalRow), s.PascalSum))
	printKeyValue(w, "Simplex", fmt.Sprintf("%s, dim %d", s.Simplex.Name, s.Simplex.Dimension))
	for _, f := range s.Simplex.Elements {
		printDetail(w, "%-10s %s", f.Name, f.Count)
	}
	printKeyValue(w, "Concurrency", fmt.Sprintf("%s (%d)", s.Concurrency.Name, s.Concurrency.Level))
	printKeyValue(w, "Nested", s.NestedExpression)
	printKeyValue(w, "Catalan", s.Catalan.String())
	printKeyValue(w, "Surfaces", strconv.Itoa(s.SurfaceCount))
	printDetail(w, "%s", strings.Join(s.Surfaces, " "))
	printKeyValue(w, "Matula", fmt.Sprint(s.MatulaNumbers))
	for i, m := range s.MatulaNumbers {
		printMapping(w, strconv.Itoa(m), quoteEmpty(s.Trees[i:i+1])[0])
	}
	printKeyValue(w, "Properties", strings.Join(s.Properties, ", "))
	printStats(w, cached, fmt.Sprintf("%d surfaces", s.SurfaceCount), fmt.Sprintf("%d codes", len(s.MatulaNumbers)))
}

// levelArgs lists the defined levels for shell completion.
func levelArgs() []string {
	out := make([]string, 0, catalog.MaxLevel-catalog.MinLevel+1)
	for l := catalog.MinLevel; l <= catalog.MaxLevel; l++ {
		out = append(out, strconv.Itoa(l))
	}
	return out
}

// parseInt parses a positional integer argument.
func parseInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.InvalidArgument("%s must be an integer, got %q", name, s)
	}
	return n, nil
}
