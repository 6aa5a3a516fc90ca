package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cosmos/pkg/dyck"
	"github.com/matzehuels/cosmos/pkg/query"
	"github.com/matzehuels/cosmos/pkg/tree"
)

// spinnerThreshold is the pair count from which enumeration shows a spinner.
const spinnerThreshold = 11

// partitionsCommand creates the partitions command.
func (c *CLI) partitionsCommand() *cobra.Command {
	var (
		format string
		limit  int
		trees  bool
	)

	cmd := &cobra.Command{
		Use:   "partitions <n>",
		Short: "Enumerate the balanced bracket words with n pairs",
		Long: `Enumerate the balanced bracket words (Dyck words) with n pairs in
lexicographic order, "(" before ")". There are Catalan(n) of them.

The largest n accepted is limits.max_partitions in the config file.`,
		Example: `  cosmos partitions 3
  cosmos partitions 12 --limit 20
  cosmos partitions 4 --trees`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt("n", args[0])
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			var spin *Spinner
			if n >= spinnerThreshold && format == formatText {
				spin = newSpinner(cmd.Context(), cmd.ErrOrStderr(), n, dyck.Catalan(n))
				spin.Start()
			}
			prog := newProgress(loggerFromContext(cmd.Context()))
			parts, hit, err := runner.Partitions(cmd.Context(), n, limit)
			if spin != nil {
				spin.Stop()
			}
			if err != nil {
				return err
			}
			if spin != nil {
				prog.done(fmt.Sprintf("Enumerated %d words", len(parts.Words)))
			} else {
				prog.debug("enumerated partitions", "n", n, "words", len(parts.Words), "cached", hit)
			}

			w := cmd.OutOrStdout()
			return emit(w, format, parts, func() error {
				return writePartitions(cmd, parts, hit, trees)
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "print at most this many words (0 for all)")
	cmd.Flags().BoolVar(&trees, "trees", false, "also print each word's Matula number")
	addFormatFlag(cmd, &format)
	return cmd
}

func writePartitions(cmd *cobra.Command, p *query.Partitions, cached, withCodes bool) error {
	w := cmd.OutOrStdout()
	printTitle(w, fmt.Sprintf("Dyck words with %d pairs", p.N))
	for _, word := range p.Words {
		if !withCodes {
			fmt.Fprintln(w, "  "+StyleValue.Render(quoteEmpty([]string{string(word)})[0]))
			continue
		}
		code, err := wordCode(word)
		if err != nil {
			return err
		}
		printMapping(w, quoteEmpty([]string{string(word)})[0], strconv.Itoa(code))
	}
	if p.Truncated {
		printWarning(w, "showing %d of %s words", len(p.Words), p.Catalan)
	}
	printStats(w, cached, fmt.Sprintf("catalan %s", p.Catalan), fmt.Sprintf("%d shown", len(p.Words)))
	return nil
}

// wordCode returns the Matula number of the tree whose root has the
// word's groups as children.
func wordCode(w dyck.Word) (int, error) {
	t, err := w.Tree()
	if err != nil {
		return 0, err
	}
	return tree.Encode(t)
}
