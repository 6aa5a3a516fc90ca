package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cosmos/pkg/query"
	"github.com/matzehuels/cosmos/pkg/tree"
)

// matulaCommand creates the matula command group.
func (c *CLI) matulaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matula",
		Short: "Convert between Matula numbers and bracket text",
		Long: `Convert between Matula numbers and bracket text.

Code 1 is the empty tree and 2 a single node. Any other code n is a node
whose children are the trees coded by the prime indices of n's factors.`,
	}

	cmd.AddCommand(c.matulaEncodeCommand())
	cmd.AddCommand(c.matulaDecodeCommand())

	return cmd
}

type encodeResult struct {
	Brackets string `json:"brackets" yaml:"brackets"`
	Matula   int    `json:"matula" yaml:"matula"`
}

// matulaEncodeCommand creates the "matula encode" subcommand.
func (c *CLI) matulaEncodeCommand() *cobra.Command {
	var (
		format   string
		children bool
	)

	cmd := &cobra.Command{
		Use:   "encode <brackets>...",
		Short: "Encode bracket text as Matula numbers",
		Long: `Encode bracket text as Matula numbers.

Each argument is a whole tree including the root's own brackets, e.g. "(()())".
With --children each argument is read as the children of an implicit root
instead, so "()()" is a root with two leaves.`,
		Example: `  cosmos matula encode "(()())"
  cosmos matula encode --children "()()"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parse := tree.ParseRooted
			if children {
				parse = tree.FromBrackets
			}
			results := make([]encodeResult, 0, len(args))
			for _, arg := range args {
				t, err := parse(arg)
				if err != nil {
					return err
				}
				n, err := tree.Encode(t)
				if err != nil {
					return err
				}
				results = append(results, encodeResult{Brackets: arg, Matula: n})
			}

			w := cmd.OutOrStdout()
			return emit(w, format, results, func() error {
				for _, r := range results {
					printMapping(w, quoteEmpty([]string{r.Brackets})[0], strconv.Itoa(r.Matula))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&children, "children", false, "read input as the children of an implicit root")
	addFormatFlag(cmd, &format)
	return cmd
}

// matulaDecodeCommand creates the "matula decode" subcommand.
func (c *CLI) matulaDecodeCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "decode <n>...",
		Short:   "Decode Matula numbers into trees",
		Example: `  cosmos matula decode 1 2 3 12`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			trees := make([]*query.Tree, 0, len(args))
			allCached := true
			for _, arg := range args {
				n, err := parseInt("n", arg)
				if err != nil {
					return err
				}
				t, hit, err := runner.Tree(cmd.Context(), n)
				if err != nil {
					return err
				}
				allCached = allCached && hit
				trees = append(trees, t)
			}

			w := cmd.OutOrStdout()
			return emit(w, format, trees, func() error {
				for _, t := range trees {
					printMapping(w, strconv.Itoa(t.Matula), quoteEmpty([]string{t.Brackets})[0])
					printDetail(w, "%s  size %d  depth %d", t.Structure, t.Size, t.Depth)
				}
				printStats(w, allCached, strconv.Itoa(len(trees))+" trees")
				return nil
			})
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}
