package cli

import (
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cosmos/pkg/errors"
	"github.com/matzehuels/cosmos/pkg/nested"
	"github.com/matzehuels/cosmos/pkg/rooted"
	"github.com/matzehuels/cosmos/pkg/simplex"
)

// Upper bounds for the table commands. Results beyond them are exact but
// too large to be worth printing.
const (
	maxTriangleRows = 64
	maxSimplexDim   = 1000
	maxNestedLevel  = 8
	maxRootedTerms  = 200
)

// pascalCommand creates the pascal command.
func (c *CLI) pascalCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "pascal <n>",
		Short: "Print Pascal's triangle through row n",
		Example: `  cosmos pascal 5
  cosmos pascal 10 -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := boundedArg("n", args[0], 0, maxTriangleRows)
			if err != nil {
				return err
			}
			rows := simplex.Triangle(n)
			w := cmd.OutOrStdout()
			return emit(w, format, rows, func() error {
				writeTriangle(w, rows)
				return nil
			})
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

func writeTriangle(w io.Writer, rows []simplex.Row) {
	printTitle(w, "Pascal's Triangle")
	table := make([][]string, len(rows))
	for i, r := range rows {
		table[i] = []string{strconv.Itoa(i), r.String(), r.Sum().String()}
	}
	fmt.Fprintln(w, newTable("n", "Row", "Sum").Rows(table...).Render())
}

type simplexResult struct {
	Dimension int               `json:"dimension" yaml:"dimension"`
	Faces     simplex.FaceTable `json:"faces" yaml:"faces"`
	Total     *big.Int          `json:"total" yaml:"total"`
}

// simplexCommand creates the simplex command.
func (c *CLI) simplexCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "simplex <dim>",
		Short: "Count the faces of a simplex",
		Long: `Count the faces of the simplex of the given dimension: vertices, edges,
faces, cells and higher elements. Dimension -1 is the void.`,
		Example: `  cosmos simplex 3
  cosmos simplex -- -1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dim, err := boundedArg("dim", args[0], -1, maxSimplexDim)
			if err != nil {
				return err
			}
			faces := simplex.Faces(dim)
			res := simplexResult{Dimension: dim, Faces: faces, Total: faces.Total()}

			w := cmd.OutOrStdout()
			return emit(w, format, res, func() error {
				printTitle(w, fmt.Sprintf("%d-simplex", dim))
				for _, f := range faces {
					printKeyValue(w, f.Name, f.Count.String())
				}
				printDetail(w, "%s elements in total", res.Total)
				return nil
			})
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

type nestedResult struct {
	Level      int    `json:"level" yaml:"level"`
	Tuple      string `json:"tuple" yaml:"tuple"`
	Expression string `json:"expression" yaml:"expression"`
	Array      []any  `json:"array,omitempty" yaml:"array,omitempty"`
	Leaves     int    `json:"leaves" yaml:"leaves"`
	Depth      int    `json:"depth" yaml:"depth"`
}

// nestedCommand creates the nested command.
func (c *CLI) nestedCommand() *cobra.Command {
	var (
		format string
		array  bool
	)

	cmd := &cobra.Command{
		Use:   "nested <level>",
		Short: "Build the nested expression of a level",
		Long: `Build the nested expression of a level. Level L (L > 1) holds L copies
of level L-1; level 1 and below are the base [1].`,
		Example: `  cosmos nested 3
  cosmos nested 4 --array -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := boundedArg("level", args[0], 0, maxNestedLevel)
			if err != nil {
				return err
			}
			e := nested.Build(level)
			res := nestedResult{
				Level:      level,
				Tuple:      e.String(),
				Expression: nested.Render(e),
				Leaves:     e.Leaves(),
				Depth:      e.Depth(),
			}
			if array {
				res.Array = nested.ToArray(e)
			}

			w := cmd.OutOrStdout()
			return emit(w, format, res, func() error {
				printTitle(w, fmt.Sprintf("Nested level %d", level))
				printKeyValue(w, "Expression", res.Expression)
				printKeyValue(w, "Tuple", res.Tuple)
				if array {
					printKeyValue(w, "Array", fmt.Sprint(res.Array))
				}
				printDetail(w, "%d leaves, depth %d", res.Leaves, res.Depth)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&array, "array", false, "include the nested array form")
	addFormatFlag(cmd, &format)
	return cmd
}

type rootedTerm struct {
	Nodes int      `json:"nodes" yaml:"nodes"`
	Count *big.Int `json:"count" yaml:"count"`
	// Nesting is the nesting depth whose terms line up with trees of this
	// many nodes, and Terms its term count.
	Nesting int `json:"nesting,omitempty" yaml:"nesting,omitempty"`
	Terms   int `json:"terms,omitempty" yaml:"terms,omitempty"`
}

// rootedCommand creates the rooted command.
func (c *CLI) rootedCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rooted <n>",
		Short: "Count unlabeled rooted trees with up to n nodes",
		Long: `Count unlabeled rooted trees with 1..n nodes. Nesting depth d and its
term count are shown next to d+1 nodes. They agree through depth 4.`,
		Example: `  cosmos rooted 10`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := boundedArg("n", args[0], 1, maxRootedTerms)
			if err != nil {
				return err
			}
			terms := rootedTerms(n)

			w := cmd.OutOrStdout()
			return emit(w, format, terms, func() error {
				printTitle(w, "Rooted Trees")
				rows := make([][]string, len(terms))
				for i, t := range terms {
					depth, count := "", ""
					if t.Nesting > 0 {
						depth, count = strconv.Itoa(t.Nesting), strconv.Itoa(t.Terms)
					}
					rows[i] = []string{strconv.Itoa(t.Nodes), t.Count.String(), depth, count}
				}
				fmt.Fprintln(w, newTable("Nodes", "Trees", "Nesting", "Terms").Rows(rows...).Render())
				return nil
			})
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

// rootedTerms lists the tree counts for 1..n nodes. Nesting depth d sits
// next to d+1 nodes.
func rootedTerms(n int) []rootedTerm {
	seq := rooted.Sequence(n)
	out := make([]rootedTerm, len(seq))
	for i, count := range seq {
		out[i] = rootedTerm{Nodes: i + 1, Count: count}
		if terms, ok := rooted.TermsForNesting(i); ok {
			out[i].Nesting = i
			out[i].Terms = terms
		}
	}
	return out
}

// boundedArg parses an integer argument and checks lo <= v <= hi.
func boundedArg(name, s string, lo, hi int) (int, error) {
	v, err := parseInt(name, s)
	if err != nil {
		return 0, err
	}
	if v < lo || v > hi {
		return 0, errors.InvalidArgument("%s must be between %d and %d, got %d", name, lo, hi, v)
	}
	return v, nil
}
