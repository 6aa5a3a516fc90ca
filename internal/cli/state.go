package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cosmos/pkg/errors"
	"github.com/matzehuels/cosmos/pkg/systems"
)

const maxStateSteps = 10_000

// stateCommand creates the state command.
func (c *CLI) stateCommand() *cobra.Command {
	var (
		format string
		steps  int
	)

	cmd := &cobra.Command{
		Use:   "state <level>",
		Short: "Run the state model of a level forward",
		Long: `Build the state model of level 1..5 and advance it --steps times.

  1  single center, static
  2  subjective/objective polarity, each step transitions at rate 0.1
  3  four relation terms, static
  4  enneagram, each step advances the 12-stage cycle
  5  tetrahedron, each step rotates about vertex 0`,
		Example: `  cosmos state 4 --steps 3
  cosmos state 5 -f json`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: levelArgs()[1:],
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseInt("level", args[0])
			if err != nil {
				return err
			}
			if steps > maxStateSteps {
				return errors.InvalidArgument("steps must be at most %d, got %d", maxStateSteps, steps)
			}
			s, err := systems.Evolve(level, steps)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("evolved state", "system", level, "steps", steps)

			w := cmd.OutOrStdout()
			return emit(w, format, s, func() error {
				writeState(w, s)
				return nil
			})
		},
	}
	addFormatFlag(cmd, &format)
	cmd.Flags().IntVarP(&steps, "steps", "n", 0, "number of steps to advance")
	return cmd
}

func writeState(w io.Writer, s systems.State) {
	printTitle(w, fmt.Sprintf("Level %d: %s", s.Level, s.Name))
	printKeyValue(w, "Steps", strconv.Itoa(s.Steps))
	printKeyValue(w, "Energy", formatFloat(s.Energy))

	switch {
	case s.Wholeness != nil:
		printKeyValue(w, "Center", formatFloat(s.Wholeness.Center))
		printKeyValue(w, "Interface", formatFloat(s.Wholeness.InterfaceRatio()))
	case s.Perception != nil:
		p := s.Perception
		printKeyValue(w, "Subjective", formatFloat(p.Subjective))
		printKeyValue(w, "Objective", formatFloat(p.Objective))
		printKeyValue(w, "Polarity", formatFloat(p.Polarity()))
		printKeyValue(w, "Term", formatFloat(p.Term()))
		printKeyValue(w, "Dominant", p.Dominant().String())
	case s.Relations != nil:
		r := s.Relations
		printKeyValue(w, "Centers", formatFloats(r.Centers[:]))
		for _, rel := range []systems.Relation{systems.Discretion, systems.Means, systems.Goal, systems.Consequence} {
			printMapping(w, rel.String(), formatFloat(r.Term(rel)))
		}
		universal, particular := r.DyadicPairs()
		printKeyValue(w, "Universal", formatFloats(universal[:]))
		printKeyValue(w, "Particular", formatFloats(particular[:]))
	case s.Enneagram != nil:
		e := s.Enneagram
		printKeyValue(w, "Stage", fmt.Sprintf("%d of %d (%s)", e.Stage+1, systems.StagesPerCycle, e.Mode()))
		rows := make([][]string, 0, 9)
		for pos := 1; pos <= 9; pos++ {
			role := "six-pointed"
			if pos%3 == 0 {
				role = "mediating"
			}
			rows = append(rows, []string{strconv.Itoa(pos), role, formatFloat(e.Value(pos))})
		}
		fmt.Fprintln(w, newTable("Position", "Figure", "Value").Rows(rows...).Render())
	case s.Tetrahedron != nil:
		t := s.Tetrahedron
		ids := make([]string, len(t.Vertices))
		for i, v := range t.Vertices {
			ids[i] = strconv.Itoa(v.ID)
		}
		printKeyValue(w, "Vertices", strings.Join(ids, " "))
		printKeyValue(w, "Edges", strconv.Itoa(len(t.Edges)))
		printKeyValue(w, "Faces", strconv.Itoa(len(t.Faces)))
		printKeyValue(w, "Services", fmt.Sprintf("%d (%s)", len(t.Services), strings.Join(systems.Polarities[:], " ")))
		for stream := 0; stream < 3; stream++ {
			printDetail(w, "stream %d at %d°, steps %v", stream, systems.PhaseAngle(stream), systems.StepTriad(stream+1))
		}
	}
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', 4, 64) }

func formatFloats(fs []float64) string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = formatFloat(f)
	}
	return strings.Join(out, " ")
}
