package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/maximizer/pkg/errors"
	pkgio "github.com/matzehuels/maximizer/pkg/io"
	"github.com/matzehuels/maximizer/pkg/line"
	"github.com/matzehuels/maximizer/pkg/matching"
	"github.com/matzehuels/maximizer/pkg/symset"
)

// dominatesCommand creates the dominates debug command.
func (c *CLI) dominatesCommand() *cobra.Command {
	var (
		sparse bool
		svg    string
	)

	cmd := &cobra.Command{
		Use:   "dominates <lineA> <lineB>",
		Short: "Check domination between two lines with every matching engine",
		Long: `Check domination between two lines with every matching engine.

Each line is a quoted list of whitespace-separated coordinates, for example
"ab ac". With --sparse the last coordinate of each line is its infinite
coordinate. All engines are expected to agree; a disagreement is reported as
an internal error.

--svg writes the compatibility graph for "A ≥ B" with a maximum matching
highlighted.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDominates(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], sparse, svg)
		},
	}

	cmd.Flags().BoolVar(&sparse, "sparse", false, "treat the last coordinate as the infinite one")
	cmd.Flags().StringVar(&svg, "svg", "", "write the compatibility graph to this SVG file")

	return cmd
}

// comparison is a parsed pair of lines ready for domination checks.
type comparison struct {
	ab symset.Alphabet
	// check reports a ≥ b (or b ≥ a when reversed) with the given engine.
	check func(o line.Oracle, reversed bool) bool
	// a and b are the coordinate lists the compatibility graph is built from.
	a, b           []symset.Set
	aText, bText   string
	aLabel, bLabel []string
}

func parseComparison(a, b string, sparse bool) (*comparison, error) {
	seeds, err := pkgio.ReadSeeds(strings.NewReader(a + "\n" + b + "\n"))
	if err != nil {
		return nil, err
	}
	if seeds.Len() != 2 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "expected two lines, got %d", seeds.Len())
	}
	ab, err := seeds.Alphabet()
	if err != nil {
		return nil, err
	}

	cmp := &comparison{ab: ab}
	if sparse {
		lines, err := seeds.Sparse(ab)
		if err != nil {
			return nil, err
		}
		la, lb := lines[0], lines[1]
		cmp.check = func(o line.Oracle, reversed bool) bool {
			if reversed {
				return o.DominatesSparse(lb, la)
			}
			return o.DominatesSparse(la, lb)
		}
		cmp.a = append(la.Explicit(), la.Infinite())
		cmp.b = lb.Explicit()
		cmp.aText, cmp.bText = la.Format(ab), lb.Format(ab)
		cmp.aLabel = decodeAll(ab, cmp.a)
		cmp.aLabel[len(cmp.aLabel)-1] += " " + line.InfiniteMarker
	} else {
		lines, err := seeds.Fixed(ab)
		if err != nil {
			return nil, err
		}
		la, lb := lines[0], lines[1]
		cmp.check = func(o line.Oracle, reversed bool) bool {
			if reversed {
				return o.DominatesFixed(lb, la)
			}
			return o.DominatesFixed(la, lb)
		}
		cmp.a, cmp.b = la, lb
		cmp.aText, cmp.bText = la.Format(ab), lb.Format(ab)
		cmp.aLabel = decodeAll(ab, cmp.a)
	}
	cmp.bLabel = decodeAll(ab, cmp.b)
	return cmp, nil
}

func decodeAll(ab symset.Alphabet, coords []symset.Set) []string {
	out := make([]string, len(coords))
	for i, s := range coords {
		out[i] = ab.Decode(s)
	}
	return out
}

// runDominates prints the verdict of every engine in both directions.
func (c *CLI) runDominates(ctx context.Context, stdout io.Writer, a, b string, sparse bool, svg string) error {
	cmp, err := parseComparison(a, b, sparse)
	if err != nil {
		return err
	}

	rows := make([][2]bool, len(matching.Algorithms))
	names := make([]string, len(matching.Algorithms))
	for i, alg := range matching.Algorithms {
		o := line.NewOracle(alg)
		rows[i] = [2]bool{cmp.check(o, false), cmp.check(o, true)}
		names[i] = string(alg)
		c.Logger.Debug("checked domination", "matcher", alg, "forward", rows[i][0], "backward", rows[i][1])
	}
	for i := 1; i < len(rows); i++ {
		if rows[i] != rows[0] {
			return errors.New(errors.ErrCodeInternal, "matchers disagree: %s and %s", names[0], names[i])
		}
	}

	fmt.Fprintln(stdout, verdictTable("A", "B", rows, names))
	fmt.Fprintf(stdout, "A = %s\nB = %s\n%s\n", cmp.aText, cmp.bText, verdict(rows[0]))

	if svg != "" {
		if err := writeCompatibilitySVG(ctx, svg, cmp); err != nil {
			return err
		}
		printFile(svg)
	}
	return nil
}

func verdict(r [2]bool) string {
	switch {
	case r[0] && r[1]:
		return "A and B are equal"
	case r[0]:
		return "A dominates B"
	case r[1]:
		return "B dominates A"
	default:
		return "A and B are incomparable"
	}
}

func writeCompatibilitySVG(ctx context.Context, path string, cmp *comparison) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	g := line.Compatibility(cmp.a, cmp.b)
	m := matching.MaximumMatching(g)
	data, err := matching.RenderSVG(ctx, g.ToDOT(cmp.bLabel, cmp.aLabel, &m))
	if err != nil {
		return fmt.Errorf("render compatibility graph: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
