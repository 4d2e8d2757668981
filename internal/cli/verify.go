package cli

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspbb/tsp"
)

// errMismatch is returned when the search and the oracle disagree.
var errMismatch = errors.New("branch-and-bound cost differs from the exact optimum")

// verifyCommand creates the verify command.
func (c *CLI) verifyCommand() *cobra.Command {
	var (
		inst instanceFlags
		sf   solverFlags
	)
	cmd := &cobra.Command{
		Use:   "verify [problem.yaml]",
		Short: "Check the search result against the Held–Karp optimum",
		Long: fmt.Sprintf(`Runs the branch-and-bound search and the Held–Karp dynamic program on the
same instance and compares their costs. Instances are limited to %d cities.`, tsp.MaxExactCities),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			doc, model, err := inst.load(args)
			if err != nil {
				return err
			}
			opts, err := sf.options(cmd, doc)
			if err != nil {
				return err
			}
			opts.Logger = logger

			prog := newProgress(logger)
			res, err := tsp.Solve(ctx, model, opts)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}
			prog.done("Branch and bound finished")

			prog = newProgress(logger)
			_, exact, err := tsp.SolveExact(model, opts.StartCity)
			if err != nil {
				return fmt.Errorf("exact: %w", err)
			}
			prog.done("Held–Karp finished")

			p := c.printer()
			p.title(doc.Name)
			p.number("branch&bound", fmt.Sprintf("%.3f (%s)", res.Cost, res.Status))
			p.number("held-karp", fmt.Sprintf("%.3f", exact))

			switch diff := math.Abs(res.Cost - exact); {
			case diff <= 1e-6*math.Max(1, exact):
				p.success("Costs match")
				return nil
			case !res.Status.Optimal():
				p.warning("Search stopped early (%s); gap %.3f", res.Status, diff)
				return nil
			default:
				p.failure("Costs differ by %.6f", diff)
				return errMismatch
			}
		},
	}
	inst.register(cmd)
	sf.register(cmd)

	return cmd
}
