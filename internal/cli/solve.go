package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspbb/tsp"
)

// solveOutput is the --json document of the solve command.
type solveOutput struct {
	RunID  string `json:"run_id"`
	Name   string `json:"name,omitempty"`
	Cities int    `json:"cities"`
	tsp.Result
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		inst   instanceFlags
		sf     solverFlags
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "solve [problem.yaml]",
		Short: "Find the cheapest tour within the time budget",
		Example: `  tspbb solve problem.yaml --time 30s
  tspbb solve --size 20 --mode hard --seed 7 --json`,
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

			runID := uuid.NewString()
			opts.Logger = logger.With("run", runID[:8])
			opts.OnImprove = func(imp tsp.Improvement) {
				logger.Debug("best tour", "solution", imp.Solution, "cost", imp.Cost,
					"elapsed", imp.Elapsed.Round(time.Microsecond))
			}

			prog := newProgress(logger)
			res, err := tsp.Solve(ctx, model, opts)
			if err != nil {
				return fmt.Errorf("solve %s: %w", doc.Name, err)
			}
			prog.done(fmt.Sprintf("Solved %d cities", model.Len()))

			if asJSON {
				enc := json.NewEncoder(c.out)
				enc.SetIndent("", "  ")
				return enc.Encode(solveOutput{RunID: runID, Name: doc.Name, Cities: model.Len(), Result: res})
			}
			c.printResult(doc.Name, model.Len(), res)
			return nil
		},
	}
	inst.register(cmd)
	sf.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

func (c *CLI) printResult(name string, n int, res tsp.Result) {
	p := c.printer()
	p.title(fmt.Sprintf("%s (%d cities)", name, n))
	p.keyValue("tour", tsp.FormatTour(res.Tour))
	p.number("cost", humanize.CommafWithDigits(res.Cost, 3))
	if res.InitialCost > 0 {
		p.number("initial cost", humanize.CommafWithDigits(res.InitialCost, 3))
	}
	p.keyValue("status", res.Status.String())
	p.keyValue("elapsed", res.Elapsed.Round(time.Millisecond).String())
	p.number("improvements", humanize.Comma(int64(res.SolutionsFound)))
	p.number("states", fmt.Sprintf("%s created, %s pruned, %s expanded",
		humanize.Comma(int64(res.Stats.Created)),
		humanize.Comma(int64(res.Stats.Pruned)),
		humanize.Comma(int64(res.Stats.Expanded))))
	p.number("max queue", humanize.Comma(int64(res.Stats.MaxQueue)))

	if res.Status.Optimal() {
		p.success("Tour is optimal")
	} else {
		p.warning("Stopped early (%s); best tour found so far", res.Status)
	}
}
