package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspbb/geo"
	"github.com/katalvlaran/tspbb/tsp"
)

// benchSummary holds the distribution of one measured quantity.
type benchSummary struct {
	Mean, Median, P90, Max float64
}

func summarize(data []float64) (benchSummary, error) {
	var (
		s   benchSummary
		err error
	)
	if s.Mean, err = stats.Mean(data); err != nil {
		return s, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return s, err
	}
	if s.P90, err = stats.Percentile(data, 90); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, err
	}

	return s, nil
}

// benchCommand creates the bench command.
func (c *CLI) benchCommand() *cobra.Command {
	var (
		size int
		runs int
		mode string
		seed int64
		sf   solverFlags
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Summarize search effort across random instances",
		Long: `Generates --runs instances (seeds --seed, --seed+1, ...), solves each, and
reports mean, median, 90th percentile and maximum of elapsed time, states
created and the cost relative to a random tour.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			m, err := geo.ParseMode(mode)
			if err != nil {
				return err
			}
			if runs < 1 {
				return fmt.Errorf("--runs must be positive, got %d", runs)
			}
			opts, err := sf.options(cmd, nil)
			if err != nil {
				return err
			}

			var (
				elapsed = make([]float64, 0, runs)
				created = make([]float64, 0, runs)
				ratio   = make([]float64, 0, runs)
				optimal int
			)
			prog := newProgress(logger)
			for i := 0; i < runs; i++ {
				s := seed + int64(i)
				gm, err := geo.Generate(size, m, s)
				if err != nil {
					return err
				}
				res, err := tsp.Solve(ctx, gm, opts)
				if err != nil {
					logger.Warn("run failed", "seed", s, "err", err)
					continue
				}
				if res.Status.Optimal() {
					optimal++
				}
				elapsed = append(elapsed, res.Elapsed.Seconds())
				created = append(created, float64(res.Stats.Created))
				if _, rc, rerr := tsp.RandomTour(gm, opts.StartCity, opts.FallbackAttempts, s); rerr == nil && rc > 0 {
					ratio = append(ratio, res.Cost/rc)
				}
				logger.Debug("run", "seed", s, "cost", res.Cost, "status", res.Status, "elapsed", res.Elapsed)
			}
			prog.done(fmt.Sprintf("Ran %d instances of %d cities", runs, size))
			if len(elapsed) == 0 {
				return fmt.Errorf("all %d runs failed", runs)
			}

			p := c.printer()
			p.title(fmt.Sprintf("%d × %s-%d", runs, m, size))
			p.number("optimal", fmt.Sprintf("%d/%d", optimal, len(elapsed)))

			if s, err := summarize(elapsed); err == nil {
				p.number("elapsed", fmt.Sprintf("mean %s  median %s  p90 %s  max %s",
					seconds(s.Mean), seconds(s.Median), seconds(s.P90), seconds(s.Max)))
			}
			if s, err := summarize(created); err == nil {
				p.number("states", fmt.Sprintf("mean %s  median %s  p90 %s  max %s",
					humanize.SIWithDigits(s.Mean, 1, ""), humanize.SIWithDigits(s.Median, 1, ""),
					humanize.SIWithDigits(s.P90, 1, ""), humanize.SIWithDigits(s.Max, 1, "")))
			}
			if s, err := summarize(ratio); err == nil {
				p.number("vs random", fmt.Sprintf("mean %.1f%%  median %.1f%%  p90 %.1f%%",
					100*s.Mean, 100*s.Median, 100*s.P90))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 12, "cities per instance")
	cmd.Flags().IntVar(&runs, "runs", 10, "number of instances")
	cmd.Flags().StringVar(&mode, "mode", "easy", "easy, normal or hard")
	cmd.Flags().Int64Var(&seed, "seed", 1, "first generator seed")
	sf.register(cmd)

	return cmd
}

func seconds(s float64) string {
	return time.Duration(s * float64(time.Second)).Round(time.Microsecond).String()
}
