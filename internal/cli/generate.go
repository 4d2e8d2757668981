package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspbb/geo"
	"github.com/katalvlaran/tspbb/problem"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		size   int
		mode   string
		seed   int64
		output string
		name   string
	)
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Write a random city instance as YAML",
		Example: `  tspbb generate --size 15 --mode hard --seed 3 -o hard15.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := geo.ParseMode(mode)
			if err != nil {
				return err
			}
			gm, err := geo.Generate(size, m, seed)
			if err != nil {
				return err
			}
			if name == "" {
				name = fmt.Sprintf("%s-%d-seed%d", m, size, seed)
			}
			doc := problem.FromGeo(gm, name)
			doc.Seed = seed

			if output == "" {
				return problem.Encode(c.out, &doc)
			}
			if err := problem.Save(output, &doc); err != nil {
				return err
			}

			s := gm.Summary()
			p := c.printer()
			p.success("Generated %s", name)
			p.detail("%d cities, mode %s, %d removed edges, mean edge cost %s",
				s.Cities, s.Mode, s.Removed, humanize.CommafWithDigits(s.MeanCost, 1))
			p.file(output)
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 10, "number of cities")
	cmd.Flags().StringVar(&mode, "mode", "easy", "easy, normal or hard")
	cmd.Flags().Int64Var(&seed, "seed", 1, "generator seed")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&name, "name", "", "problem name")

	return cmd
}
