package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspbb/config"
	"github.com/katalvlaran/tspbb/geo"
	"github.com/katalvlaran/tspbb/problem"
	"github.com/katalvlaran/tspbb/tsp"
)

var errNoInstance = errors.New("either a problem file or --size is required")

// instanceFlags selects the instance: a problem file argument or a generated one.
type instanceFlags struct {
	size int
	mode string
	seed int64
}

func (f *instanceFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.size, "size", 0, "generate an instance with this many cities")
	cmd.Flags().StringVar(&f.mode, "mode", "easy", "generated instance mode: easy, normal, hard")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "generator seed")
}

// load returns the problem document and its cost model.
func (f *instanceFlags) load(args []string) (*problem.Document, tsp.CostModel, error) {
	if len(args) > 0 {
		doc, err := problem.Load(args[0])
		if err != nil {
			return nil, nil, err
		}
		model, err := doc.Model()
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", args[0], err)
		}
		if doc.Name == "" {
			doc.Name = args[0]
		}
		return doc, model, nil
	}
	if f.size == 0 {
		return nil, nil, errNoInstance
	}

	mode, err := geo.ParseMode(f.mode)
	if err != nil {
		return nil, nil, err
	}
	gm, err := geo.Generate(f.size, mode, f.seed)
	if err != nil {
		return nil, nil, err
	}
	doc := problem.FromGeo(gm, fmt.Sprintf("%s-%d-seed%d", mode, f.size, f.seed))
	doc.Seed = f.seed

	return &doc, gm, nil
}

// solverFlags override configuration values when set.
type solverFlags struct {
	configPath string
	timeLimit  time.Duration
	depthBias  float64
	start      int
}

func (f *solverFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "TOML configuration file")
	cmd.Flags().DurationVar(&f.timeLimit, "time", tsp.DefaultTimeLimit, "search time budget (0 = unlimited)")
	cmd.Flags().Float64Var(&f.depthBias, "depth-bias", tsp.DefaultDepthBias, "priority penalty per remaining city")
	cmd.Flags().IntVar(&f.start, "start", 0, "start city (defaults to the problem's start)")
}

// loadConfig loads the configuration file, or the defaults.
func (f *solverFlags) loadConfig() (config.Config, error) {
	if f.configPath == "" {
		return config.Default(), nil
	}

	return config.Load(f.configPath)
}

// options resolves tsp.Options: defaults < config file < problem start < flags.
func (f *solverFlags) options(cmd *cobra.Command, doc *problem.Document) (tsp.Options, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return tsp.Options{}, err
	}
	opts := cfg.SolverOptions()
	if doc != nil && doc.Start != 0 {
		opts.StartCity = doc.Start
	}
	if cmd.Flags().Changed("time") {
		opts.TimeLimit = f.timeLimit
	}
	if cmd.Flags().Changed("depth-bias") {
		opts.DepthBias = f.depthBias
	}
	if cmd.Flags().Changed("start") {
		opts.StartCity = f.start
	}

	return opts, nil
}
