// Package config loads solver and server settings from TOML files.
//
//	[solver]
//	time_limit = "30s"
//	depth_bias = 31
//	start_city = 0
//	eps = 1e-9
//	seed = 1
//	fallback_attempts = 1000
//
//	[server]
//	addr = ":8080"
//	cache_size = 256
//	max_cities = 40
//
// Missing keys keep the values of Default.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/tspbb/tsp"
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid value")

// Duration is a time.Duration written as a Go duration string ("1m30s").
type Duration struct{ time.Duration }

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	d.Duration = v

	return nil
}

// MarshalText writes the duration string.
func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Solver mirrors tsp.Options.
type Solver struct {
	TimeLimit        Duration `toml:"time_limit"`
	DepthBias        float64  `toml:"depth_bias"`
	StartCity        int      `toml:"start_city"`
	Eps              float64  `toml:"eps"`
	Seed             int64    `toml:"seed"`
	FallbackAttempts int      `toml:"fallback_attempts"`
}

// Server configures the HTTP front end.
type Server struct {
	Addr      string `toml:"addr"`
	CacheSize int    `toml:"cache_size"`
	MaxCities int    `toml:"max_cities"`
}

// Config is the root of a configuration file.
type Config struct {
	Solver Solver `toml:"solver"`
	Server Server `toml:"server"`
}

// Default returns the built-in configuration.
func Default() Config {
	opts := tsp.DefaultOptions()

	return Config{
		Solver: Solver{
			TimeLimit:        Duration{opts.TimeLimit},
			DepthBias:        opts.DepthBias,
			StartCity:        opts.StartCity,
			Eps:              opts.Eps,
			Seed:             opts.Seed,
			FallbackAttempts: opts.FallbackAttempts,
		},
		Server: Server{
			Addr:      ":8080",
			CacheSize: 256,
			MaxCities: 40,
		},
	}
}

// Load reads path on top of Default. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return cfg, fmt.Errorf("config: %s: unknown key %q: %w", path, undec[0].String(), ErrInvalid)
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Solver.TimeLimit.Duration < 0:
		return fmt.Errorf("%w: solver.time_limit %s", ErrInvalid, c.Solver.TimeLimit)
	case c.Solver.DepthBias < 0:
		return fmt.Errorf("%w: solver.depth_bias %g", ErrInvalid, c.Solver.DepthBias)
	case c.Solver.StartCity < 0:
		return fmt.Errorf("%w: solver.start_city %d", ErrInvalid, c.Solver.StartCity)
	case c.Solver.Eps < 0:
		return fmt.Errorf("%w: solver.eps %g", ErrInvalid, c.Solver.Eps)
	case c.Solver.FallbackAttempts < 0:
		return fmt.Errorf("%w: solver.fallback_attempts %d", ErrInvalid, c.Solver.FallbackAttempts)
	case c.Server.CacheSize < 1:
		return fmt.Errorf("%w: server.cache_size %d", ErrInvalid, c.Server.CacheSize)
	case c.Server.MaxCities < 2:
		return fmt.Errorf("%w: server.max_cities %d", ErrInvalid, c.Server.MaxCities)
	}

	return nil
}

// SolverOptions converts the solver section into tsp.Options.
func (c Config) SolverOptions() tsp.Options {
	opts := tsp.DefaultOptions()
	opts.TimeLimit = c.Solver.TimeLimit.Duration
	opts.DepthBias = c.Solver.DepthBias
	opts.StartCity = c.Solver.StartCity
	opts.Eps = c.Solver.Eps
	opts.Seed = c.Solver.Seed
	opts.FallbackAttempts = c.Solver.FallbackAttempts

	return opts
}
