// Package config holds the tunable values a search run is configured with:
// the penalty.Manager's two coefficients and the sweep-throttle interval a
// localsearch.Session checks its stop predicate at. It carries no vehicle
// count or capacity; a problem.Data takes those from its constructor
// arguments or instance file. Build one with New and a list of Option
// setters, or load one from a YAML file with Load.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solverkit/cvrptw/penalty"
)

// Defaults mirror penalty.New's own clamp-to-1 floor and the throttle
// interval localsearch.NewSession picks when none is given explicitly.
const (
	DefaultCapacityPenalty = 1
	DefaultTimeWarpPenalty = 1
	DefaultCheckEvery      = 2048
)

// Option mutates a Config under construction. Safe to apply more than
// once; later options win. Constructors panic only on nonsensical values,
// never on values that are merely unusual.
type Option func(*Config)

// Config is the resolved set of tunables a session is built from. Fields
// are exported so yaml.Unmarshal can populate them directly; construct
// through New or Load rather than a literal so defaults and validation
// apply uniformly.
type Config struct {
	CapacityPenalty int64 `yaml:"capacityPenalty"`
	TimeWarpPenalty int64 `yaml:"timeWarpPenalty"`
	CheckEvery      int   `yaml:"checkEvery"`
}

func defaultConfig() Config {
	return Config{
		CapacityPenalty: DefaultCapacityPenalty,
		TimeWarpPenalty: DefaultTimeWarpPenalty,
		CheckEvery:      DefaultCheckEvery,
	}
}

// New builds a Config starting from the package defaults and applying opts
// in order.
func New(opts ...Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithCapacityPenalty sets the initial load-penalty coefficient. Panics if
// v is not positive.
func WithCapacityPenalty(v int64) Option {
	if v <= 0 {
		panic("config: WithCapacityPenalty requires v > 0")
	}

	return func(c *Config) { c.CapacityPenalty = v }
}

// WithTimeWarpPenalty sets the initial time-warp-penalty coefficient.
// Panics if v is not positive.
func WithTimeWarpPenalty(v int64) Option {
	if v <= 0 {
		panic("config: WithTimeWarpPenalty requires v > 0")
	}

	return func(c *Config) { c.TimeWarpPenalty = v }
}

// WithCheckEvery sets how many candidate evaluations a Session lets pass
// between stop/ctx checks. Panics if n is not positive.
func WithCheckEvery(n int) Option {
	if n <= 0 {
		panic("config: WithCheckEvery requires n > 0")
	}

	return func(c *Config) { c.CheckEvery = n }
}

// Load reads a YAML file at path into a Config, applying defaults to any
// field the file omits and then validating the result (a field the file
// sets to zero or below is rejected, not defaulted).
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// NewPenaltyManager builds a penalty.Manager seeded with this Config's
// coefficients, the construction path a caller loading a Config is
// expected to use rather than reaching into penalty.New directly.
func (c Config) NewPenaltyManager() *penalty.Manager {
	return penalty.New(c.CapacityPenalty, c.TimeWarpPenalty)
}

// Validate reports whether every field holds a value the rest of the
// module accepts (penalty.New's own floor would otherwise silently mask a
// zero or negative value coming from an untrusted file).
func (c Config) Validate() error {
	if c.CapacityPenalty <= 0 {
		return fmt.Errorf("capacityPenalty must be > 0, got %d", c.CapacityPenalty)
	}
	if c.TimeWarpPenalty <= 0 {
		return fmt.Errorf("timeWarpPenalty must be > 0, got %d", c.TimeWarpPenalty)
	}
	if c.CheckEvery <= 0 {
		return fmt.Errorf("checkEvery must be > 0, got %d", c.CheckEvery)
	}

	return nil
}
