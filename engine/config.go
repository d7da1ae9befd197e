package engine

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config tunes the engine's time budgets and hybrid
// random-test-generation thresholds, and records a PFS word width (spec §4.7, §5, AMBIENT STACK
// Configuration). The zero Config is never used directly; build one
// with NewConfig (functional options) or LoadConfig (YAML file).
type Config struct {
	// WordWidth records a PFS word width in bits (32 or 64). Nothing in
	// the engine reads it: pfs always packs pfs.WordWidth (64) bits per
	// evaluation, whatever this field holds.
	WordWidth int `yaml:"word_width"`

	// TimeBudget bounds a single PODEM/D-alg Generate call (spec §4.5/
	// §5 default: 1 second per fault).
	TimeBudget time.Duration `yaml:"time_budget"`

	// RandSeed seeds the engine's PRNG for RTG's random pattern
	// batches and for filling don't-care PIs in deterministic mode
	// (spec §5: "implementers must expose a seed hook for testing").
	RandSeed int64 `yaml:"rand_seed"`

	// HybridGainThreshold is Atpg's hybrid-mode stopping rule: random
	// generation stops once a batch's coverage gain over the previous
	// batch falls below this many percentage points (spec §4.7
	// default: 5). RandomTestGeneration/Rtg do not read it.
	HybridGainThreshold float64 `yaml:"hybrid_gain_threshold"`

	// HybridBatchFraction divides the total fault count to size each of
	// Atpg's random batches: batch size = ceil(N * fraction) (spec §4.7
	// default: 0.1, i.e. ⌈N/10⌉ rows). RandomTestGeneration/Rtg take
	// their batch size as an argument instead.
	HybridBatchFraction float64 `yaml:"hybrid_batch_fraction"`
}

// Option configures a Config via NewConfig, the functional-options
// pattern used throughout this module (see also simulate.Option,
// podem.Option, dalg.Option).
type Option func(*Config)

// WithWordWidth sets Config.WordWidth (not read by pfs; see
// Config.WordWidth).
func WithWordWidth(bits int) Option {
	return func(c *Config) { c.WordWidth = bits }
}

// WithTimeBudget overrides the per-fault PODEM/D-alg time budget.
func WithTimeBudget(d time.Duration) Option {
	return func(c *Config) { c.TimeBudget = d }
}

// WithRandSeed overrides the PRNG seed.
func WithRandSeed(seed int64) Option {
	return func(c *Config) { c.RandSeed = seed }
}

// WithHybridGainThreshold overrides Atpg's hybrid stopping-rule
// percentage.
func WithHybridGainThreshold(pct float64) Option {
	return func(c *Config) { c.HybridGainThreshold = pct }
}

// WithHybridBatchFraction overrides Atpg's random batch-sizing
// fraction.
func WithHybridBatchFraction(frac float64) Option {
	return func(c *Config) { c.HybridBatchFraction = frac }
}

// DefaultConfig returns the spec's stated defaults: WordWidth 64,
// a 1-second per-fault budget, a fixed (non-time-seeded) RandSeed for
// reproducible testing, a 5-percentage-point hybrid gain threshold,
// and ⌈N/10⌉ batches.
func DefaultConfig() Config {
	return Config{
		WordWidth:           64,
		TimeBudget:          time.Second,
		RandSeed:            1,
		HybridGainThreshold: 5.0,
		HybridBatchFraction: 0.1,
	}
}

// NewConfig builds a Config from DefaultConfig with opts applied in
// order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// LoadConfig reads a YAML file at path and overlays its fields onto
// DefaultConfig — a field absent from the file keeps its default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigIO, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigFormat, err)
	}
	return cfg, nil
}
