package queens

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Config stores the tunable parameters of the genetic search.
type Config struct {
	// PopulationSize is the number of random states generated up front and
	// the size of the mating pool selected each generation.
	PopulationSize int `ini:"population_size"`

	// MutationProbability is the per-file chance of random mutation applied
	// to every child produced by mating, in [0.0, 1.0).
	MutationProbability float64 `ini:"mutation_probability"`
}

// DefaultConfig returns the stock search parameters.
func DefaultConfig() *Config {
	return &Config{
		PopulationSize:      1000,
		MutationProbability: 0.05,
	}
}

// LoadConfig loads search parameters from the [queens] section of an INI
// file. Keys absent from the file keep their default values.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := DefaultConfig()
	if err := cfg.Section("queens").MapTo(config); err != nil {
		return nil, fmt.Errorf("failed to map [queens] section: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that the parameters are usable by a search.
func (c *Config) Validate() error {
	if c.PopulationSize > StateSpaceSize {
		return fmt.Errorf("config error: population_size must not exceed the %d representable states, got %d: %w",
			StateSpaceSize, c.PopulationSize, ErrSampleSize)
	}
	if c.PopulationSize < 2 {
		return fmt.Errorf("config error: population_size must be at least 2 to form mating pairs, got %d: %w",
			c.PopulationSize, ErrSampleSize)
	}
	if c.MutationProbability < 0.0 || c.MutationProbability >= 1.0 {
		return fmt.Errorf("config error: mutation_probability must be in [0.0, 1.0), got %v: %w",
			c.MutationProbability, ErrInvalidProbability)
	}
	return nil
}
