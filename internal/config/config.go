// Package config loads the engine's runtime settings: index and corpus file
// locations, batch sizes, and default result counts, via viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// EngineConfig holds the settings shared by the build-index and search
// binaries.
type EngineConfig struct {
	// IndexPath is where buildindex writes the index when --out is not
	// given. The search binary takes its index path as an argument and does
	// not read this field.
	IndexPath string
	// CorpusPath is the document source consumed when building an index.
	CorpusPath string
	// SynonymsPath is an optional JSONL file of term/alternatives records
	// used for query expansion. Empty disables expansion.
	SynonymsPath string
	// BatchSize is loaded from the config file but not consulted by either
	// binary: buildindex reads the whole corpus and writes the index once.
	BatchSize int
	// Workers is loaded from the config file but not consulted by either
	// binary: buildindex tokenizes and indexes documents one at a time on
	// a single goroutine.
	Workers int
	// DefaultNumResults is how many results a query returns when the
	// caller doesn't specify a count.
	DefaultNumResults int
}

// LoadConfig reads a YAML config file from filename and unmarshals it into
// an EngineConfig.
func LoadConfig(filename string) (*EngineConfig, error) {
	viper.SetConfigName(filename)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	var cfg EngineConfig
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: cannot read %s: %w", filename, err)
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: cannot unmarshal %s: %w", filename, err)
	}
	return &cfg, nil
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		IndexPath:         "index.jsonl",
		CorpusPath:        "corpus.json",
		SynonymsPath:      "",
		BatchSize:         500,
		Workers:           3,
		DefaultNumResults: 10,
	}
}
