package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the fixed per-enumerator configuration. Validated once at
// construction and never mutated during a run.
type Config struct {
	// MaxCombinationSize bounds elements per candidate, minimum 2.
	MaxCombinationSize int `yaml:"max_combination_size"`

	// Interaction type toggles.
	EnableProvisionType bool `yaml:"enable_provision_type"`
	EnableTimingType    bool `yaml:"enable_timing_type"`

	// Abstraction level toggles.
	EnableClassLevel    bool `yaml:"enable_class_level"`
	EnableInstanceLevel bool `yaml:"enable_instance_level"`

	// ScoreThreshold drops candidates scoring below it, in [0,1].
	ScoreThreshold float64 `yaml:"score_threshold"`

	// ApplyHazardRelevance toggles the hazard keyword boost.
	ApplyHazardRelevance bool `yaml:"apply_hazard_relevance"`

	// EnableTemporalAnalysis is reserved for future sequencing analysis.
	// Accepted but currently inert.
	EnableTemporalAnalysis bool `yaml:"enable_temporal_analysis"`

	// MaxCandidates caps the candidate population per run; exceeding it
	// aborts the run. 0 disables the cap.
	MaxCandidates int `yaml:"max_candidates"`
}

// AviationPreset returns the aviation defaults used by the host tool:
// every generator on, three-way combinations, a mid balance between
// recall and review burden.
func AviationPreset() Config {
	return Config{
		MaxCombinationSize:   3,
		EnableProvisionType:  true,
		EnableTimingType:     true,
		EnableClassLevel:     true,
		EnableInstanceLevel:  true,
		ScoreThreshold:       0.5,
		ApplyHazardRelevance: true,
		MaxCandidates:        5000,
	}
}

// Validate rejects out-of-range values. Called by New; an enumerator is
// never constructed over an invalid config.
func (c Config) Validate() error {
	if c.MaxCombinationSize < 2 {
		return fmt.Errorf("max_combination_size must be >= 2, got %d", c.MaxCombinationSize)
	}
	if c.ScoreThreshold < 0 || c.ScoreThreshold > 1 {
		return fmt.Errorf("score_threshold must be within [0,1], got %v", c.ScoreThreshold)
	}
	if c.MaxCandidates < 0 {
		return fmt.Errorf("max_candidates must be >= 0, got %d", c.MaxCandidates)
	}
	if !c.EnableProvisionType && !c.EnableTimingType {
		return fmt.Errorf("at least one interaction type must be enabled")
	}
	if !c.EnableClassLevel && !c.EnableInstanceLevel {
		return fmt.Errorf("at least one abstraction level must be enabled")
	}
	return nil
}

// LoadConfig reads a YAML config file. An empty path or missing file
// falls back to the aviation preset; YAML overwrites only specified
// fields. The result is validated.
func LoadConfig(path string) (Config, error) {
	cfg := AviationPreset()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
