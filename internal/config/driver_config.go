package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DriverConfig is the top-level hornc.yaml configuration: how the lowering
// pass should behave and what it should hand the solver once it's done.
type DriverConfig struct {
	// Solver selects which (external) solver backend the lowered Program is
	// destined for — this package never constructs one, it only records the
	// choice onto ir.Program.SolverChoice.
	Solver SolverConfig `yaml:"solver"`

	// StrictAutoTraitChecks is parsed from the config file but not read by
	// the lowering driver or the CLI: the auto-trait checks (no parameters
	// beyond Self, no where-clauses, no associated types) are always
	// applied, and marker traits are not checked.
	StrictAutoTraitChecks bool `yaml:"strict_auto_trait_checks"`

	// ContinueAfterItemError is parsed from the config file but not read by
	// the lowering driver, the session layer, or the CLI: lowering always
	// stops at the first item error and reports only that one.
	ContinueAfterItemError bool `yaml:"continue_after_item_error"`
}

// SolverConfig is the yaml-facing shape of ir.SolverChoice.
type SolverConfig struct {
	Name            string `yaml:"name"`
	MaxSize         int    `yaml:"max_size"`
	ExpectedAnswers int    `yaml:"expected_answers"`
}

// DefaultDriverConfig mirrors the solver defaults chalk ships with in its
// own test harness: a small recursive solver with a conservative max size.
func DefaultDriverConfig() DriverConfig {
	return DriverConfig{
		Solver: SolverConfig{Name: "recursive", MaxSize: 10},
	}
}

// LoadDriverConfig reads and parses a hornc.yaml file.
func LoadDriverConfig(path string) (DriverConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DriverConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseDriverConfig(data, path)
}

// ParseDriverConfig parses hornc.yaml content from bytes, filling in
// defaults for anything the document leaves unset. The path argument is
// used only for error messages.
func ParseDriverConfig(data []byte, path string) (DriverConfig, error) {
	cfg := DefaultDriverConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DriverConfig{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Solver.Name == "" {
		cfg.Solver.Name = "recursive"
	}
	if cfg.Solver.MaxSize <= 0 {
		cfg.Solver.MaxSize = 10
	}
	return cfg, nil
}
