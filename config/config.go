// Package config provides YAML run-configuration loading and validation
// for the petrinet CLI: read the file, apply defaults, then validate,
// collecting every problem before reporting.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level run configuration for an analysis invocation.
type Config struct {
	// NetPath is the path to the PNML document to analyze. Required.
	NetPath string `yaml:"net_path"`

	// Task selects which analysis to run: "explore", "symbolic",
	// "deadlock", "maximize", or "analyze" (symbolic reachability followed
	// by deadlock search). Defaults to "analyze" when omitted.
	Task string `yaml:"task"`

	// Weights maps place id to an integer weight, consulted only by the
	// "maximize" task. Places omitted default to weight 0.
	Weights map[string]int `yaml:"weights"`

	// LogLevel is one of "debug", "info", "warn", or "error". Defaults to
	// "info" when omitted. Only "debug" turns logging on (structured
	// progress lines on stderr); the other three values all leave logging
	// off, and no per-severity filtering is applied.
	LogLevel string `yaml:"log_level"`

	// Limits bounds each component's search; see Limits for defaults.
	Limits Limits `yaml:"limits"`
}

// Limits collects the resource caps each long-running analysis
// component accepts, so a run can be bounded instead of left open-ended.
type Limits struct {
	// ExploreVisited caps the Bitmask BFS Explorer's visited-set size.
	// Zero means unlimited.
	ExploreVisited int `yaml:"explore_visited"`

	// SymbolicIterations caps the symbolic fixed-point loop's round
	// count. Zero means unlimited.
	SymbolicIterations int `yaml:"symbolic_iterations"`

	// SymbolicNodes caps the BDD manager's node table size. Zero means
	// unlimited.
	SymbolicNodes int `yaml:"symbolic_nodes"`

	// ILPAttempts caps the ILP Oracle Loop's cut-injection iterations.
	// Zero means unlimited.
	ILPAttempts int `yaml:"ilp_attempts"`

	// ILPSolveTimeoutMS bounds a single branch-and-bound solve, in
	// milliseconds. Zero means unbounded.
	ILPSolveTimeoutMS int `yaml:"ilp_solve_timeout_ms"`
}

var validTasks = map[string]bool{
	"explore":  true,
	"symbolic": true,
	"deadlock": true,
	"maximize": true,
	"analyze":  true,
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Load reads the YAML file at path, unmarshals it into Config, applies
// defaults, and validates required fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: cannot parse %q: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed for %q: %w", path, err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Task == "" {
		cfg.Task = "analyze"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.NetPath == "" {
		errs = append(errs, errors.New("net_path is required"))
	}
	if !validTasks[cfg.Task] {
		errs = append(errs, fmt.Errorf("task %q must be one of: explore, symbolic, deadlock, maximize, analyze", cfg.Task))
	}
	if !validLogLevels[cfg.LogLevel] {
		errs = append(errs, fmt.Errorf("log_level %q must be one of: debug, info, warn, error", cfg.LogLevel))
	}
	for _, n := range []struct {
		name  string
		value int
	}{
		{"limits.explore_visited", cfg.Limits.ExploreVisited},
		{"limits.symbolic_iterations", cfg.Limits.SymbolicIterations},
		{"limits.symbolic_nodes", cfg.Limits.SymbolicNodes},
		{"limits.ilp_attempts", cfg.Limits.ILPAttempts},
		{"limits.ilp_solve_timeout_ms", cfg.Limits.ILPSolveTimeoutMS},
	} {
		if n.value < 0 {
			errs = append(errs, fmt.Errorf("%s must be >= 0", n.name))
		}
	}

	return errors.Join(errs...)
}
