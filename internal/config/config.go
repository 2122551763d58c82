// Package config loads the bellman YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks when --config is not given.
const DefaultPath = "bellman.yaml"

var ErrInvalid = errors.New("invalid config")

// Config holds all bellman settings.
type Config struct {
	// Evaluation
	Gamma       float64 `yaml:"gamma"`
	Start       uint8   `yaml:"start"`
	SeedVisited bool    `yaml:"seed_visited"`
	MaxDepth    int     `yaml:"max_depth"` // 0 = unlimited

	Logging LoggingConfig `yaml:"logging"`
	Chart   ChartConfig   `yaml:"chart"`
	Windy   WindyConfig   `yaml:"windy"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	JSON  bool   `yaml:"json"`
}

// ChartConfig configures the HTML utility sweep chart.
type ChartConfig struct {
	OutputDir string `yaml:"output_dir"`
	File      string `yaml:"file"`
	Title     string `yaml:"title"`
}

// WindyConfig describes the windy grid fixture.
type WindyConfig struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	BaseWind   []int   `yaml:"base_wind"`
	Wind0      float64 `yaml:"wind0"`
	Wind1      float64 `yaml:"wind1"`
	Wind2      float64 `yaml:"wind2"`
	StepReward float64 `yaml:"step_reward"`
	GoalReward float64 `yaml:"goal_reward"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Gamma:       1.0,
		Start:       1,
		SeedVisited: true,
		Logging: LoggingConfig{
			Level: "info",
		},
		Chart: ChartConfig{
			OutputDir: "charts",
			File:      "utility.html",
			Title:     "utility by discount factor",
		},
		Windy: WindyConfig{
			Rows:       4,
			Cols:       4,
			BaseWind:   []int{1, 2, 2, 1},
			Wind0:      0.1,
			Wind1:      0.8,
			Wind2:      0.1,
			StepReward: -1,
			GoalReward: 10,
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("BELLMAN_GAMMA"); v != "" {
		g, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("BELLMAN_GAMMA: %w", err)
		}
		c.Gamma = g
	}
	if v := os.Getenv("BELLMAN_MAX_DEPTH"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BELLMAN_MAX_DEPTH: %w", err)
		}
		c.MaxDepth = d
	}
	if v := os.Getenv("BELLMAN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks ranges. Gamma outside [0,1] is accepted by the evaluator
// but rejected here.
func (c *Config) Validate() error {
	if c.Gamma < 0 || c.Gamma > 1 {
		return fmt.Errorf("%w: gamma %v outside [0,1]", ErrInvalid, c.Gamma)
	}
	if c.Start < 1 || c.Start > 11 {
		return fmt.Errorf("%w: start cell %d outside 1..11", ErrInvalid, c.Start)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: negative max_depth %d", ErrInvalid, c.MaxDepth)
	}
	if c.Chart.File == "" {
		return fmt.Errorf("%w: chart file name is empty", ErrInvalid)
	}
	return nil
}

// ChartPath joins the chart output directory and file name.
func (c *Config) ChartPath() string {
	return filepath.Join(c.Chart.OutputDir, c.Chart.File)
}
