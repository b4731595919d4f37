// Package config exposes strongly typed application configuration structs loaded from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// App captures process-wide runtime settings such as name, environment, metrics, and logging levels.
type App struct {
	Name        string
	Env         string
	MetricsAddr string `yaml:"metrics_addr"`
	LogLevel    string `yaml:"log_level"`
}

// Engine selects the instrument the decision loop acts on and where per-cycle
// decisions are recorded. An empty RecordPath disables recording.
type Engine struct {
	TargetProduct string `yaml:"target_product"`
	RecordPath    string `yaml:"record_path"`
}

// StrategyParams groups tunable knobs for a strategy implementation.
type StrategyParams struct {
	Window      int     `yaml:"window"`
	BaseQty     int     `yaml:"base_qty"`
	Entry       float64 `yaml:"entry"`
	Lag         int     `yaml:"lag"`
	Threshold   float64 `yaml:"threshold"`
	MaxPosition int     `yaml:"max_position"`
}

// Strategy specifies which strategy is active along with the parameter bundle.
type Strategy struct {
	Mode   string
	Params StrategyParams
}

// Arb configures the standalone conversion-cycle scanner.
type Arb struct {
	Home    string                        `yaml:"home"`
	MaxHops int                           `yaml:"max_hops"`
	Rates   map[string]map[string]float64 `yaml:"rates"`
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App      App      `yaml:"app"`
	Engine   Engine   `yaml:"engine"`
	Strategy Strategy `yaml:"strategy"`
	Arb      Arb      `yaml:"arb"`
}

// Load reads a YAML file from disk and hydrates a Config struct.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &config, nil
}

// Save persists a Config struct to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
