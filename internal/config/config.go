package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the application-level configuration for the demo CLI. The SLA
// document itself lives in its own file (see internal/sla).
type Config struct {
	SlaConfigPath       string `yaml:"sla_config_path"`
	DecisionLogCapacity int    `yaml:"decision_log_capacity"`
	LogLevel            string `yaml:"log_level"`
}

func Load(path string) (Config, error) {
	// #nosec G304 -- path is operator-provided config path.
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	expanded := os.ExpandEnv(string(raw))
	expanded = strings.ReplaceAll(expanded, "\r\n", "\n")

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.DecisionLogCapacity < 0 {
		return fmt.Errorf("decision_log_capacity must not be negative")
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error")
	}
	return nil
}
