package sla

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed sla-config.yaml
var defaultConfigYAML []byte

// Load reads a YAML SLA config from path. A missing or invalid config is
// fatal at startup; there are no runtime error paths in the lookups.
func Load(path string) (Config, error) {
	// #nosec G304 -- path is operator-provided config path.
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read sla config: %w", err)
	}
	return parse(raw)
}

// Default returns the config embedded in the binary, used when no path is
// configured. The demo dataset is calibrated against it.
func Default() Config {
	cfg, err := parse(defaultConfigYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded sla config invalid: %v", err))
	}
	return cfg
}

func parse(raw []byte) (Config, error) {
	expanded := os.ExpandEnv(string(raw))
	expanded = strings.ReplaceAll(expanded, "\r\n", "\n")

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse sla config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid sla config: %w", err)
	}

	sum := sha256.Sum256(raw)
	cfg.Hash = "sha256:" + hex.EncodeToString(sum[:])
	return cfg, nil
}
