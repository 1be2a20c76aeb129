package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
sla_config_path: /etc/chainguard/sla.yaml
decision_log_capacity: 250
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/etc/chainguard/sla.yaml", cfg.SlaConfigPath)
	assert.Equal(t, 250, cfg.DecisionLogCapacity)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("CHAINGUARD_SLA_PATH", "/tmp/sla.yaml")
	path := writeConfig(t, "sla_config_path: ${CHAINGUARD_SLA_PATH}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/sla.yaml", cfg.SlaConfigPath)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("zero value is valid", func(t *testing.T) {
		assert.NoError(t, Config{}.Validate())
	})

	t.Run("negative capacity rejected", func(t *testing.T) {
		err := Config{DecisionLogCapacity: -1}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decision_log_capacity")
	})

	t.Run("unknown log level rejected", func(t *testing.T) {
		err := Config{LogLevel: "verbose"}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log_level")
	})
}
