package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.BackupOn())
}

func TestLoadMalformedFileUsesDefaults(t *testing.T) {
	path := writeConfig(t, "config.json", "{not json at all")
	assert.Equal(t, Default(), Load(path))
}

func TestLoadAppliesPerFieldDefaults(t *testing.T) {
	path := writeConfig(t, "config.json", `{"environment":"production","services":["nginx","php-fpm"]}`)

	cfg := Load(path)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultDeploymentPath, cfg.DeploymentPath)
	assert.True(t, cfg.BackupOn())
	assert.Equal(t, []string{"nginx", "php-fpm"}, cfg.Services)
}

func TestLoadExplicitBackupDisabledSurvives(t *testing.T) {
	path := writeConfig(t, "config.json", `{"backupEnabled":false}`)

	cfg := Load(path)
	assert.False(t, cfg.BackupOn())
}

func TestLoadYAMLFile(t *testing.T) {
	path := writeConfig(t, "config.yaml", "environment: staging\nservices:\n  - redis\n")

	cfg := Load(path)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, []string{"redis"}, cfg.Services)
	assert.Equal(t, DefaultDeploymentPath, cfg.DeploymentPath)
}

func TestLoadEmptyServicesStaysNonNil(t *testing.T) {
	path := writeConfig(t, "config.json", `{"environment":"production"}`)

	cfg := Load(path)
	require.NotNil(t, cfg.Services)
	assert.Empty(t, cfg.Services)
}
