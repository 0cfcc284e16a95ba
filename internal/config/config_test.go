package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"sheet": "pliego.json",
		"inventory": "inventory.csv",
		"workers": 8,
		"verbose": true,
		"port": 9090
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "pliego.json", cfg.Sheet)
	assert.Equal(t, "inventory.csv", cfg.Inventory)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env-host/compliance")
	t.Setenv("PORT", "7070")

	cfg := &Config{DatabaseURL: "postgres://file-host/compliance", Port: 8080}
	cfg.ApplyEnv()

	assert.Equal(t, "postgres://env-host/compliance", cfg.DatabaseURL)
	assert.Equal(t, 7070, cfg.Port)
}

func TestApplyEnv_IgnoresInvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := &Config{Port: 8080}
	cfg.ApplyEnv()
	assert.Equal(t, 8080, cfg.Port)
}

func TestValidate_NegativeWorkers(t *testing.T) {
	cfg := &Config{Workers: -1}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}

func TestValidate_MissingSheetFile(t *testing.T) {
	cfg := &Config{Sheet: filepath.Join(t.TempDir(), "missing.json")}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sheet file not found")
}

func TestValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}
