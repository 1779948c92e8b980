package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvDB, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvListen, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.DBPath, cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "auto", cfg.LogFormat)
	assert.False(t, cfg.Strict)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "citybuild.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_key: from-file
db_path: /tmp/file.db
log_level: debug
log_format: json
strict: true
`), 0o644))

	t.Setenv(EnvAPIKey, "from-env")
	t.Setenv(EnvDB, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvListen, "127.0.0.1:9000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, "/tmp/file.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.True(t, cfg.Strict)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, Validate(&cfg))

	cfg.LogLevel = "verbose"
	cfg.LogFormat = "xml"
	cfg.DBPath = ""
	err := Validate(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
	assert.Contains(t, err.Error(), "log_format")
	assert.Contains(t, err.Error(), "db_path")
}

func TestApplyEnvIgnoresEmpty(t *testing.T) {
	cfg := Config{APIURL: "https://example.test"}
	applyEnv(&cfg, func(key string) string {
		if key == EnvAPIKey {
			return "k"
		}
		return ""
	})
	assert.Equal(t, "k", cfg.APIKey)
	assert.Equal(t, "https://example.test", cfg.APIURL)
}
