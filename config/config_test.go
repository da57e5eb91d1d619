package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "logfmt", cfg.Log.Format)
	assert.Equal(t, "JPY", cfg.Widget.DefaultFrom)
	assert.Equal(t, "KRW", cfg.Widget.DefaultTo)
}

func TestLoadFile_Env(t *testing.T) {
	t.Setenv("FX_HTTP_ADDR", ":9090")
	t.Setenv("FX_HTTP_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("FX_DEFAULT_TO", "EUR")

	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "EUR", cfg.Widget.DefaultTo)
}

func TestLoadFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yaml := `
http:
  addr: ":7070"
log:
  level: debug
  format: json
widget:
  default_from: GBP
  default_to: EUR
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "GBP", cfg.Widget.DefaultFrom)
	assert.Equal(t, "EUR", cfg.Widget.DefaultTo)
}

func TestLoadFile_BadFormat(t *testing.T) {
	t.Setenv("FX_LOG_FORMAT", "xml")
	_, err := LoadFile("")
	assert.Error(t, err)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
