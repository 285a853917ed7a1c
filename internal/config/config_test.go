package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CALC_LOCALE", "FX_BASE_URL", "FX_REFRESH_ON_START", "MAX_EXPRESSION_LENGTH", "FX_MANUAL_RATE"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calcfin.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
locale: en-US
calc:
  max_expression_length: 64
vat:
  default_rate: 10
  presets: [10, 20]
fx:
  manual_rate: 1.05
  refresh_on_start: false
  timeout: 3s
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, 64, cfg.Calc.MaxExpressionLength)
	assert.Equal(t, []float64{10, 20}, cfg.VAT.Presets)
	assert.Equal(t, 1.05, cfg.FX.ManualRate)
	assert.False(t, cfg.FX.RefreshOnStart)
	assert.Equal(t, 3*time.Second, cfg.FX.Timeout)
	assert.Equal(t, Default().FX.BaseURL, cfg.FX.BaseURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_EXPRESSION_LENGTH", "32")
	t.Setenv("FX_REFRESH_ON_START", "false")
	t.Setenv("FX_BASE_URL", "http://localhost:9999")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Calc.MaxExpressionLength)
	assert.False(t, cfg.FX.RefreshOnStart)
	assert.Equal(t, "http://localhost:9999", cfg.FX.BaseURL)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)

	_, err := Load(writeConfig(t, "calc: [not, a, map"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "fx:\n  manual_rate: 0\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "vat:\n  presets: [-150]\n"))
	assert.Error(t, err)

	t.Setenv("MAX_EXPRESSION_LENGTH", "lots")
	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
