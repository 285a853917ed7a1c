package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CALCFIN_TEST_KEY=from-file\n"), 0o600))

	t.Setenv("ENV_PATH", path)
	t.Setenv("CALCFIN_TEST_KEY", "")
	os.Unsetenv("CALCFIN_TEST_KEY")

	require.NoError(t, LoadDotEnv("local", "unused"))
	assert.Equal(t, "from-file", os.Getenv("CALCFIN_TEST_KEY"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, LoadDotEnv("local", ""))
	assert.NoError(t, LoadDotEnv("prod", ""))
}

func TestGetters(t *testing.T) {
	t.Setenv("CALCFIN_INT", "42")
	t.Setenv("CALCFIN_BAD_INT", "x")
	t.Setenv("CALCFIN_FLOAT", "1.25")
	t.Setenv("CALCFIN_BOOL", "true")
	t.Setenv("CALCFIN_BAD_BOOL", "maybe")

	assert.Equal(t, "fallback", GetOr("CALCFIN_UNSET", "fallback"))

	n, err := GetInt("CALCFIN_INT", 1)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = GetInt("CALCFIN_UNSET", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = GetInt("CALCFIN_BAD_INT", 1)
	assert.Error(t, err)

	f, err := GetFloat("CALCFIN_FLOAT", 0)
	require.NoError(t, err)
	assert.Equal(t, 1.25, f)

	assert.True(t, GetBool("CALCFIN_BOOL", false))
	assert.True(t, GetBool("CALCFIN_BAD_BOOL", true))
	assert.False(t, GetBool("CALCFIN_UNSET", false))
}
