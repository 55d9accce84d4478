package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv_Priority(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}
	write(".env", "DB_HOST=base\nDB_NAME=hituru\nREDIS_HOST=base\n")
	write(".env.local", "DB_HOST=local\n")
	write(".env.staging", "REDIS_HOST=staging\n")

	t.Setenv("APP_ENV", "staging")
	t.Setenv("DB_NAME", "from-process")
	for _, k := range []string{"DB_HOST", "REDIS_HOST"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	loaded := LoadDotEnv(dir)

	assert.Equal(t, []string{
		filepath.Join(dir, ".env.staging"),
		filepath.Join(dir, ".env.local"),
		filepath.Join(dir, ".env"),
	}, loaded)
	assert.Equal(t, "local", os.Getenv("DB_HOST"))
	assert.Equal(t, "staging", os.Getenv("REDIS_HOST"))
	assert.Equal(t, "from-process", os.Getenv("DB_NAME"))
}

func TestLoadDotEnv_NoFiles(t *testing.T) {
	t.Setenv("APP_ENV", "")
	assert.Empty(t, LoadDotEnv(t.TempDir()))
	assert.Equal(t, []string{".env.local", ".env"}, dotEnvFiles(""))
}
