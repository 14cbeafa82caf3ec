package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
	yaml := "env: production\ncategories_json_path: data/quiz.json\ndatabase:\n  max_connections: 5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(yaml), 0o644))

	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("DATABASE_URL", "postgres://localhost/quiz")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "token", cfg.TelegramAPIToken)
	assert.Equal(t, "data/quiz.json", cfg.CategoriesJSONPath)
	assert.Equal(t, 5, cfg.DB.MaxConnections)
	assert.Equal(t, 30*time.Second, cfg.DB.MaxConnLifetime)
	assert.Equal(t, 2*time.Hour, cfg.Session.IdleTTL)
	assert.Equal(t, "@every 10m", cfg.Session.SweepSchedule)

	dsn, err := cfg.DB.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/quiz", dsn)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	env := "TELEGRAM_API_TOKEN=from-dotenv\nDATABASE_URL=postgres://localhost/dotenv\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644))

	// Registered so the variables godotenv sets are restored afterwards.
	t.Setenv("TELEGRAM_API_TOKEN", "")
	t.Setenv("DATABASE_URL", "")
	require.NoError(t, os.Unsetenv("TELEGRAM_API_TOKEN"))
	require.NoError(t, os.Unsetenv("DATABASE_URL"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.TelegramAPIToken)
	assert.Equal(t, "assets/data/categories.json", cfg.CategoriesJSONPath)
	assert.Equal(t, "local", cfg.Env)
}

func TestLoadMissingSecrets(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TELEGRAM_API_TOKEN", "")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}
