package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("JWT_ACCESS_EXPIRY", "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessExpiry)
	assert.Equal(t, "admin@example.com", cfg.Seed.AdminEmail)
	assert.Equal(t, "en", cfg.I18n.DefaultLanguage)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoadFrom_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nDB_NAME=tracker\nJWT_ACCESS_EXPIRY=30m\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	// godotenv não sobrescreve variáveis já definidas; garantir que não existam
	for _, key := range []string{"PORT", "DB_NAME", "JWT_ACCESS_EXPIRY"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadFrom(envFile)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "tracker", cfg.Database.DBName)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiry)
}

func TestLoadFrom_InvalidExpiry(t *testing.T) {
	t.Setenv("JWT_ACCESS_EXPIRY", "forever")

	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidate_ProductionRequiresSecret(t *testing.T) {
	cfg := &Config{
		Env: "production",
		JWT: JWTConfig{Secret: "dev-secret-change-me", AccessExpiry: time.Hour},
	}
	assert.Error(t, cfg.Validate())

	cfg.JWT.Secret = "a-real-secret"
	assert.NoError(t, cfg.Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", d.DSN())
}
