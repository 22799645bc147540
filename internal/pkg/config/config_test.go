//go:build unit

package config_test

import (
	"testing"
	"time"

	"vidly/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("必須項目が揃っていればデフォルト値で補完される", func(t *testing.T) {
		t.Setenv("DB_USER", "vidly")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("JWT_PRIVATE_KEY", "signing-key")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "5000", cfg.Server.Port)
		assert.Equal(t, "logfile.log", cfg.Log.File)
		assert.Equal(t, "signing-key", cfg.JWT.PrivateKey)
		assert.Equal(t, "vidly", cfg.DB.DBName)
	})

	t.Run("署名鍵が無ければエラー", func(t *testing.T) {
		t.Setenv("DB_USER", "vidly")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("JWT_PRIVATE_KEY", "")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_PRIVATE_KEY")
	})
}

func TestDBConfig(t *testing.T) {
	cfg := config.DBConfig{
		Host: "db", Port: "5432", User: "u", Password: "p",
		DBName: "vidly", SSLMode: "disable", TimeZone: "UTC",
	}

	assert.Equal(t, "postgres://u:p@db:5432/vidly?sslmode=disable&timezone=UTC", cfg.BuildDSN())
	assert.Equal(t, "pgx5://u:p@db:5432/vidly?sslmode=disable", cfg.BuildMigrationURL())
}

func TestJWTConfig_TokenDuration(t *testing.T) {
	cfg := config.JWTConfig{Duration: "90m"}
	d, err := cfg.TokenDuration()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	cfg.Duration = "forever"
	_, err = cfg.TokenDuration()
	assert.Error(t, err)
}
