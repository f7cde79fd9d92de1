package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_HOST", "db")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.App.Env)
	assert.Equal(t, "despensa-api", cfg.App.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "postgres://postgres:@db:5432/despensa?sslmode=disable", cfg.DB.ConnectionString())
}

func TestLoad_DatabaseURLTienePrioridad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@h:1/x")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@h:1/x", cfg.DB.ConnectionString())
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "h", Port: 5432, User: "u", Password: "p@ss word", DBName: "d", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p%40ss%20word@h:5432/d?sslmode=require", c.DSN())
}

func TestLoad_ExpiracionInvalida(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_MINUTES", "0")
	_, err := config.Load()
	assert.Error(t, err)
}
