package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "rosterd", cfg.AppName)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.NotifyOnApproval)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_TYPE", "sqlite")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SUBMIT_BURST", "3")
	t.Setenv("NOTIFY_ON_APPROVAL", "true")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 3, cfg.SubmitBurst)
	assert.True(t, cfg.NotifyOnApproval)
}

func TestGetenvIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("DATABASE_MAX_OPEN_CONN", "not-a-number")

	cfg := Load()

	assert.Equal(t, 25, cfg.DBMaxOpenConn)
}
