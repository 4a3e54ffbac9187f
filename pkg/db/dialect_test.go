package db

import (
	"testing"

	"github.com/smallbiznis/rosterd/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialect(t *testing.T) {
	t.Run("selects a dialector per engine", func(t *testing.T) {
		for _, engine := range []string{"postgres", "mysql", "sqlite"} {
			dialector, err := Dialect(Config{
				Type: engine,
				Host: "localhost",
				Port: "5432",
				Name: "rosterd",
				User: "postgres",
			})
			require.NoError(t, err, engine)
			assert.NotNil(t, dialector, engine)
		}
	})

	t.Run("unknown engine is an error", func(t *testing.T) {
		_, err := Dialect(Config{Type: "oracle"})
		assert.Error(t, err)
	})
}

func TestFromApp(t *testing.T) {
	cfg := FromApp(config.Config{
		DBType:            "postgres",
		DBHost:            "db.internal",
		DBPort:            "5433",
		DBName:            "rosterd",
		DBUser:            "app",
		DBPassword:        "secret",
		DBSSLMode:         "require",
		DBMaxIdleConn:     3,
		DBMaxOpenConn:     30,
		DBConnMaxLifetime: 120,
		DBConnMaxIdleTime: 30,
	})

	assert.Equal(t, "postgres", cfg.Type)
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, "5433", cfg.Port)
	assert.Equal(t, "rosterd", cfg.Name)
	assert.Equal(t, "app", cfg.User)
	assert.Equal(t, "require", cfg.SSLMode)
	assert.Equal(t, 3, cfg.MaxIdleConn)
	assert.Equal(t, 30, cfg.MaxOpenConn)
	assert.Equal(t, 120, cfg.ConnMaxLifetime)
	assert.Equal(t, 30, cfg.ConnMaxIdleTime)
}
