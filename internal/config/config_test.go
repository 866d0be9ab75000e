package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, EnvDevelopment, cfg.Environment)
	require.Equal(t, "sqlite", cfg.DBDriver)
	require.Equal(t, 5000, cfg.HTTPPort)
	require.True(t, cfg.IsDevelopment())
	require.Equal(t, ":5000", cfg.GetHTTPAddr())
}

func TestResolveDefaultsRejectsUnknownDriver(t *testing.T) {
	cfg := &Config{Environment: EnvDevelopment, DBDriver: "oracle"}
	require.Error(t, cfg.ResolveDefaults())
}

func TestResolveDefaultsRequiresPostgresDSN(t *testing.T) {
	cfg := &Config{Environment: EnvProduction, DBDriver: "postgres"}
	require.Error(t, cfg.ResolveDefaults())

	cfg.PostgresDSN = "postgres://localhost/gatherly"
	require.NoError(t, cfg.ResolveDefaults())
}

func TestResolveDefaultsRejectsUnknownEnvironment(t *testing.T) {
	cfg := &Config{Environment: "staging", DBDriver: "sqlite", SQLitePath: "x.db"}
	require.Error(t, cfg.ResolveDefaults())
}
