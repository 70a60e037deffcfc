package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 60*24, cfg.Session.TTLMinutes)
	assert.Equal(t, "memory", cfg.Cache.Type)
	assert.Equal(t, "local", cfg.Storage.Type)

	// a bare config fetches company logos
	assert.False(t, cfg.LogoFetch.Disabled)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Database.Driver = "mysql"
	applyDefaults(cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
}
