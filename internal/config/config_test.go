package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DEMO_PORT", "")
	t.Setenv("DB_FILE", "")

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "5000", cfg.DemoPort)
	assert.Equal(t, "db.json", cfg.DBFile)
	assert.NotEmpty(t, cfg.APIKey)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_FILE", "/tmp/test-db.json")
	t.Setenv("API_KEY", "sekret")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/tmp/test-db.json", cfg.DBFile)
	assert.Equal(t, "sekret", cfg.APIKey)
}
