package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("CLIENT_URL", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, defaultOrigins, cfg.AllowedOrigins)
}

func TestLoad_AllowedOrigins(t *testing.T) {
	t.Setenv("CLIENT_URL", "https://app.example.com")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example.com , https://b.example.com ,")

	cfg := Load()

	assert.Contains(t, cfg.AllowedOrigins, "https://app.example.com")
	assert.Contains(t, cfg.AllowedOrigins, "https://a.example.com")
	assert.Contains(t, cfg.AllowedOrigins, "https://b.example.com")
	assert.Len(t, cfg.AllowedOrigins, len(defaultOrigins)+3)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/mentordesk")
	t.Setenv("PORT", "8080")
	t.Setenv("DOMAIN", "example.com")

	cfg := Load()

	assert.Equal(t, "postgres://localhost/mentordesk", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "example.com", cfg.Domain)
}
