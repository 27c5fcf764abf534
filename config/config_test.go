package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DEBUG", "GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_ENDPOINT",
		"GEMINI_TIMEOUT_SECONDS", "FETCH_TIMEOUT_SECONDS", "MAX_UPLOAD_MB",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	require.Equal(t, "8080", cfg.Port)
	require.False(t, cfg.Debug)
	require.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	require.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.GeminiEndpoint)
	require.Equal(t, 45, cfg.GeminiTimeoutSeconds)
	require.Equal(t, 30, cfg.FetchTimeoutSeconds)
	require.Equal(t, 10, cfg.MaxUploadMB)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEBUG", "true")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("GEMINI_TIMEOUT_SECONDS", "60")
	t.Setenv("MAX_UPLOAD_MB", "25")

	cfg := Load()

	require.Equal(t, "9090", cfg.Port)
	require.True(t, cfg.Debug)
	require.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
	require.Equal(t, 60, cfg.GeminiTimeoutSeconds)
	require.Equal(t, 25, cfg.MaxUploadMB)
	require.Equal(t, int64(25*1024*1024), cfg.MaxUploadBytes())
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty model", func(c *Config) { c.GeminiModel = "" }},
		{"empty endpoint", func(c *Config) { c.GeminiEndpoint = "" }},
		{"zero gemini timeout", func(c *Config) { c.GeminiTimeoutSeconds = 0 }},
		{"zero fetch timeout", func(c *Config) { c.FetchTimeoutSeconds = 0 }},
		{"zero upload limit", func(c *Config) { c.MaxUploadMB = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				GeminiModel:          "gemini-2.5-flash",
				GeminiEndpoint:       "https://generativelanguage.googleapis.com/v1beta",
				GeminiTimeoutSeconds: 45,
				FetchTimeoutSeconds:  30,
				MaxUploadMB:          10,
			}
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			require.NotEmpty(t, cfgErr.Field)
		})
	}
}

func TestHasAPIKey(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"your-api-key-here", false},
		{"YOUR_GEMINI_API_KEY", false},
		{"changeme", false},
		{"AIzaSyExampleRealLookingKey123", true},
	}

	for _, tc := range cases {
		cfg := &Config{GeminiAPIKey: tc.key}
		require.Equal(t, tc.want, cfg.HasAPIKey(), "key=%q", tc.key)
	}
}
