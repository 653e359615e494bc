package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("USE_HTTP2", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("METRICS_PATH", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, &Config{
		Port:        "8080",
		UseHttp2:    false,
		CorsOrigins: []string{"*"},
		MetricsPath: "/metrics",
	}, cfg)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("USE_HTTP2", "true")
	t.Setenv("CORS_ORIGINS", " https://www.cancer.gov , ,https://www-dev.cancer.gov")
	t.Setenv("METRICS_PATH", "/internal/metrics")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.True(t, cfg.UseHttp2)
	assert.Equal(t, []string{"https://www.cancer.gov", "https://www-dev.cancer.gov"}, cfg.CorsOrigins)
	assert.Equal(t, "/internal/metrics", cfg.MetricsPath)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	for _, port := range []string{"http", "0", "70000"} {
		t.Run(port, func(t *testing.T) {
			t.Setenv("PORT", port)

			_, err := LoadConfig()

			assert.Error(t, err)
		})
	}
}
