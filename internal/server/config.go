package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/sitewide-search/pkg/stringsutil"
)

const (
	defaultPort        = "8080"
	defaultMetricsPath = "/metrics"
)

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
	MetricsPath string
}

// LoadConfig reads server settings from the environment. Any .env file must
// already be loaded.
func LoadConfig() (*Config, error) {
	useHttp2Str := os.Getenv("USE_HTTP2")
	useHttp2 := useHttp2Str == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	var origins []string
	corsOriginsEnv := os.Getenv("CORS_ORIGINS")
	if corsOriginsEnv != "" {
		origins = stringsutil.RemoveEmptyStrings(stringsutil.TrimAll(strings.Split(corsOriginsEnv, ",")))
	}

	if len(origins) == 0 {
		origins = []string{"*"}
	}

	metricsPath := os.Getenv("METRICS_PATH")
	if metricsPath == "" {
		metricsPath = defaultMetricsPath
	}

	return &Config{
		Port:        port,
		UseHttp2:    useHttp2,
		CorsOrigins: origins,
		MetricsPath: metricsPath,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
