package observability

import (
	"os"
	"strconv"
	"strings"

	"github.com/vowsuite/vowsuite/internal/config"
)

// Config holds observability configuration derived from environment variables.
type Config struct {
	ServiceName string
	Environment string
	Version     string

	LogLevel  string
	LogFormat string

	OtelEnabled          bool
	OtelExporterEndpoint string
	OtelSamplingRatio    float64
}

// LoadConfig derives observability settings from the app config and env.
func LoadConfig(appCfg config.Config) Config {
	return Config{
		ServiceName: appCfg.AppName,
		Environment: appCfg.Environment,
		Version:     appCfg.AppVersion,

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "json"),

		OtelEnabled:          getenvBool("OTEL_ENABLED", false),
		OtelExporterEndpoint: getenv("OTEL_EXPORTER_ENDPOINT", appCfg.OTLPEndpoint),
		OtelSamplingRatio:    getenvFloat("OTEL_SAMPLING_RATIO", 1.0),
	}
}

// Debug reports whether the environment is a development one.
func (c Config) Debug() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "development" || env == "dev" || env == "local"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

func getenvFloat(key string, def float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return parsed
}
