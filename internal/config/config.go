package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	HTTPAddr      string
	AdminHTTPAddr string

	OTLPEndpoint string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int
	DBConnMaxIdleTime int

	RateLimitEnabled     bool
	RedisAddr            string
	RedisPassword        string
	RedisDB              int
	WebhookProviderRate  float64
	WebhookProviderBurst int
	WebhookSourceRate    float64
	WebhookSourceBurst   int

	SeedDemoWedding bool
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:       getenv("APP_SERVICE", "vowsuite"),
		AppVersion:    getenv("APP_VERSION", "0.1.0"),
		Environment:   getenv("ENVIRONMENT", "development"),
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		AdminHTTPAddr: getenv("ADMIN_HTTP_ADDR", ":8081"),
		OTLPEndpoint:  getenv("OTLP_ENDPOINT", "localhost:4317"),

		DBType:            getenv("DATABASE_TYPE", "postgres"),
		DBHost:            getenv("DATABASE_HOST", "localhost"),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            getenv("DATABASE_NAME", "vowsuite"),
		DBUser:            getenv("DATABASE_USER", "postgres"),
		DBPassword:        getenv("DATABASE_PASSWORD", "postgres"),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 5),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 25),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 1800),
		DBConnMaxIdleTime: getenvInt("DATABASE_CONN_MAX_IDLE_TIME", 300),

		RateLimitEnabled:     getenvBool("RATE_LIMIT_ENABLED", false),
		RedisAddr:            getenv("REDIS_ADDR", ""),
		RedisPassword:        getenv("REDIS_PASSWORD", ""),
		RedisDB:              getenvInt("REDIS_DB", 0),
		WebhookProviderRate:  getenvFloat("WEBHOOK_PROVIDER_RATE", 20),
		WebhookProviderBurst: getenvInt("WEBHOOK_PROVIDER_BURST", 40),
		WebhookSourceRate:    getenvFloat("WEBHOOK_SOURCE_RATE", 5),
		WebhookSourceBurst:   getenvInt("WEBHOOK_SOURCE_BURST", 10),

		SeedDemoWedding: getenvBool("SEED_DEMO_WEDDING", true),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
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

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
