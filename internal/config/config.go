// Package config loads runtime settings from the environment, reading an
// optional .env file first.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates settings for both binaries.
type Config struct {
	Client ClientConfig
	Server ServerConfig
	Logger LoggerConfig
	Trace  TraceConfig
}

// ClientConfig controls the dashboard's connection to the API.
type ClientConfig struct {
	APIURL             string
	Token              string
	Email              string
	Password           string
	HTTPTimeoutSeconds int
}

// ServerConfig controls the reference API server.
type ServerConfig struct {
	Addr            string
	JWTSecret       string
	TokenTTLMinutes int
	AdminEmail      string
	AdminPassword   string
	UserEmail       string
	UserPassword    string
	BcryptCost      int
}

// LoggerConfig configures logging.
type LoggerConfig struct {
	Level string
	File  string // empty logs to stdout
}

// TraceConfig configures OTLP export. An empty endpoint disables export.
type TraceConfig struct {
	Endpoint    string
	ServiceName string
}

// Load reads configuration. files are .env paths; with none, ./.env is tried.
// Missing files are not an error.
func Load(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)

	cfg := &Config{
		Client: ClientConfig{
			APIURL:             getEnv("DEPTDASH_API_URL", "http://localhost:5000"),
			Token:              os.Getenv("DEPTDASH_TOKEN"),
			Email:              os.Getenv("DEPTDASH_EMAIL"),
			Password:           os.Getenv("DEPTDASH_PASSWORD"),
			HTTPTimeoutSeconds: getEnvAsInt("DEPTDASH_HTTP_TIMEOUT_SECONDS", 30),
		},
		Server: ServerConfig{
			Addr:            getEnv("DEPTAPI_ADDR", ":5000"),
			JWTSecret:       getEnv("DEPTAPI_JWT_SECRET", "dev-secret"),
			TokenTTLMinutes: getEnvAsInt("DEPTAPI_TOKEN_TTL_MINUTES", 60),
			AdminEmail:      getEnv("DEPTAPI_ADMIN_EMAIL", "admin@example.com"),
			AdminPassword:   getEnv("DEPTAPI_ADMIN_PASSWORD", "admin123"),
			UserEmail:       getEnv("DEPTAPI_USER_EMAIL", "user@example.com"),
			UserPassword:    getEnv("DEPTAPI_USER_PASSWORD", "user123"),
			BcryptCost:      getEnvAsInt("DEPTAPI_BCRYPT_COST", 10),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  os.Getenv("DEPTDASH_LOG_FILE"),
		},
		Trace: TraceConfig{
			Endpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			ServiceName: os.Getenv("OTEL_SERVICE_NAME"),
		},
	}
	return cfg, nil
}

// HTTPTimeout returns the client transport timeout; zero disables it.
func (c ClientConfig) HTTPTimeout() time.Duration {
	if c.HTTPTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// TokenTTL returns the lifetime of issued tokens.
func (s ServerConfig) TokenTTL() time.Duration {
	return time.Duration(s.TokenTTLMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
