package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server      ServerConfig
	Redis       RedisConfig
	Typesense   TypesenseConfig
	Search      SearchConfig
	Geolocation GeolocationConfig
	Cache       CacheConfig
	OTEL        OTELConfig
	Sentry      SentryConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host           string
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// TypesenseConfig holds Typesense configuration
type TypesenseConfig struct {
	Enabled bool
	URL     string
	APIKey  string
}

// SearchConfig holds facility query defaults
type SearchConfig struct {
	DefaultRadiusMiles float64
}

// GeolocationConfig holds the geolocation fallback policy
type GeolocationConfig struct {
	Timeout    time.Duration
	DefaultLat float64
	DefaultLng float64
}

// CacheConfig holds response cache TTLs in seconds and the in-memory cap
type CacheConfig struct {
	HospitalsTTL     int
	GeocodingTTL     int
	MemoryMaxEntries int
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// SentryConfig holds Sentry configuration
type SentryConfig struct {
	DSN              string
	TracesSampleRate float64
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Env:            getEnv("ENV", "production"),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", []string{"*"}),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Typesense: TypesenseConfig{
			Enabled: getEnvAsBool("TYPESENSE_ENABLED", false),
			URL:     getEnv("TYPESENSE_URL", "http://localhost:8108"),
			APIKey:  getEnv("TYPESENSE_API_KEY", "xyz"),
		},
		Search: SearchConfig{
			DefaultRadiusMiles: getEnvAsFloat("SEARCH_DEFAULT_RADIUS_MILES", 10),
		},
		Geolocation: GeolocationConfig{
			Timeout:    time.Duration(getEnvAsInt("GEOLOCATION_TIMEOUT_MS", 10000)) * time.Millisecond,
			DefaultLat: getEnvAsFloat("GEOLOCATION_DEFAULT_LAT", 40.7128),
			DefaultLng: getEnvAsFloat("GEOLOCATION_DEFAULT_LNG", -74.006),
		},
		Cache: CacheConfig{
			HospitalsTTL:     getEnvAsInt("CACHE_HOSPITALS_TTL", 300),
			GeocodingTTL:     getEnvAsInt("CACHE_GEOCODING_TTL", 3600),
			MemoryMaxEntries: getEnvAsInt("CACHE_MEMORY_MAX_ENTRIES", 10000),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "hospital-locator"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Sentry: SentryConfig{
			DSN:              getEnv("SENTRY_DSN", ""),
			TracesSampleRate: getEnvAsFloat("SENTRY_TRACES_SAMPLE_RATE", 0.2),
		},
	}

	if cfg.Search.DefaultRadiusMiles <= 0 {
		return nil, fmt.Errorf("SEARCH_DEFAULT_RADIUS_MILES must be positive, got %v", cfg.Search.DefaultRadiusMiles)
	}
	if cfg.Geolocation.Timeout <= 0 {
		return nil, fmt.Errorf("GEOLOCATION_TIMEOUT_MS must be positive")
	}

	return cfg, nil
}

// Addr returns the listen address
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
