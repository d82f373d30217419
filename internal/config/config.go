package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"resume-extractor/internal/domain"
)

const (
	defaultMaxFileSize    int64 = 5 * 1024 * 1024
	defaultExtractTimeout       = 60 * time.Second
	defaultMaxConcurrent        = 4
)

var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string
	MaxFileSize    int64
	LogLevel       string
	ExtractTimeout time.Duration
	MaxConcurrent  int
	OCRLanguage    string
	OCRRenderScale float64
	MinTextLength  int
	AllowedOrigins []string
	AuthRequired   bool
	SupabaseURL    string
	SupabaseKey    string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:     getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize:    getEnvInt64OrDefault("MAX_FILE_SIZE", defaultMaxFileSize),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		ExtractTimeout: getEnvDurationOrDefault("EXTRACT_TIMEOUT", defaultExtractTimeout),
		MaxConcurrent:  int(getEnvInt64OrDefault("MAX_CONCURRENT_EXTRACTIONS", defaultMaxConcurrent)),
		OCRLanguage:    getEnvOrDefault("OCR_LANGUAGE", "por"),
		OCRRenderScale: getEnvFloatOrDefault("OCR_RENDER_SCALE", 2),
		MinTextLength:  int(getEnvInt64OrDefault("MIN_TEXT_LENGTH", 30)),
		AllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins),
		AuthRequired:   getEnvBoolOrDefault("AUTH_REQUIRED", false),
		SupabaseURL:    getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseKey:    getEnvOrDefault("SUPABASE_ANON_KEY", ""),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetExtractTimeout returns how long a caller waits for one extraction
func (c *AppConfig) GetExtractTimeout() time.Duration {
	return c.ExtractTimeout
}

// GetMaxConcurrentExtractions returns how many extractions may run at once,
// counting runs abandoned after a timeout
func (c *AppConfig) GetMaxConcurrentExtractions() int {
	return c.MaxConcurrent
}

func (c *AppConfig) GetOCRLanguage() string {
	return c.OCRLanguage
}

func (c *AppConfig) GetOCRRenderScale() float64 {
	return c.OCRRenderScale
}

// GetMinTextLength returns the text-layer length below which OCR runs
func (c *AppConfig) GetMinTextLength() int {
	return c.MinTextLength
}

func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// IsAuthRequired reports whether uploads need a Supabase bearer token
func (c *AppConfig) IsAuthRequired() bool {
	return c.AuthRequired
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase anon key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
			return f
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvDurationOrDefault accepts Go durations ("90s") or plain seconds ("90").
func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
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
