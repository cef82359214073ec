package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Insight   InsightConfig
	Security  SecurityConfig
	Messaging MessagingConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
	MaxUploadSize    string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	SeedDatabase    bool
}

// InsightConfig configures the text-generation service used for budget narratives.
type InsightConfig struct {
	APIKey          string
	BaseURL         string
	Model           string
	RequestTimeout  time.Duration
	Temperature     float32
	TopK            float32
	TopP            float32
	MaxOutputTokens int32
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
	// TrustedProxies are CIDR ranges whose X-Forwarded-For hops are believed.
	TrustedProxies []string
}

// MessagingConfig configures the optional import event publisher. An empty URL disables it.
type MessagingConfig struct {
	AMQPURL    string
	Exchange   string
	RoutingKey string
}

func Load() *Config {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:          getEnv("SERVER_PORT", "8080"),
			Host:          getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:   getEnv("APP_ENV", "development"),
			ReadTimeout:   getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:  getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			MaxUploadSize: getEnv("MAX_UPLOAD_SIZE", "10M"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "budget_user"),
			Password:        getEnv("DB_PASSWORD", "budget_password"),
			Name:            getEnv("DB_NAME", "municipal_budget"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			SeedDatabase:    getBoolEnv("SEED_DATABASE", false),
		},
		Insight: InsightConfig{
			APIKey:          os.Getenv("GEMINI_API_KEY"),
			BaseURL:         getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			Model:           getEnv("GEMINI_MODEL", "gemini-1.5-pro"),
			RequestTimeout:  getDurationEnv("INSIGHT_REQUEST_TIMEOUT", 30*time.Second),
			Temperature:     getFloatEnv("INSIGHT_TEMPERATURE", 0.7),
			TopK:            getFloatEnv("INSIGHT_TOP_K", 40),
			TopP:            getFloatEnv("INSIGHT_TOP_P", 0.95),
			MaxOutputTokens: int32(getIntEnv("INSIGHT_MAX_OUTPUT_TOKENS", 1024)),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
			TrustedProxies:     getListEnv("TRUSTED_PROXIES"),
		},
		Messaging: MessagingConfig{
			AMQPURL:    os.Getenv("AMQP_URL"),
			Exchange:   getEnv("AMQP_EXCHANGE", "municipal_budget"),
			RoutingKey: getEnv("AMQP_ROUTING_KEY", "budget.imported"),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Validate checks the values that would otherwise fail late at runtime.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil {
		return fmt.Errorf("invalid port '%s': must be a number", c.Server.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}

	if c.Insight.BaseURL == "" {
		return errors.New("GEMINI_BASE_URL cannot be empty")
	}

	if c.Security.RateLimitPerSecond < 1 {
		return errors.New("RATE_LIMIT_PER_SECOND must be at least 1")
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// MessagingEnabled reports whether import events should be published.
func (c *Config) MessagingEnabled() bool {
	return c.Messaging.AMQPURL != ""
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getListEnv splits a comma-separated variable, dropping empty entries.
func getListEnv(key string) []string {
	var values []string
	for _, value := range strings.Split(os.Getenv(key), ",") {
		if value = strings.TrimSpace(value); value != "" {
			values = append(values, value)
		}
	}
	return values
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, defaulting to '*'")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
