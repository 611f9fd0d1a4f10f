package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// ErrMissingTokenSecret is returned when neither ACCESS_TOKEN_SECRET nor JWT_SECRET is set.
var ErrMissingTokenSecret = errors.New("ACCESS_TOKEN_SECRET environment variable is required")

// DatabaseConfig is the DB_* part of the configuration. It is loaded on its own by tools
// that only need storage, such as the seed command.
type DatabaseConfig struct {
	DBDriver   string `json:"db_driver"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBSSLMode  string `json:"db_sslmode"`
	DBPath     string `json:"db_path"`
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port              int           `json:"port"`
	Host              string        `json:"host"`
	Environment       string        `json:"environment"`
	KeepAliveTimeout  time.Duration `json:"keep_alive_timeout"`
	ReadHeaderTimeout time.Duration `json:"read_header_timeout"`
	AllowedOrigins    []string      `json:"allowed_origins"`

	DatabaseConfig

	// Chat fan-out, disabled when RedisAddr is empty
	RedisAddr     string `json:"redis_addr"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	JWTSecret string        `json:"jwt_secret"`
	TokenTTL  time.Duration `json:"token_ttl"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, KeepAliveTimeout: %s, ReadHeaderTimeout: %s, "+
		"AllowedOrigins: %v, DBDriver: %s, DBHost: %s, DBPort: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DBPath: %s, "+
		"RedisAddr: %s, RedisPassword: [REDACTED], LogLevel: %s, JWTSecret: [REDACTED], TokenTTL: %s}",
		c.Port, c.Host, c.Environment, c.KeepAliveTimeout, c.ReadHeaderTimeout,
		c.AllowedOrigins, c.DBDriver, c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBPath,
		c.RedisAddr, c.LogLevel, c.TokenTTL)
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if the signing secret is missing or a numeric variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", GetEnvWithDefault("PORT", "5000")))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	secret := GetEnvWithDefault("ACCESS_TOKEN_SECRET", GetEnvWithDefault("JWT_SECRET", ""))
	if secret == "" {
		return nil, ErrMissingTokenSecret
	}

	ttlMinutes := GetEnvAsType("TOKEN_TTL_MINUTES", 60)
	if ttlMinutes <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL_MINUTES must be positive, got %d", ttlMinutes)
	}

	config := &Config{
		Port:              port,
		Host:              GetEnvWithDefault("APP_HOST", ""),
		Environment:       GetEnvWithDefault("APP_ENV", "development"),
		KeepAliveTimeout:  time.Duration(GetEnvAsType("KEEP_ALIVE_TIMEOUT_SECONDS", 5)) * time.Second,
		ReadHeaderTimeout: time.Duration(GetEnvAsType("HEADERS_TIMEOUT_SECONDS", 10)) * time.Second,
		AllowedOrigins:    splitList(GetEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
		DatabaseConfig:    LoadDatabaseConfig(),
		RedisAddr:         GetEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:     GetEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:           GetEnvAsType("REDIS_DB", 0),
		LogLevel:          GetEnvWithDefault("LOG_LEVEL", "info"),
		JWTSecret:         secret,
		TokenTTL:          time.Duration(ttlMinutes) * time.Minute,
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// LoadDatabaseConfig reads the DB_* variables. The default port follows the driver.
func LoadDatabaseConfig() DatabaseConfig {
	driver := strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite"))
	defaultPort := "5432"
	if driver == "mysql" {
		defaultPort = "3306"
	}

	return DatabaseConfig{
		DBDriver:   driver,
		DBHost:     GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:     GetEnvWithDefault("DB_PORT", defaultPort),
		DBName:     GetEnvWithDefault("DB_NAME", "LinkUp"),
		DBUser:     GetEnvWithDefault("DB_USER", "linkup"),
		DBPassword: GetEnvWithDefault("DB_PASS", ""),
		DBSSLMode:  GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBPath:     GetEnvWithDefault("DB_PATH", "linkup.sqlite"),
	}
}

// splitList parses a comma separated value, dropping blanks
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default", key)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
