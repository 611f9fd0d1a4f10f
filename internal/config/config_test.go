package config

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			// Setup: set environment variable if provided
			if tt.envValue != "" {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key) // cleanup after test
			} else {
				os.Unsetenv(tt.key) // ensure it's not set
			}

			// Execute
			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			// Assert
			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("INT_KEY", "42")
	t.Setenv("BAD_INT_KEY", "forty-two")
	t.Setenv("BOOL_KEY", "true")

	if got := GetEnvAsType("INT_KEY", 7); got != 42 {
		t.Errorf("GetEnvAsType(int) = %d, expected 42", got)
	}
	if got := GetEnvAsType("BAD_INT_KEY", 7); got != 7 {
		t.Errorf("GetEnvAsType(bad int) = %d, expected default 7", got)
	}
	if got := GetEnvAsType("BOOL_KEY", false); !got {
		t.Error("GetEnvAsType(bool) = false, expected true")
	}
	if got := GetEnvAsType("UNSET_KEY_FOR_TEST", "fallback"); got != "fallback" {
		t.Errorf("GetEnvAsType(unset) = %s, expected fallback", got)
	}
}

// clearEnv blanks every variable LoadConfig reads so the host environment cannot leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_PORT", "PORT", "APP_HOST", "APP_ENV", "LOG_LEVEL",
		"ACCESS_TOKEN_SECRET", "JWT_SECRET", "TOKEN_TTL_MINUTES",
		"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASS", "DB_SSLMODE", "DB_PATH",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"KEEP_ALIVE_TIMEOUT_SECONDS", "HEADERS_TIMEOUT_SECONDS", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("successful config load with all env vars", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_PORT", "9000")
		t.Setenv("APP_HOST", "0.0.0.0")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("ACCESS_TOKEN_SECRET", "super_secret_jwt_key")
		t.Setenv("TOKEN_TTL_MINUTES", "30")
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("REDIS_ADDR", "localhost:6379")

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}

		if config.Port != 9000 {
			t.Errorf("Port = %d, expected 9000", config.Port)
		}
		if config.Host != "0.0.0.0" {
			t.Errorf("Host = %s, expected 0.0.0.0", config.Host)
		}
		if config.LogLevel != "debug" {
			t.Errorf("LogLevel = %s, expected debug", config.LogLevel)
		}
		if config.JWTSecret != "super_secret_jwt_key" {
			t.Errorf("JWTSecret not loaded from ACCESS_TOKEN_SECRET")
		}
		if config.TokenTTL != 30*time.Minute {
			t.Errorf("TokenTTL = %s, expected 30m", config.TokenTTL)
		}
		if config.DBDriver != "postgres" {
			t.Errorf("DBDriver = %s, expected postgres", config.DBDriver)
		}
		if config.RedisAddr != "localhost:6379" {
			t.Errorf("RedisAddr = %s, expected localhost:6379", config.RedisAddr)
		}
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_PORT", "not_a_number")
		t.Setenv("ACCESS_TOKEN_SECRET", "secret")

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when APP_PORT is invalid")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should fail without a signing secret", func(t *testing.T) {
		clearEnv(t)

		config, err := LoadConfig()

		if !errors.Is(err, ErrMissingTokenSecret) {
			t.Errorf("LoadConfig() error = %v, expected ErrMissingTokenSecret", err)
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should fail with non-positive token lifetime", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ACCESS_TOKEN_SECRET", "secret")
		t.Setenv("TOKEN_TTL_MINUTES", "0")

		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() should return error when TOKEN_TTL_MINUTES is zero")
		}
	})

	t.Run("should accept JWT_SECRET as fallback and PORT as fallback", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("JWT_SECRET", "fallback_secret")
		t.Setenv("PORT", "7000")

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned unexpected error: %v", err)
		}
		if config.JWTSecret != "fallback_secret" {
			t.Error("JWTSecret should fall back to JWT_SECRET")
		}
		if config.Port != 7000 {
			t.Errorf("Port = %d, expected 7000 from PORT", config.Port)
		}
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ACCESS_TOKEN_SECRET", "secret")

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned unexpected error: %v", err)
		}

		// Check defaults
		if config.Port != 5000 {
			t.Errorf("Port = %d, expected default 5000", config.Port)
		}
		if config.Host != "" {
			t.Errorf("Host = %s, expected default empty (all interfaces)", config.Host)
		}
		if len(config.AllowedOrigins) != 1 || config.AllowedOrigins[0] != "*" {
			t.Errorf("AllowedOrigins = %v, expected [*]", config.AllowedOrigins)
		}
		if config.DBPort != "5432" {
			t.Errorf("DBPort = %s, expected default 5432", config.DBPort)
		}
		if config.LogLevel != "info" {
			t.Errorf("LogLevel = %s, expected default info", config.LogLevel)
		}
		if config.TokenTTL != time.Hour {
			t.Errorf("TokenTTL = %s, expected default 1h", config.TokenTTL)
		}
		if config.DBDriver != "sqlite" {
			t.Errorf("DBDriver = %s, expected default sqlite", config.DBDriver)
		}
		if config.KeepAliveTimeout != 5*time.Second {
			t.Errorf("KeepAliveTimeout = %s, expected 5s", config.KeepAliveTimeout)
		}
		if config.ReadHeaderTimeout != 10*time.Second {
			t.Errorf("ReadHeaderTimeout = %s, expected 10s", config.ReadHeaderTimeout)
		}
	})
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Run("does not need the signing secret", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_PATH", "/tmp/seed.sqlite")

		db := LoadDatabaseConfig()
		if db.DBDriver != "sqlite" || db.DBPath != "/tmp/seed.sqlite" {
			t.Errorf("LoadDatabaseConfig() = %+v", db)
		}
	})

	t.Run("mysql defaults to its own port", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_DRIVER", "MySQL")

		db := LoadDatabaseConfig()
		if db.DBDriver != "mysql" {
			t.Errorf("DBDriver = %s, expected mysql", db.DBDriver)
		}
		if db.DBPort != "3306" {
			t.Errorf("DBPort = %s, expected 3306", db.DBPort)
		}
	})

	t.Run("explicit port wins", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_DRIVER", "mysql")
		t.Setenv("DB_PORT", "3307")

		if db := LoadDatabaseConfig(); db.DBPort != "3307" {
			t.Errorf("DBPort = %s, expected 3307", db.DBPort)
		}
	})
}

func TestAllowedOriginsList(t *testing.T) {
	clearEnv(t)
	t.Setenv("ACCESS_TOKEN_SECRET", "secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://linkup.app, ,http://localhost:5173 ")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned unexpected error: %v", err)
	}
	expected := []string{"https://linkup.app", "http://localhost:5173"}
	if strings.Join(config.AllowedOrigins, "|") != strings.Join(expected, "|") {
		t.Errorf("AllowedOrigins = %v, expected %v", config.AllowedOrigins, expected)
	}
}

func TestConfigStringMasksSecrets(t *testing.T) {
	c := &Config{
		JWTSecret:      "top-secret-value",
		DatabaseConfig: DatabaseConfig{DBPassword: "hunter2"},
		RedisPassword:  "redis-pass",
	}
	s := c.String()
	for _, secret := range []string{"top-secret-value", "hunter2", "redis-pass"} {
		if strings.Contains(s, secret) {
			t.Errorf("String() leaks %q: %s", secret, s)
		}
	}
}

// Benchmark tests (optional but good practice)
func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
