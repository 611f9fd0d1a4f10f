package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/linkup-api/internal/auth"
	"github.com/franciscosanchezn/linkup-api/internal/chat"
	"github.com/franciscosanchezn/linkup-api/internal/config"
	"github.com/franciscosanchezn/linkup-api/internal/database"
	"github.com/franciscosanchezn/linkup-api/internal/router"
	"github.com/franciscosanchezn/linkup-api/internal/services"
)

const shutdownTimeout = 10 * time.Second

// @title LinkUp API
// @version 1.0
// @description Backend for the LinkUp event community platform
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()

	tokens, err := auth.NewTokenService(configuration.JWTSecret, configuration.TokenTTL)
	checkPanicErr(err)

	// Initialize database connection
	db := setupDatabase(configuration)

	hub := setupChatHub(configuration)

	engine := router.New(router.Dependencies{
		Tokens:   tokens,
		OAuth:    auth.NewOAuthService(db, tokens),
		Users:    services.NewUserService(db),
		Events:   services.NewEventService(db),
		Reviews:  services.NewReviewService(db),
		Messages: services.NewMessageService(db, hub),
		Clients:  services.NewClientService(db),
		Hub:      hub,
		Logger:   log.StandardLogger(),

		AllowedOrigins: configuration.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%v:%d", configuration.Host, configuration.Port),
		Handler:           engine,
		IdleTimeout:       configuration.KeepAliveTimeout,
		ReadHeaderTimeout: configuration.ReadHeaderTimeout,
	}

	go func() {
		log.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server stopped unexpectedly")
		}
	}()

	waitForShutdown(srv)
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment.
// LOG_LEVEL overrides the environment default when it parses.
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
		gin.SetMode(gin.ReleaseMode)
	default:
		log.SetLevel(log.InfoLevel)
	}

	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the configured database and brings the schema up to date
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(database.FromConfig(conf.DatabaseConfig))
	checkPanicErr(err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	checkPanicErr(database.Migrate(ctx, db, conf.DBDriver))

	return db
}

// setupChatHub connects the realtime chat fan-out. Without REDIS_ADDR, or when redis is
// unreachable at startup, messages are still stored but not pushed.
func setupChatHub(conf *config.Config) chat.Hub {
	if conf.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, realtime chat delivery disabled")
		return chat.NopHub{}
	}

	hub := chat.NewRedisHub(conf.RedisAddr, conf.RedisPassword, conf.RedisDB)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hub.Ping(ctx); err != nil {
		log.WithError(err).WithField("redis_addr", conf.RedisAddr).Warn("Redis unreachable, realtime chat delivery may be delayed")
	}
	return hub
}

// waitForShutdown blocks until SIGINT or SIGTERM and then drains in-flight requests
func waitForShutdown(srv *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
}
