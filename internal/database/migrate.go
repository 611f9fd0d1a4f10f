package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/linkup-api/internal/database/migrations"
	"github.com/franciscosanchezn/linkup-api/internal/models"
)

// Models lists every table managed by AutoMigrate
var Models = []interface{}{
	&models.User{},
	&models.Event{},
	&models.Review{},
	&models.Message{},
	&models.OAuthClient{},
	&models.OAuthToken{},
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Migrate brings the schema up to date. PostgreSQL runs the versioned goose migrations;
// SQLite and MySQL use gorm AutoMigrate, which also creates the unique email index.
func Migrate(ctx context.Context, db *gorm.DB, driver string) error {
	switch strings.ToLower(driver) {
	case "postgres", "postgresql":
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("get database instance: %w", err)
		}
		goose.SetBaseFS(migrations.Migrations)
		if err := goose.SetDialect("postgres"); err != nil {
			return fmt.Errorf("set goose dialect: %w", err)
		}
		if err := gooseUpContext(ctx, sqlDB, "."); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	default:
		if err := db.WithContext(ctx).AutoMigrate(Models...); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
	}

	log.WithFields(logrus.Fields{"db_driver": driver}).Info("Database schema is up to date")
	return nil
}
