package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm/schema"

	"github.com/franciscosanchezn/linkup-api/internal/config"
	"github.com/franciscosanchezn/linkup-api/internal/database/migrations"
	"github.com/franciscosanchezn/linkup-api/internal/models"
)

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      DatabaseConfig
		expected string
	}{
		{
			name:     "postgres",
			cfg:      DatabaseConfig{Driver: "postgres", Host: "db", Port: "5432", User: "u", Password: "p", Name: "LinkUp", SSLMode: "disable"},
			expected: "host=db user=u password=p dbname=LinkUp port=5432 sslmode=disable",
		},
		{
			name:     "mysql",
			cfg:      DatabaseConfig{Driver: "mysql", Host: "db", Port: "3306", User: "u", Password: "p", Name: "LinkUp"},
			expected: "u:p@tcp(db:3306)/LinkUp?charset=utf8mb4&parseTime=True&loc=UTC",
		},
		{
			name:     "sqlite",
			cfg:      DatabaseConfig{Driver: "sqlite", Path: "linkup.sqlite"},
			expected: "linkup.sqlite",
		},
		{
			name:     "unknown driver",
			cfg:      DatabaseConfig{Driver: "oracle"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.DSN())
		})
	}
}

func TestFromConfig(t *testing.T) {
	cfg := FromConfig(config.DatabaseConfig{
		DBDriver: "mysql", DBHost: "db", DBPort: "3306", DBUser: "u",
		DBPassword: "p", DBName: "LinkUp", DBSSLMode: "disable", DBPath: "unused.sqlite",
	})

	assert.Equal(t, DatabaseConfig{
		Driver: "mysql", Host: "db", Port: "3306", User: "u",
		Password: "p", Name: "LinkUp", SSLMode: "disable", Path: "unused.sqlite",
	}, cfg)
	assert.Equal(t, "u:p@tcp(db:3306)/LinkUp?charset=utf8mb4&parseTime=True&loc=UTC", cfg.DSN())
}

func TestDatabaseConfigStringMasksPassword(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", Password: "hunter2"}
	assert.NotContains(t, cfg.String(), "hunter2")
}

func TestInitDatabaseRejectsUnknownDriver(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestInitDatabaseRetriesOnlyAtStartup(t *testing.T) {
	original := startupRetryDelays
	defer func() { startupRetryDelays = original }()
	startupRetryDelays = []time.Duration{0, 0}

	missingDir := filepath.Join(t.TempDir(), "missing", "linkup.sqlite")
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: missingDir})

	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "after 3 startup attempts")
}

func TestInitDatabaseAndMigrateSQLite(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "linkup.sqlite")})
	require.NoError(t, err)

	require.NoError(t, Migrate(context.Background(), db, "sqlite"))

	for _, m := range Models {
		assert.True(t, db.Migrator().HasTable(m), "missing table for %T", m)
	}

	// email uniqueness is a storage constraint, not a check-before-insert
	require.NoError(t, db.Create(&models.User{Email: "a@x.com"}).Error)
	assert.Error(t, db.Create(&models.User{Email: "a@x.com"}).Error)
}

func TestMigratePostgresUsesGoose(t *testing.T) {
	original := gooseUpContext
	defer func() { gooseUpContext = original }()

	db, err := InitDatabase(DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "goose.sqlite")})
	require.NoError(t, err)

	called := false
	gooseUpContext = func(ctx context.Context, sqlDB *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		called = true
		assert.Equal(t, ".", dir)
		return nil
	}
	require.NoError(t, Migrate(context.Background(), db, "postgres"))
	assert.True(t, called)

	boom := errors.New("boom")
	gooseUpContext = func(ctx context.Context, sqlDB *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return boom
	}
	assert.ErrorIs(t, Migrate(context.Background(), db, "postgres"), boom)
}

func TestMigrationsAreEmbedded(t *testing.T) {
	entries, err := fs.Glob(migrations.Migrations, "*.sql")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(entries), 4)
}

// MySQL cannot index TEXT columns without a key length, so every indexed string column
// must map to a sized varchar.
func TestIndexedColumnsHaveMySQLKeyLength(t *testing.T) {
	dialector := mysql.Dialector{Config: &mysql.Config{}}
	cache := &sync.Map{}

	for _, m := range Models {
		s, err := schema.Parse(m, cache, schema.NamingStrategy{})
		require.NoError(t, err)

		for _, field := range s.Fields {
			if field.DataType != schema.String {
				continue
			}
			_, unique := field.TagSettings["UNIQUEINDEX"]
			_, index := field.TagSettings["INDEX"]
			if !unique && !index && !field.PrimaryKey {
				continue
			}
			dataType := dialector.DataTypeOf(field)
			assert.False(t, strings.Contains(dataType, "text"),
				"%s.%s -> %s", s.Table, field.DBName, dataType)
		}
	}

	users, err := schema.Parse(&models.User{}, cache, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Equal(t, "varchar(191)", dialector.DataTypeOf(users.LookUpField("Email")))

	tokens, err := schema.Parse(&models.OAuthToken{}, cache, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Equal(t, "varchar(512)", dialector.DataTypeOf(tokens.LookUpField("AccessToken")))
}
