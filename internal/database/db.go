package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"starwars_api/internal/config"
)

// EnsureDatabaseExists connects to the maintenance database of the server named in
// databaseURL and creates the target database when it is missing.
func EnsureDatabaseExists(ctx context.Context, databaseURL string, log zerolog.Logger) error {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return fmt.Errorf("failed to parse connection string: %w", err)
	}
	database := cfg.ConnConfig.Database
	if database == "" {
		return fmt.Errorf("DATABASE_URL must name a database")
	}
	cfg.ConnConfig.Database = "postgres"

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	log.Info().Str("database", database).Msg("Checking if database exists")

	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)"
	if err := pool.QueryRow(ctx, query, database).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		log.Info().Str("database", database).Msg("Database already exists")
		return nil
	}

	// CREATE DATABASE cannot run inside a transaction block.
	createQuery := fmt.Sprintf("CREATE DATABASE %s", pgx.Identifier{database}.Sanitize())
	if _, err := pool.Exec(ctx, createQuery); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	log.Info().Str("database", database).Msg("Database created")
	return nil
}

// Open connects to Postgres when cfg.DatabaseURL is set and to the SQLite file at
// cfg.SQLitePath otherwise.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	}

	var dialector gorm.Dialector
	if cfg.UsesPostgres() {
		if cfg.DBAutoCreate {
			if err := EnsureDatabaseExists(ctx, cfg.DatabaseURL, log); err != nil {
				return nil, err
			}
		}
		dialector = postgres.Open(cfg.DatabaseURL)
		log.Info().Str("dsn", redactURL(cfg.DatabaseURL)).Msg("Connecting to PostgreSQL")
	} else {
		dialector = sqlite.Open(SQLiteDSN(cfg.SQLitePath))
		log.Info().Str("path", cfg.SQLitePath).Msg("Opening SQLite database")
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get connection pool: %w", err)
	}
	if cfg.UsesPostgres() {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(1 * time.Minute)
	} else {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Str("dialect", db.Dialector.Name()).Msg("Database connection established")
	return db, nil
}

// SQLiteDSN turns a file path into a DSN with foreign keys enabled, which the
// favorite cascades rely on.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func Close(db *gorm.DB, log zerolog.Logger) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get connection pool")
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close database")
		return
	}
	log.Info().Msg("Database connection closed")
}

func redactURL(dsn string) string {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return "postgres://***"
	}
	return fmt.Sprintf("postgres://%s:***@%s:%d/%s", cfg.User, cfg.Host, cfg.Port, cfg.Database)
}
