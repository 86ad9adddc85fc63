package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/rpupo63/fyyur/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// Open connects to the database described by c. DB_TYPE selects the
// driver: "postgres" (default), "supa" for a hosted Postgres that requires
// TLS, or "sqlite" for local development.
func Open(c map[string]string) (*gorm.DB, error) {
	dbType := strings.ToLower(config.GetString(c, "DB_TYPE", "postgres"))

	var dialector gorm.Dialector
	switch dbType {
	case "postgres", "supa":
		dialector = postgres.New(postgres.Config{
			DSN:                  postgresDSN(c, dbType),
			PreferSimpleProtocol: true,
		})
	case "sqlite":
		dialector = sqlite.Open(config.GetString(c, "SQLITE_PATH", "fyyur.db"))
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", dbType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: false,
		Logger:      NewGormLogger(log.Logger, config.GetBool(c, "DB_LOG_QUERIES", false)),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", dbType, err)
	}

	if replica := config.GetString(c, "DB_READ_REPLICA_DSN", ""); replica != "" && dbType != "sqlite" {
		err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(replica)},
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, fmt.Errorf("register read replica: %w", err)
		}
		log.Info().Msg("read replica registered")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(config.GetInt(c, "DB_MAX_OPEN_CONNS", 10))
	sqlDB.SetMaxIdleConns(config.GetInt(c, "DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxLifetime(config.GetSeconds(c, "DB_CONN_MAX_LIFETIME_SECONDS", 300))

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("test database connection: %w", err)
	}

	return db, nil
}

func postgresDSN(c map[string]string, dbType string) string {
	if url := config.GetString(c, "DATABASE_URL", ""); url != "" {
		return url
	}

	sslMode := config.GetString(c, "DB_SSLMODE", "disable")
	if dbType == "supa" {
		sslMode = "require"
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		config.GetString(c, "DB_HOST", "localhost"),
		config.GetString(c, "DB_USER", "postgres"),
		config.GetString(c, "DB_PASSWORD", ""),
		config.GetString(c, "DB_NAME", "fyyur"),
		config.GetString(c, "DB_PORT", "5432"),
		sslMode,
	)
}

// NewGormLogger routes gorm's log output through zerolog. Record-not-found
// is expected on every lookup of a missing id and is never logged.
func NewGormLogger(base zerolog.Logger, verbose bool) logger.Interface {
	gormLog := base.With().Str("component", "gorm").Logger()

	level := logger.Warn
	if verbose {
		level = logger.Info
	}

	return logger.New(&gormLog, logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
