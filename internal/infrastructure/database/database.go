package database

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"github.com/mekdahl/barkassa-api/internal/config"
	"github.com/mekdahl/barkassa-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the configured database. The register normally runs against
// an embedded sqlite file on the till itself; postgres is for venues
// with a shared back office.
func New(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	var db *gorm.DB
	var err error

	switch cfg.Driver {
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(cfg.Path), gormCfg)
	case "postgres":
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}), gormCfg)
	default:
		return nil, fmt.Errorf("unknown database driver %q (use sqlite or postgres)", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// The sqlite driver serializes writes itself; the pool settings
	// matter for postgres, where concurrent report reads are expected.
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Printf("Connected to %s database", cfg.Driver)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.MenuItem{},
		&entity.Sale{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
