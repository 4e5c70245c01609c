package database

import (
	"context"
	"fmt"

	"github.com/anamikapanwar73/proctored-exam-system/config"
	"github.com/anamikapanwar73/proctored-exam-system/internal/logger"
	"github.com/anamikapanwar73/proctored-exam-system/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens a connection pool for the configured driver. The store is
// not pinged here so that an unreachable database does not stop the process.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:               logger.GormLogger(),
		TranslateError:       true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Database.Driver, err)
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("Database handle created")
	return db, nil
}

func Dialector(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres", "":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port)
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Ping checks that the store is reachable.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// mysqlTableOptions makes string comparisons binary so usernames stay
// case-sensitive; utf8mb4's default collation folds case.
const mysqlTableOptions = "ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin"

// migrator applies dialect-specific table options.
func migrator(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "mysql" {
		return db.Set("gorm:table_options", mysqlTableOptions)
	}
	return db
}

func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := migrator(db).AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Result{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
