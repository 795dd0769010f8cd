package config

import (
	"os"
	"path/filepath"

	"github.com/Aram-az/ESSDev-Lifeyears/models"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB connects the gorm storage backends and migrates the slot table.
// An empty sqlite DSN resolves to ~/.lifeyears/lifeyears.db.
func OpenDB(cfg StorageConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Backend {
	case BackendPostgres:
		dialector = postgres.Open(cfg.DSN)
	case BackendSQLite:
		dsn := cfg.DSN
		if dsn == "" {
			var err error
			dsn, err = defaultSQLitePath()
			if err != nil {
				return nil, err
			}
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, errors.Errorf("storage backend %q is not a database", cfg.Backend)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.AutoMigrate(&models.StorageEntry{}); err != nil {
		return nil, errors.Wrap(err, "automigrate failed")
	}
	return db, nil
}

func defaultSQLitePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}
	dir := filepath.Join(home, ".lifeyears")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", errors.Wrapf(err, "failed to create %s", dir)
	}
	return filepath.Join(dir, "lifeyears.db"), nil
}
