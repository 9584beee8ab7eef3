// Package db opens the change set store configured by config.DB.
package db

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/GoPowerDNS-Admin/zonechange/internal/config"
	"github.com/GoPowerDNS-Admin/zonechange/internal/db/dsn"
	"github.com/GoPowerDNS-Admin/zonechange/internal/db/models"
)

// Open connects to the configured database and migrates the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case config.GormEngineSQLite:
		dialector = sqlite.Open(cfg.DB.Name)
	case config.GormEngineMySQL:
		dialector = gormmysql.Open(dsn.Create(cfg))
	case config.GormEnginePostgres:
		dialector = postgres.Open(dsn.Postgres(cfg))
	default:
		return nil, errors.Wrapf(config.ErrUnsupportedGormEngine, "%q", cfg.DB.GormEngine)
	}

	logLevel := gormlogger.Silent
	if cfg.DevMode {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(logLevel)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if err = db.AutoMigrate(&models.ChangeSet{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	log.Debug().Str("engine", cfg.DB.GormEngine).Str("name", cfg.DB.Name).Msg("change set store opened")

	return db, nil
}
