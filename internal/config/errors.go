package config

import (
	"errors"
)

var (
	// ErrUnsupportedGormEngine error if config DB.GormEngine is not sqlite, mysql or postgres.
	ErrUnsupportedGormEngine = errors.New("toml config db.gormengine must be sqlite, mysql or postgres")

	// ErrEmptyDBName error if config DB.Name is empty.
	ErrEmptyDBName = errors.New("toml config db.name can not be empty")
)
