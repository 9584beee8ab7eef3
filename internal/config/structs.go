package config

import (
	"github.com/GoPowerDNS-Admin/zonechange/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode bool // enable dev mode for development
	DB      DB
	Log     logger.Log
	Zone    Zone
}

// Zone holds defaults for reading and writing zone files.
type Zone struct {
	Origin string // origin for flat zones without $ORIGIN
	TTL    uint32 // default ttl written for records without one
}
