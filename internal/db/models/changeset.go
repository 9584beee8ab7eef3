package models

import "time"

// ChangeSet is a named change log staged against a zone.
type ChangeSet struct {
	ID        uint64 `gorm:"primaryKey"`
	UUID      string `gorm:"uniqueIndex;size:36"`
	Name      string `gorm:"uniqueIndex;size:191"`
	Zone      string // zone origin or file the log was staged against
	Changes   []byte // json encoded change log
	CreatedAt time.Time
	UpdatedAt time.Time
}
