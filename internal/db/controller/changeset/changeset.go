// Package changeset stores named change logs so they can be staged in one run
// and applied in another.
package changeset

import (
	"bytes"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/zonechange/internal/changelog"
	"github.com/GoPowerDNS-Admin/zonechange/internal/db/models"
	"github.com/GoPowerDNS-Admin/zonechange/internal/engine"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrChangeSetNotFound is returned when no change set carries the requested name.
	ErrChangeSetNotFound = errors.New("change set not found")
	// ErrChangeSetNameEmpty is returned when a change set name is empty.
	ErrChangeSetNameEmpty = errors.New("change set name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a change set by its name.
func Get(db *gorm.DB, name string) (*models.ChangeSet, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrChangeSetNameEmpty
	}

	var cs models.ChangeSet
	result := db.Where(nameQueryPattern, name).First(&cs)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrChangeSetNotFound
		}
		return nil, result.Error
	}

	return &cs, nil
}

// GetAll retrieves all change sets ordered by name.
func GetAll(db *gorm.DB) ([]models.ChangeSet, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var sets []models.ChangeSet
	result := db.Order("name").Find(&sets)
	if result.Error != nil {
		return nil, result.Error
	}

	return sets, nil
}

// Save creates or replaces the change log stored under name (upsert operation).
// A newly created change set gets a fresh UUID; an update keeps the existing one.
func Save(db *gorm.DB, name, zoneName string, changes []engine.Change) (*models.ChangeSet, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrChangeSetNameEmpty
	}

	var buf bytes.Buffer
	if err := changelog.Encode(&buf, changes, changelog.FormatJSON); err != nil {
		return nil, err
	}

	var cs models.ChangeSet
	result := db.Where(nameQueryPattern, name).First(&cs)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, result.Error
		}

		cs = models.ChangeSet{
			UUID:    uuid.NewString(),
			Name:    name,
			Zone:    zoneName,
			Changes: buf.Bytes(),
		}
		if result = db.Create(&cs); result.Error != nil {
			return nil, result.Error
		}

		return &cs, nil
	}

	cs.Zone = zoneName
	cs.Changes = buf.Bytes()
	if result = db.Save(&cs); result.Error != nil {
		return nil, result.Error
	}

	return &cs, nil
}

// Delete removes a change set by name.
func Delete(db *gorm.DB, name string) error {
	if db == nil {
		return ErrDBNil
	}
	if name == "" {
		return ErrChangeSetNameEmpty
	}

	result := db.Where(nameQueryPattern, name).Delete(&models.ChangeSet{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrChangeSetNotFound
	}

	return nil
}

// Changes decodes the change log stored in cs.
func Changes(cs *models.ChangeSet) ([]engine.Change, error) {
	if cs == nil {
		return []engine.Change{}, nil
	}

	return changelog.Decode(bytes.NewReader(cs.Changes), changelog.FormatJSON)
}
