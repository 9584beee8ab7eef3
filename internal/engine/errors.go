package engine

import (
	"errors"
)

var (
	// ErrUnsupportedRecordType is returned when a change targets a type outside the mutable allow list.
	ErrUnsupportedRecordType = errors.New("record type is not supported")

	// ErrInvalidRecord is returned when a record fails shape validation.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrRecordNotFound is returned when a removal targets a name without records.
	ErrRecordNotFound = errors.New("record does not exist")

	// ErrUnsupportedMode is returned for set modes other than override and append.
	ErrUnsupportedMode = errors.New("set mode is not supported")

	// ErrZoneFileNotFound is returned when a zone file path does not exist.
	ErrZoneFileNotFound = errors.New("zone file does not exist")

	// ErrZoneEmpty is returned when zone content is empty.
	ErrZoneEmpty = errors.New("zone file is empty")

	// ErrZoneUnparseable is returned when zone content can not be parsed.
	ErrZoneUnparseable = errors.New("can't parse zone")
)
