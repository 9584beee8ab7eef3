package codec

import (
	"errors"
)

var (
	// ErrEmptyZone is returned when the zone content is empty.
	ErrEmptyZone = errors.New("zone content is empty")

	// ErrNotAZone is returned when JSON content does not describe a zone object.
	ErrNotAZone = errors.New("content is not a zone object")

	// ErrBadRecord is returned when a record can not be rendered as a resource record.
	ErrBadRecord = errors.New("record can not be rendered")
)
