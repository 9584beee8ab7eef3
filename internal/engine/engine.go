// Package engine stages reviewable changes to a DNS zone and replays them
// against a zone snapshot.
//
// Overview
//   - Intents (SetRecord, RemoveRecord) are validated, resolved against the
//     current snapshot and stored as Changes in an append-only change log.
//   - Each Change carries the primitive Operations it expands to. Flattening
//     the log (DumpOperations) yields the replay sequence.
//   - ApplyChanges replays all removals first, then all appends, producing a
//     new snapshot. The change log is left untouched.
//   - DumpChanges and ImportChanges move a change log between engines, e.g.
//     from the process that staged it to the one that applies it.
//
// An Engine is not safe for concurrent use. Use one engine per pending
// change set and serialize access to it.
package engine

import (
	"github.com/GoPowerDNS-Admin/zonechange/internal/zone"
	"github.com/GoPowerDNS-Admin/zonechange/internal/zone/validate"
)

// RecordValidator checks the shape of a record against the rules registered
// under key ("record-<type>").
type RecordValidator interface {
	Validate(key string, r zone.Record) bool
	ErrorsText() string
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	validator RecordValidator
	origin    string
}

// WithValidator replaces the default record validator.
func WithValidator(v RecordValidator) Option {
	return func(o *options) {
		o.validator = v
	}
}

// WithOrigin sets the origin used to parse flat zones without a $ORIGIN directive.
func WithOrigin(origin string) Option {
	return func(o *options) {
		o.origin = origin
	}
}

// Engine holds a current zone snapshot and the change log staged against it.
type Engine struct {
	mutable   []zone.Type
	validator RecordValidator
	current   *zone.Snapshot
	changes   []Change
}

// New returns an engine staging changes against snapshot.
func New(snapshot *zone.Snapshot, opts ...Option) *Engine {
	o := newOptions(opts)

	if snapshot == nil {
		snapshot = zone.NewSnapshot(o.origin)
	}

	return &Engine{
		mutable:   []zone.Type{zone.TypeA, zone.TypeCNAME},
		validator: o.validator,
		current:   snapshot,
	}
}

func newOptions(opts []Option) options {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	if o.validator == nil {
		o.validator = validate.New()
	}

	return o
}

// Current returns the current snapshot. It must be treated as read only.
func (e *Engine) Current() *zone.Snapshot {
	return e.current
}

// Mutable reports whether changes may target t.
func (e *Engine) Mutable(t zone.Type) bool {
	for _, m := range e.mutable {
		if m == t {
			return true
		}
	}

	return false
}

// GetRecords returns the records of type t named name in snapshot order.
// Names are compared exactly. Only a and cname records can be queried;
// other types always yield no records.
func (e *Engine) GetRecords(t zone.Type, name string) []zone.Record {
	switch t {
	case zone.TypeA, zone.TypeCNAME:
	default:
		return []zone.Record{}
	}

	matches := []zone.Record{}

	for _, r := range e.current.Get(t) {
		if r.Name == name {
			matches = append(matches, r)
		}
	}

	return matches
}

// RecordExists reports whether at least one record of type t is named name.
func (e *Engine) RecordExists(t zone.Type, name string) bool {
	return len(e.GetRecords(t, name)) > 0
}
