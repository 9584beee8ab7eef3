package engine

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/zonechange/internal/zone"
	"github.com/GoPowerDNS-Admin/zonechange/internal/zone/validate"
)

// OverrideRecord stages r replacing all existing values of its name.
func (e *Engine) OverrideRecord(t zone.Type, r zone.Record) error {
	return e.SetRecord(t, r, ModeOverride)
}

// AppendRecord stages r next to existing values of its name.
func (e *Engine) AppendRecord(t zone.Type, r zone.Record) error {
	return e.SetRecord(t, r, ModeAppend)
}

// SetRecord stages r as a record of type t. An empty mode means ModeOverride.
//
// a and cname never coexist under one name: setting an a record removes
// every cname of the name (and, in override mode, every a record), setting a
// cname removes every a and cname record of the name regardless of mode.
// The change log is not modified when an error is returned.
func (e *Engine) SetRecord(t zone.Type, r zone.Record, mode Mode) error {
	if mode == "" {
		mode = ModeOverride
	}

	if !e.Mutable(t) {
		return errors.Wrapf(ErrUnsupportedRecordType, "%q", t)
	}

	if mode != ModeOverride && mode != ModeAppend {
		return errors.Wrapf(ErrUnsupportedMode, "%q", mode)
	}

	if !e.validator.Validate(validate.Key(t), r) {
		return errors.Wrap(ErrInvalidRecord, e.validator.ErrorsText())
	}

	change := Change{Action: ActionSetRecord, Type: t, Record: r, Mode: mode}

	switch t {
	case zone.TypeA:
		change.Ops = append(change.Ops, e.removeMatches(zone.TypeCNAME, r.Name)...)
		if mode == ModeOverride {
			change.Ops = append(change.Ops, e.removeMatches(zone.TypeA, r.Name)...)
		}
	case zone.TypeCNAME:
		change.Ops = append(change.Ops, e.removeMatches(zone.TypeA, r.Name)...)
		change.Ops = append(change.Ops, e.removeMatches(zone.TypeCNAME, r.Name)...)
	default:
		d, _ := zone.Describe(t)
		if mode == ModeOverride || !d.MultipleValuesPerKey || !d.MultipleRecords {
			change.Ops = append(change.Ops, e.removeMatches(t, r.Name)...)
		}
	}

	change.Ops = append(change.Ops, appendOp(t, r))
	e.changes = append(e.changes, change)

	log.Debug().
		Str("record_type", t.String()).
		Str("name", r.Name).
		Str("mode", string(mode)).
		Int("ops", len(change.Ops)).
		Msg("staged set record")

	return nil
}

// RemoveRecord stages the removal of every record of type t named name.
// One operation is staged per record matching now, so later changes can not
// widen the removal.
func (e *Engine) RemoveRecord(t zone.Type, name string) error {
	return e.RemoveRecordValue(t, name, "")
}

// RemoveRecordValue stages the removal of the record of type t named name
// whose value equals value. Only the existence of the name is checked; a
// value matching no record is accepted and removes nothing on apply. An
// empty value behaves like RemoveRecord.
func (e *Engine) RemoveRecordValue(t zone.Type, name, value string) error {
	if !e.Mutable(t) {
		return errors.Wrapf(ErrUnsupportedRecordType, "%q", t)
	}

	if !e.RecordExists(t, name) {
		return errors.Wrapf(ErrRecordNotFound, "record %s of type %s", name, t)
	}

	change := Change{Action: ActionRemoveRecord, Type: t, Record: zone.Record{Name: name, Value: value}}

	if value == "" {
		change.Ops = e.removeMatches(t, name)
	} else {
		change.Ops = []Operation{removeOp(t, change.Record)}
	}

	e.changes = append(e.changes, change)

	log.Debug().
		Str("record_type", t.String()).
		Str("name", name).
		Str("value", value).
		Int("ops", len(change.Ops)).
		Msg("staged remove record")

	return nil
}

// removeMatches returns one name-only removal per record currently matching.
func (e *Engine) removeMatches(t zone.Type, name string) []Operation {
	matches := e.GetRecords(t, name)
	ops := make([]Operation, 0, len(matches))

	for _, m := range matches {
		ops = append(ops, removeOp(t, m.NameOnly()))
	}

	return ops
}
