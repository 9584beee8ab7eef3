package engine

import (
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/zonechange/internal/zone"
)

// ApplyChanges replays the change log against a copy of the current
// snapshot and returns the result. All removals run before any append, each
// pass in log order. An append is dropped when a removal staged after it
// matches the appended record, so a later change always wins over an earlier
// one for the same name. With replaceCurrent the result becomes the current
// snapshot. The change log itself is kept.
func (e *Engine) ApplyChanges(replaceCurrent bool) *zone.Snapshot {
	next := e.current.Clone()
	ops := e.DumpOperations()

	if len(ops) > 0 {
		replay(next, ops)
	}

	if replaceCurrent {
		e.current = next
	}

	log.Debug().
		Int("changes", len(e.changes)).
		Int("ops", len(ops)).
		Bool("replace", replaceCurrent).
		Msg("applied change log")

	return next
}

func replay(s *zone.Snapshot, ops []Operation) {
	for _, op := range ops {
		if op.Action != ActionRemoveRecord || !s.Has(op.Type) {
			continue
		}

		kept := s.Records[op.Type][:0]
		for _, r := range s.Records[op.Type] {
			if !matches(op, r) {
				kept = append(kept, r)
			}
		}

		s.Records[op.Type] = kept
	}

	for i, op := range ops {
		if op.Action != ActionAppendRecord || removedLater(op, ops[i+1:]) {
			continue
		}

		s.Records[op.Type] = append(s.Records[op.Type], op.Record)
	}
}

func removedLater(op Operation, rest []Operation) bool {
	for _, later := range rest {
		if later.Action == ActionRemoveRecord && later.Type == op.Type && matches(later, op.Record) {
			return true
		}
	}

	return false
}

// matches reports whether the removal op discards r. Without a value every
// record of the name matches; with a value only the record whose value field
// equals it. Types without a value field never match a valued removal.
// Only op.Record is inspected for a match value: Value on r may be a caa
// payload, and name-only removal ops are always built with NameOnly.
func matches(op Operation, r zone.Record) bool {
	if r.Name != op.Record.Name {
		return false
	}

	if !op.Record.HasValue() {
		return true
	}

	v, ok := zone.ValueOf(op.Type, r)

	return ok && v == op.Record.Value
}
