package engine

import (
	"github.com/GoPowerDNS-Admin/zonechange/internal/zone"
)

// Action names a staged change or a primitive operation.
type Action string

const (
	// ActionSetRecord stages a record value, replacing or extending existing values.
	ActionSetRecord Action = "SET_RECORD"

	// ActionRemoveRecord removes records by name, or by name and value.
	ActionRemoveRecord Action = "REMOVE_RECORD"

	// ActionAppendRecord appends one record. It only appears in operations.
	ActionAppendRecord Action = "APPEND_RECORD"
)

// Mode selects how SET_RECORD treats existing values under the same name.
type Mode string

const (
	// ModeOverride replaces all existing values of the name.
	ModeOverride Mode = "override"

	// ModeAppend adds a value next to existing ones where the type allows it.
	ModeAppend Mode = "append"
)

// Operation is one primitive, order significant step of a replay.
type Operation struct {
	Action Action      `json:"action" yaml:"action"`
	Type   zone.Type   `json:"type"   yaml:"type"`
	Record zone.Record `json:"record" yaml:"record"`
}

// Change is one staged intent together with the operations it expands to.
type Change struct {
	Action Action      `json:"action"         yaml:"action"`
	Type   zone.Type   `json:"type"           yaml:"type"`
	Record zone.Record `json:"record"         yaml:"record"`
	Mode   Mode        `json:"mode,omitempty" yaml:"mode,omitempty"`
	Ops    []Operation `json:"ops"            yaml:"ops"`
}

func removeOp(t zone.Type, r zone.Record) Operation {
	return Operation{Action: ActionRemoveRecord, Type: t, Record: r}
}

func appendOp(t zone.Type, r zone.Record) Operation {
	return Operation{Action: ActionAppendRecord, Type: t, Record: r}
}
