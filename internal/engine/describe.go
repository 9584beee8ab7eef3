package engine

import (
	"fmt"
	"strings"

	"github.com/GoPowerDNS-Admin/zonechange/internal/zone"
)

// DescribeChange renders one line per staged change. The text is for
// review only; the operations are authoritative.
func (e *Engine) DescribeChange() string {
	lines := make([]string, 0, len(e.changes))

	for _, c := range e.changes {
		lines = append(lines, describe(c))
	}

	return strings.Join(lines, "\n")
}

func describe(c Change) string {
	switch c.Action {
	case ActionRemoveRecord:
		if c.Record.HasValue() {
			return fmt.Sprintf("remove record '%s' of type '%s' matching value '%s'", c.Record.Name, c.Type, c.Record.Value)
		}

		return fmt.Sprintf("remove record '%s' of type '%s'", c.Record.Name, c.Type)
	case ActionSetRecord:
		if c.Mode == ModeOverride || c.Mode == "" {
			return fmt.Sprintf("set record '%s' of type '%s' to %s while removing any existing values",
				c.Record.Name, c.Type, displayValue(c.Type, c.Record))
		}

		return fmt.Sprintf("add new value to record '%s' of type '%s' to %s",
			c.Record.Name, c.Type, displayValue(c.Type, c.Record))
	case ActionAppendRecord:
		return ""
	default:
		return ""
	}
}

// displayValue falls back to "true" for types without a value field.
func displayValue(t zone.Type, r zone.Record) string {
	if v, ok := zone.ValueOf(t, r); ok {
		return v
	}

	return "true"
}
