package engine

// DumpChanges returns a copy of the change log.
func (e *Engine) DumpChanges() []Change {
	return copyChanges(e.changes)
}

// ImportChanges replaces the whole change log with changes. The imported
// log is neither merged nor validated.
func (e *Engine) ImportChanges(changes []Change) *Engine {
	e.changes = copyChanges(changes)
	return e
}

// Reset discards the change log.
func (e *Engine) Reset() {
	e.changes = nil
}

// DumpOperations flattens the change log into its replay sequence: the ops
// of every change in log order. An empty log yields an empty sequence.
func (e *Engine) DumpOperations() []Operation {
	ops := []Operation{}

	for _, c := range e.changes {
		ops = append(ops, c.Ops...)
	}

	return ops
}

func copyChanges(changes []Change) []Change {
	out := make([]Change, len(changes))

	for i, c := range changes {
		out[i] = c
		out[i].Ops = append([]Operation(nil), c.Ops...)
	}

	return out
}
