// Package calculation is the pure estimated-tax engine: federal income tax,
// self-employment tax, child credits, liability aggregation, and the
// quarterly installment allocator. Every function is deterministic over
// immutable value inputs (no I/O, no shared mutable state), so the same
// Inputs and TaxYearTable always produce the same LiabilitySummary and
// InstallmentSchedule, from any number of concurrent callers.
package calculation

import (
	"quartax/internal/tables"
)

// Engine evaluates calculation requests against one tax year's tables.
type Engine struct {
	Tables *tables.TaxYearTable
	Logger Logger
	Debug  bool
}

// NewEngine creates an engine for the given tax year table.
func NewEngine(t *tables.TaxYearTable) *Engine {
	return &Engine{
		Tables: t,
		Logger: NopLogger{},
	}
}

// SetLogger replaces the engine logger. A nil logger restores the no-op.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}
