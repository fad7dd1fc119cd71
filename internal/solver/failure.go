package solver

import (
	"github.com/escalier-lang/defcheck/internal/propath"
	"github.com/escalier-lang/defcheck/internal/typeclass"
	"github.com/escalier-lang/defcheck/internal/typesys"
	"github.com/escalier-lang/defcheck/internal/value"
)

// FailureKind is which of the solver's three failure shapes occurred
// (spec §7 errors 1-3; arity failures are raised by the curry package,
// not the solver).
type FailureKind int

const (
	InvalidValue FailureKind = iota
	TypeClassViolation
	VariableViolation
)

// Failure is the realized diagnostic payload the solver reports once a
// Deferred has been chosen to surface (spec §4.4: "errors are deferred as
// thunks ... only the surviving top-level failure is realised").
type Failure struct {
	Kind FailureKind

	// InvalidValue
	Value value.Value
	Path  propath.Path

	// TypeClassViolation
	Class   typeclass.TypeClass
	VarName string

	// VariableViolation
	VarType     *typesys.Type
	Occurrences map[string]*Occurrence
}

// Deferred is a zero-argument diagnostic constructor (spec §4.4): passing
// around a closure instead of an already-built Failure means the solver
// pays formatting cost only for whichever single failure ultimately
// escapes, never for failures a combinator discards in favor of a deeper
// one.
type Deferred func() *Failure
