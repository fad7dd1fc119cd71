// Package typeclass defines the small external collaborator the spec
// keeps out of the core type algebra (§1): a named value predicate that
// TypeVariable constraints are checked against.
package typeclass

import "github.com/escalier-lang/defcheck/internal/value"

// TypeClass is the interface the engine consumes; anything satisfying it
// can appear in a signature's constraint map. Grounded on the one-method
// family, name-plus-behavior interfaces escalier uses for its Error type
// (internal/checker/error.go): a minimal shape, concrete structs supply
// the rest.
type TypeClass interface {
	Name() string
	Test(v value.Value) bool
}

// Predicate is the ready-made TypeClass implementation: a name paired
// with a predicate function, the way library authors actually declare
// these (Semigroup, Functor, ...).
type Predicate struct {
	ClassName string
	Pred      func(value.Value) bool
}

// Name implements TypeClass.
func (p Predicate) Name() string { return p.ClassName }

// Test implements TypeClass.
func (p Predicate) Test(v value.Value) bool { return p.Pred(v) }
