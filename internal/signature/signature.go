// Package signature holds TypeInfo, the description of one curried
// function signature (spec §3). It sits below both internal/curry
// (which dispatches against a TypeInfo) and internal/render (which
// prints one), so neither of those needs to import the other.
package signature

import (
	"github.com/escalier-lang/defcheck/internal/typeclass"
	"github.com/escalier-lang/defcheck/internal/typesys"
)

// TypeInfo is one signature: a name, a constraint map from type-variable
// name to the TypeClasses it must satisfy, and the curried parameter
// list where the last element is the return type.
type TypeInfo struct {
	Name        string
	Constraints map[string][]typeclass.TypeClass
	Types       []*typesys.Type
}

// Arity is the number of positional parameters (Types minus the return
// type).
func (t *TypeInfo) Arity() int { return len(t.Types) - 1 }

// ReturnType is the last element of Types.
func (t *TypeInfo) ReturnType() *typesys.Type { return t.Types[len(t.Types)-1] }
