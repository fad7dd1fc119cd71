package defcheck

import (
	"github.com/escalier-lang/defcheck/internal/catalog"
	"github.com/escalier-lang/defcheck/internal/typeclass"
	"github.com/escalier-lang/defcheck/internal/typesys"
)

// Type is the public alias for the engine's type representation (spec
// §3); every constructor below and every catalog type returns one.
type Type = typesys.Type

// NullaryType, UnaryType and BinaryType build the three parameterised-type
// constructor shapes (spec §4.2, §6's named External Interfaces).
var (
	NullaryType = typesys.NullaryType
	UnaryType   = typesys.UnaryType
	BinaryType  = typesys.BinaryType
)

// RecordType, EnumType and Function build the remaining core constructors
// (spec §4.2, §6).
var (
	RecordType = typesys.RecordType
	EnumType   = typesys.EnumType
	Function   = typesys.Function
)

// TypeVariable, UnaryTypeVariable and BinaryTypeVariable build
// unconstrained, singly- and doubly-parameterised type variables (spec
// §4.2).
var (
	TypeVariable       = typesys.TypeVariable
	UnaryTypeVariable  = typesys.UnaryTypeVariable
	BinaryTypeVariable = typesys.BinaryTypeVariable
)

// Unknown and Inconsistent are the sentinels candidate inference uses
// internally; exported so a caller assembling their own Env can
// recognize them.
var (
	Unknown      = typesys.UnknownType
	Inconsistent = typesys.InconsistentType
)

// TypeClass is a named value predicate a TypeVariable's constraints can
// require (spec §4.2's constraint map); Predicate is the ready-made
// implementation.
type TypeClass = typeclass.TypeClass
type Predicate = typeclass.Predicate

// The non-core catalog (spec §9 supplement): concrete types most
// signatures need without hand-rolling a recognizer.
var (
	Boolean      = catalog.Boolean
	Number       = catalog.Number
	Integer      = catalog.Integer
	FiniteNumber = catalog.FiniteNumber
	String       = catalog.String
	Array        = catalog.Array
	Nullable     = catalog.Nullable
	Pair         = catalog.Pair
	Object       = catalog.Object
)

// DefaultEnv is the environment Create uses when Options.Env is nil.
var DefaultEnv = catalog.Env
