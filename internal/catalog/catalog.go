// Package catalog is the non-core, pre-built type table supplementing
// the core type algebra (spec §9 supplement): the handful of concrete
// types almost every signature in a realistic environment needs, grounded
// on the PrimType/compound-type constructors in escalier's
// internal/type_system/types.go, reshaped from compile-time primitive
// types into runtime recognizers.
package catalog

import (
	"github.com/escalier-lang/defcheck/internal/typesys"
	"github.com/escalier-lang/defcheck/internal/value"
)

// Boolean recognizes Go bool values.
var Boolean = typesys.NullaryType("defcheck/Boolean", func(v value.Value) bool {
	_, ok := v.(bool)
	return ok
})

// Number recognizes any float64.
var Number = typesys.NullaryType("defcheck/Number", func(v value.Value) bool {
	_, ok := v.(float64)
	return ok
})

// Integer recognizes float64 values with no fractional part.
var Integer = typesys.NullaryType("defcheck/Integer", func(v value.Value) bool {
	n, ok := v.(float64)
	return ok && n == float64(int64(n))
})

// FiniteNumber recognizes float64 values excluding NaN and +/-Infinity.
var FiniteNumber = typesys.NullaryType("defcheck/FiniteNumber", func(v value.Value) bool {
	n, ok := v.(float64)
	return ok && !isNaN(n) && !isInf(n)
})

func isNaN(f float64) bool { return f != f }
func isInf(f float64) bool { return f > maxFinite || f < -maxFinite }

const maxFinite = 1.7976931348623157e+308

// String recognizes Go string values.
var String = typesys.NullaryType("defcheck/String", func(v value.Value) bool {
	_, ok := v.(string)
	return ok
})

var arrayFactory = typesys.UnaryType("defcheck/Array",
	func(v value.Value) bool {
		_, ok := v.([]value.Value)
		return ok
	},
	func(v value.Value) []value.Value {
		s, ok := v.([]value.Value)
		if !ok {
			return nil
		}
		return s
	},
)

// Array builds "Array a": a Go []value.Value all of whose elements
// belong to a.
func Array(a *typesys.Type) *typesys.Type { return arrayFactory(a) }

var nullableFactory = typesys.UnaryType("defcheck/Nullable",
	func(value.Value) bool { return true },
	func(v value.Value) []value.Value {
		if v == nil {
			return nil
		}
		return []value.Value{v}
	},
)

// Nullable builds "Nullable a": null, or a value of a. Nullable types are
// excluded from candidate inference (spec §4.3) so they never dominate
// an ambiguous env lookup; typesys.Type.Nullable is set accordingly.
func Nullable(a *typesys.Type) *typesys.Type {
	t := nullableFactory(a)
	t.Nullable = true
	return t
}

var pairFactory = typesys.BinaryType("defcheck/Pair",
	func(v value.Value) bool {
		_, ok := v.([2]value.Value)
		return ok
	},
	func(v value.Value) []value.Value {
		p, ok := v.([2]value.Value)
		if !ok {
			return nil
		}
		return []value.Value{p[0]}
	},
	func(v value.Value) []value.Value {
		p, ok := v.([2]value.Value)
		if !ok {
			return nil
		}
		return []value.Value{p[1]}
	},
)

// Pair builds "Pair a b": a Go [2]value.Value two-tuple.
func Pair(a, b *typesys.Type) *typesys.Type { return pairFactory(a, b) }

var objectFactory = typesys.UnaryType("defcheck/Object",
	func(v value.Value) bool {
		_, ok := v.(value.Obj)
		return ok
	},
	func(v value.Value) []value.Value {
		o, ok := v.(value.Obj)
		if !ok {
			return nil
		}
		out := make([]value.Value, 0, len(o))
		for _, fv := range o {
			out = append(out, fv)
		}
		return out
	},
)

// Object builds "Object a": a value.Obj whose every field belongs to a.
func Object(a *typesys.Type) *typesys.Type { return objectFactory(a) }

// Env is the default environment a newly created engine is seeded with
// absent caller-supplied types (spec §9 supplement): every nullary here
// plus Array/Pair/Object/Nullable instantiated over Unknown so candidate
// inference can specialize them.
var Env = []*typesys.Type{
	Boolean,
	Number,
	Integer,
	FiniteNumber,
	String,
	Array(typesys.UnknownType),
	Nullable(typesys.UnknownType),
	Pair(typesys.UnknownType, typesys.UnknownType),
	Object(typesys.UnknownType),
}
