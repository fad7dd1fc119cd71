package defcheck

import "github.com/escalier-lang/defcheck/internal/value"

// Value is any value the engine can check: bool, float64, string, nil,
// []Value, Obj, Opaque, or a caller-defined Record/Callable.
type Value = value.Value

// Record is the structural access surface RecordType needs.
type Record = value.Record

// Obj is a ready-made Record backed by a map.
type Obj = value.Obj

// Callable is the structural shape Function-typed values must satisfy.
type Callable = value.Callable

// Opaque tags a foreign value with a symbolic name so a custom
// recognizer can dispatch on Tag instead of a Go type switch.
type Opaque = value.Opaque

// Equal and ToString expose the value algebra's equality law and
// diagnostic rendering (spec §6) for callers assembling their own types.
var (
	Equal    = value.Equal
	ToString = value.ToString
)
