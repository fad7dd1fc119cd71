// Package value models the dynamic value universe the engine type-checks
// against. Go is statically typed, so "any dynamically typed value" is
// represented the idiomatic Go way: the empty interface, generalized with
// two small structural interfaces (Record, Callable) for the shapes the
// type algebra needs to recognize and extract from, plus Opaque for
// foreign host values that don't map onto a Go builtin.
package value

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Value is any value flowing through the engine: bool, float64, string,
// nil, []Value, Obj, Opaque, or a user-defined Record/Callable.
type Value = any

// Record is the structural access surface RecordType needs: named field
// lookup, non-null membership. Obj is the built-in implementation; callers
// may implement Record over their own structs to avoid the map.
type Record interface {
	Get(key string) (Value, bool)
}

// Obj is a ready-made Record backed by a map.
type Obj map[string]Value

// Get implements Record.
func (o Obj) Get(key string) (Value, bool) {
	v, ok := o[key]
	return v, ok
}

// Callable is the structural shape Function-typed values must satisfy.
type Callable interface {
	Arity() int
	Call(args []Value) (Value, error)
}

// Opaque tags a value with a symbolic type name so recognizers written
// against foreign host values (a user-supplied Functor instance, say) can
// dispatch on Tag instead of a Go type switch.
type Opaque struct {
	Tag   string
	Inner Value
}

func (o Opaque) String() string {
	return fmt.Sprintf("%s(%s)", o.Tag, ToString(o.Inner))
}

// Equal is the deep-equality law the external value algebra requires
// (spec §6). EnumType membership reduces to this.
func Equal(a, b Value) bool {
	return cmp.Equal(a, b)
}

// ToString renders a value for diagnostic output. Containers recurse;
// everything else defers to fmt's default verb.
func ToString(v Value) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	case []Value:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = ToString(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case Obj:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + ToString(v[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case Opaque:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Map applies f to every element of a container value, per the external
// value algebra's map law. Non-container values pass through unchanged.
func Map(v Value, f func(Value) Value) Value {
	switch v := v.(type) {
	case []Value:
		out := make([]Value, len(v))
		for i, e := range v {
			out[i] = f(e)
		}
		return out
	case Obj:
		out := make(Obj, len(v))
		for k, e := range v {
			out[k] = f(e)
		}
		return out
	default:
		return v
	}
}

// Concat implements the algebra's chain/concat law for sequences.
func Concat(seqs ...[]Value) []Value {
	total := 0
	for _, s := range seqs {
		total += len(s)
	}
	out := make([]Value, 0, total)
	for _, s := range seqs {
		out = append(out, s...)
	}
	return out
}

// Reduce folds a sequence left to right, per the algebra's reduce law.
func Reduce[T any](seq []Value, init T, f func(T, Value) T) T {
	acc := init
	for _, e := range seq {
		acc = f(acc, e)
	}
	return acc
}

// Identity returns an identity key for container-like values (maps,
// slices, pointers) so candidate inference can detect cycles in values.
// Scalars have no identity and report ok=false.
func Identity(v Value) (uintptr, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Ptr:
		if rv.IsNil() {
			return 0, false
		}
		return rv.Pointer(), true
	default:
		return 0, false
	}
}
