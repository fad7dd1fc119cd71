package typesys

import (
	"fmt"
	"sort"
	"strings"

	"github.com/escalier-lang/defcheck/internal/value"
)

func alwaysTrue(value.Value) bool  { return true }
func alwaysFalse(value.Value) bool { return false }

// NullaryType is a leaf type factory: a name, a recognizer, no children.
func NullaryType(name string, recognize func(value.Value) bool) *Type {
	return &Type{
		Variant:   VariantNullary,
		Name:      name,
		recognize: recognize,
		format: func(outer Styler, inner func(string) string) string {
			return outer(name)
		},
	}
}

// UnaryFactory closes over a Unary type constructor's name, recognizer and
// extractor; applying it to a sub-type produces the concrete Type.
type UnaryFactory func(sub *Type) *Type

// UnaryType builds a Unary type factory (spec §4.2): Array, Nullable,
// and similar single-parameter containers.
func UnaryType(name string, recognize func(value.Value) bool, extract Extractor) UnaryFactory {
	return func(sub *Type) *Type {
		return &Type{
			Variant:   VariantUnary,
			Name:      name,
			Keys:      []string{"$1"},
			Children:  map[string]Child{"$1": {Extractor: extract, SubType: sub}},
			recognize: recognize,
			format: func(outer Styler, inner func(string) string) string {
				return outer(name+" ") + inner("$1")
			},
		}
	}
}

// BinaryFactory closes over a Binary type constructor's name, recognizer
// and extractors; applying it to two sub-types produces the concrete Type.
type BinaryFactory func(a, b *Type) *Type

// BinaryType builds a Binary type factory (spec §4.2): Pair, Either, and
// similar two-parameter containers.
func BinaryType(name string, recognize func(value.Value) bool, extract1, extract2 Extractor) BinaryFactory {
	return func(a, b *Type) *Type {
		return &Type{
			Variant: VariantBinary,
			Name:    name,
			Keys:    []string{"$1", "$2"},
			Children: map[string]Child{
				"$1": {Extractor: extract1, SubType: a},
				"$2": {Extractor: extract2, SubType: b},
			},
			recognize: recognize,
			format: func(outer Styler, inner func(string) string) string {
				return outer(name+" ") + inner("$1") + outer(" ") + inner("$2")
			},
		}
	}
}

// MalformedTypeError reports a RecordType field mapped to something
// other than a *Type (spec §7 error 6).
type MalformedTypeError struct {
	Field string
	Value any
}

func (e *MalformedTypeError) Error() string {
	return fmt.Sprintf("RecordType field %q is not a Type: %#v", e.Field, e.Value)
}

// RecordType builds a Record type (spec §4.2): membership requires every
// declared field key to be present (extra keys allowed); display sorts
// fields by key. fields maps field name to a *Type; anything else rejects
// construction with MalformedTypeError, honoring the spec's "dynamically
// checked at construction time" requirement even though Go itself is
// statically typed (authors may assemble fields from reflection-driven
// schemas, where this isn't otherwise caught until here).
func RecordType(fields map[string]any) (*Type, error) {
	keys := make([]string, 0, len(fields))
	children := make(map[string]Child, len(fields))
	for k, v := range fields {
		sub, ok := v.(*Type)
		if !ok {
			return nil, &MalformedTypeError{Field: k, Value: v}
		}
		keys = append(keys, k)
		fieldName := k
		children[k] = Child{
			Extractor: func(x value.Value) []value.Value {
				rec, ok := x.(value.Record)
				if !ok {
					return nil
				}
				if fv, present := rec.Get(fieldName); present {
					return []value.Value{fv}
				}
				return nil
			},
			SubType: sub,
		}
	}
	sort.Strings(keys)

	t := &Type{
		Variant:  VariantRecord,
		Keys:     keys,
		Children: children,
	}
	t.recognize = func(x value.Value) bool {
		if x == nil {
			return false
		}
		rec, ok := x.(value.Record)
		if !ok {
			return false
		}
		for _, k := range keys {
			if _, present := rec.Get(k); !present {
				return false
			}
		}
		return true
	}
	t.format = func(outer Styler, inner func(string) string) string {
		out := outer("{")
		for i, k := range keys {
			if i > 0 {
				out += outer(", ")
			}
			out += outer(k+": ") + inner(k)
		}
		return out + outer("}")
	}
	return t, nil
}

// EnumType builds an Enum type: membership is deep equality against an
// explicit member list.
func EnumType(members []value.Value) *Type {
	t := &Type{Variant: VariantEnum, members: members}
	t.recognize = func(v value.Value) bool {
		for _, m := range members {
			if value.Equal(v, m) {
				return true
			}
		}
		return false
	}
	t.format = func(outer Styler, inner func(string) string) string {
		parts := make([]string, len(members))
		for i, m := range members {
			parts[i] = value.ToString(m)
		}
		return outer(strings.Join(parts, " | "))
	}
	return t
}

// Function builds a Function type (spec §4.2): the last element of types
// is the return type. Display parenthesises multi-parameter forms as
// "(A, B, ...) -> R" and single-parameter forms as "A -> R".
func Function(types []*Type) *Type {
	if len(types) < 1 {
		panic(&RangeError{Message: "Function requires at least a return type"})
	}
	n := len(types) - 1
	keys := make([]string, n+1)
	children := make(map[string]Child, n+1)
	for i := 0; i < n; i++ {
		k := fmt.Sprintf("$%d", i+1)
		keys[i] = k
		children[k] = Child{Extractor: NoExtract, SubType: types[i]}
	}
	keys[n] = "$return"
	children["$return"] = Child{Extractor: NoExtract, SubType: types[n]}

	t := &Type{Variant: VariantFunction, Keys: keys, Children: children}
	t.recognize = func(v value.Value) bool {
		_, ok := v.(value.Callable)
		return ok
	}
	t.format = func(outer Styler, inner func(string) string) string {
		var paramsRendered string
		if n != 1 {
			paramsRendered = outer("(")
		}
		for i := 0; i < n; i++ {
			if i > 0 {
				paramsRendered += outer(", ")
			}
			paramsRendered += inner(keys[i])
		}
		if n != 1 {
			paramsRendered += outer(")")
		}
		return paramsRendered + outer(" -> ") + inner("$return")
	}
	return t
}

// TypeVariable builds a display-only, always-recognizing type variable
// (spec §4.2): `a`.
func TypeVariable(name string) *Type {
	return &Type{
		Variant:   VariantVariable,
		Name:      name,
		recognize: alwaysTrue,
		format: func(outer Styler, inner func(string) string) string {
			return outer(name)
		},
	}
}

// UnaryTypeVariable builds a factory for a parameterised type variable
// with one display-only child (spec §4.2): `f a`.
func UnaryTypeVariable(name string) UnaryFactory {
	return func(sub *Type) *Type {
		return &Type{
			Variant:   VariantVariable,
			Name:      name,
			Keys:      []string{"$1"},
			Children:  map[string]Child{"$1": {Extractor: NoExtract, SubType: sub}},
			recognize: alwaysTrue,
			format: func(outer Styler, inner func(string) string) string {
				return outer(name+" ") + inner("$1")
			},
		}
	}
}

// BinaryTypeVariable builds a factory for a parameterised type variable
// with two display-only children (spec §4.2): `p a b`.
func BinaryTypeVariable(name string) BinaryFactory {
	return func(a, b *Type) *Type {
		return &Type{
			Variant: VariantVariable,
			Name:    name,
			Keys:    []string{"$1", "$2"},
			Children: map[string]Child{
				"$1": {Extractor: NoExtract, SubType: a},
				"$2": {Extractor: NoExtract, SubType: b},
			},
			recognize: alwaysTrue,
			format: func(outer Styler, inner func(string) string) string {
				return outer(name+" ") + inner("$1") + outer(" ") + inner("$2")
			},
		}
	}
}

// UnknownType is the singleton used by candidate inference when nothing
// has been observed yet; it recognizes everything and prints as "???".
var UnknownType = &Type{
	Variant:   VariantUnknown,
	Name:      "???",
	recognize: alwaysTrue,
	format: func(outer Styler, inner func(string) string) string {
		return outer("???")
	},
}

// InconsistentType is the singleton "no consistent type" sentinel used
// only inside candidate inference's loose mode; it recognizes nothing and
// also prints as "???" (spec §3).
var InconsistentType = &Type{
	Variant:   VariantInconsistent,
	Name:      "???",
	recognize: alwaysFalse,
	format: func(outer Styler, inner func(string) string) string {
		return outer("???")
	},
}
