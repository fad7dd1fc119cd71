// Package typesys is the type representation and constructor layer (spec
// §3, §4.1, §4.2): a uniform record describing any type, dispatched on a
// variant tag, with an ordered set of child slots each carrying an
// extractor and a sub-type. Grounded on escalier's internal/type_system
// (internal/type_system/types.go): a tagged-variant Type with a String()
// method and a structural Accept/traversal; generalized here from a
// compile-time type tree to a runtime membership predicate tree.
package typesys

import (
	"github.com/escalier-lang/defcheck/internal/propath"
	"github.com/escalier-lang/defcheck/internal/value"
)

// Variant is the type's tag (spec §3).
type Variant int

const (
	VariantUnknown Variant = iota
	VariantInconsistent
	VariantVariable
	VariantNullary
	VariantUnary
	VariantBinary
	VariantEnum
	VariantRecord
	VariantFunction
)

func (v Variant) String() string {
	switch v {
	case VariantUnknown:
		return "Unknown"
	case VariantInconsistent:
		return "Inconsistent"
	case VariantVariable:
		return "Variable"
	case VariantNullary:
		return "Nullary"
	case VariantUnary:
		return "Unary"
	case VariantBinary:
		return "Binary"
	case VariantEnum:
		return "Enum"
	case VariantRecord:
		return "Record"
	case VariantFunction:
		return "Function"
	default:
		return "???"
	}
}

// Extractor returns the child values a container value holds at a
// declared slot. Function slots use NoExtract: functions are opaque to
// structural recursion (spec §3).
type Extractor func(value.Value) []value.Value

// NoExtract is the extractor used by slots whose inner shape is never
// inspected (type-variable display children, Function parameter/return
// slots).
func NoExtract(value.Value) []value.Value { return nil }

// Child is one declared slot of a Type: how to pull the slot's values out
// of a container, and the sub-type those values must satisfy.
type Child struct {
	Extractor Extractor
	SubType   *Type
}

// Styler renders literal syntax belonging to a type (punctuation, keyword
// names) for diagnostics; the identity styler is used for plain String().
type Styler func(text string) string

// FormatFunc renders a type as text. outer styles this type's own
// literal syntax; inner(k) returns the already-styled text of child slot
// k (computed by recursively calling that child's sub-type's format).
type FormatFunc func(outer Styler, inner func(key string) string) string

// Type is the central entity (spec §3): a variant tag, a display name, an
// ordered list of child slot keys, the children themselves, a shallow
// membership predicate, and a format function.
type Type struct {
	Variant Variant
	Name    string // "namespace/LocalName"; may be empty for structural types
	Keys    []string
	Children map[string]Child

	// Nullable marks a type as belonging to the "Nullable family" (spec
	// §4.3): such types are skipped during candidate inference so they
	// never dominate it.
	Nullable bool

	recognize func(value.Value) bool
	members   []value.Value // Enum only
	format    FormatFunc
}

// Recognize is the shallow membership predicate (spec §3).
func (t *Type) Recognize(v value.Value) bool {
	if t.recognize == nil {
		return false
	}
	return t.recognize(v)
}

// ValidationError is returned by Validate when v (or one of its
// structural children) fails to belong to the type; Path locates the
// offending sub-type within the tree.
type ValidationError struct {
	Value value.Value
	Path  propath.Path
}

// Validate is the recursive membership check (spec §3): recognize, then
// every extracted child validated against its declared sub-type,
// returning the first failure and its path.
func (t *Type) Validate(v value.Value) *ValidationError {
	return t.validate(v, nil)
}

func (t *Type) validate(v value.Value, path propath.Path) *ValidationError {
	if !t.Recognize(v) {
		return &ValidationError{Value: v, Path: path}
	}
	for _, k := range t.Keys {
		child := t.Children[k]
		for _, cv := range child.Extractor(v) {
			if err := child.SubType.validate(cv, path.Append(propath.Str(k))); err != nil {
				return err
			}
		}
	}
	return nil
}

// Format renders the type via its format function.
func (t *Type) Format(outer Styler, inner func(key string) string) string {
	return t.format(outer, inner)
}

func identity(s string) string { return s }

// IsComposite reports whether t's own display syntax needs wrapping
// parentheses when it appears as a child of another type's format (spec
// §4.6: "other composite types have outermost parentheses stripped when
// they appear at the top level of a parameter slot", implying they carry
// parentheses everywhere else). Function and Record are self-delimited
// (the arrow, the braces) and never need the extra wrapping; Unary,
// Binary, Enum and parameterised type variables do.
func (t *Type) IsComposite() bool {
	switch t.Variant {
	case VariantUnary, VariantBinary, VariantEnum:
		return true
	case VariantVariable:
		return len(t.Keys) > 0
	default:
		return false
	}
}

// String renders the type with identity stylers: plain text, no
// highlighting.
func (t *Type) String() string {
	return t.Format(identity, func(k string) string {
		sub := t.Children[k].SubType
		text := sub.String()
		if sub.IsComposite() {
			return "(" + text + ")"
		}
		return text
	})
}

// WithChild returns a shallow copy of t with slot key's sub-type replaced
// by sub, keeping the same recognizer, extractor and name. This is the
// "UnaryType.from(T)" / "BinaryType.from(T)" re-lifting operation spec
// §4.2–§4.4 describe: specializing a parameterised type's Unknown child
// once candidate inference or the solver has narrowed it to something
// concrete.
func (t *Type) WithChild(key string, sub *Type) *Type {
	nt := *t
	children := make(map[string]Child, len(t.Children))
	for k, c := range t.Children {
		children[k] = c
	}
	c := children[key]
	c.SubType = sub
	children[key] = c
	nt.Children = children
	return &nt
}

// Members exposes an Enum type's member list (used by the renderer and by
// Equals); empty for every other variant.
func (t *Type) Members() []value.Value { return t.members }
