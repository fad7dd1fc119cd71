// Package infer implements candidate-type inference (spec §4.3): the
// dynamic reverse lookup from a sequence of values to the environment
// types of which they are all members, descending into parameterised
// types and narrowing as more values are observed. Grounded on escalier's
// internal/checker/substitute.go (a recursive type-tree walk threading a
// visited set) generalized from walking a type tree to walking a value
// against a growing candidate set.
package infer

import (
	"github.com/escalier-lang/defcheck/internal/typesys"
	"github.com/escalier-lang/defcheck/internal/value"
)

// Mode selects strict or loose inference (spec §4.3, glossary).
type Mode int

const (
	// Strict discards values with no consistent type, returning an
	// empty candidate list.
	Strict Mode = iota
	// Loose returns []*typesys.Type{typesys.InconsistentType} instead of
	// an empty list, for diagnostic rendering.
	Loose
)

// Candidates returns the env members every value in values is an
// instance of, specializing parameterised types' Unknown children as
// evidence narrows them. An empty values list returns
// []*typesys.Type{typesys.UnknownType}. Otherwise Unknown and
// Inconsistent are filtered from the surviving candidates, and the only
// sentinel returned is Loose mode's Inconsistent when none survive.
func Candidates(env []*typesys.Type, values []value.Value, mode Mode) []*typesys.Type {
	seen := map[uintptr]struct{}{}
	return candidates(env, env, values, mode, seen)
}

func candidates(env, working []*typesys.Type, values []value.Value, mode Mode, seen map[uintptr]struct{}) []*typesys.Type {
	for _, v := range values {
		var next []*typesys.Type
		for _, t := range working {
			next = append(next, specialize(env, t, v, seen)...)
		}
		working = next
		if len(working) == 0 {
			break
		}
	}
	return finalize(working, mode, len(values))
}

func specialize(env []*typesys.Type, t *typesys.Type, v value.Value, seen map[uintptr]struct{}) []*typesys.Type {
	if t.Nullable {
		return nil
	}
	if !t.Recognize(v) {
		return nil
	}
	switch t.Variant {
	case typesys.VariantUnary:
		key := t.Keys[0]
		if t.Children[key].SubType != typesys.UnknownType {
			return []*typesys.Type{t}
		}
		if id, ok := value.Identity(v); ok {
			if _, dup := seen[id]; dup {
				return nil
			}
			seen[id] = struct{}{}
		}
		inner := t.Children[key].Extractor(v)
		innerCandidates := candidates(env, env, inner, Strict, seen)
		out := make([]*typesys.Type, 0, len(innerCandidates))
		for _, ic := range innerCandidates {
			out = append(out, t.WithChild(key, ic))
		}
		return out
	case typesys.VariantBinary:
		key1, key2 := t.Keys[0], t.Keys[1]
		inner1 := t.Children[key1].Extractor(v)
		inner2 := t.Children[key2].Extractor(v)
		c1 := candidates(env, env, inner1, Strict, seen)
		c2 := candidates(env, env, inner2, Strict, seen)
		out := make([]*typesys.Type, 0, len(c1)*len(c2))
		for _, a := range c1 {
			for _, b := range c2 {
				out = append(out, t.WithChild(key1, a).WithChild(key2, b))
			}
		}
		return out
	default:
		return []*typesys.Type{t}
	}
}

func finalize(working []*typesys.Type, mode Mode, observed int) []*typesys.Type {
	if observed == 0 {
		return []*typesys.Type{typesys.UnknownType}
	}
	out := make([]*typesys.Type, 0, len(working))
	for _, t := range working {
		if t == typesys.UnknownType || t == typesys.InconsistentType {
			continue
		}
		out = append(out, t)
	}
	if len(out) == 0 && mode == Loose {
		return []*typesys.Type{typesys.InconsistentType}
	}
	return out
}
