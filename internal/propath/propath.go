// Package propath implements PropPath: an ordered path of slot keys into a
// type tree, used both by the renderer (to locate what to underline) and
// by the solver (to key the evidence a type variable has accumulated).
package propath

import (
	"strconv"
	"strings"
)

// Key is one path component: either the curried-argument index (the first
// component of every path the solver builds) or a structural slot name
// ("$1", "$2", a record field).
type Key struct {
	str   string
	index int
	isInt bool
}

// Int makes an index-valued key (curried argument position).
func Int(i int) Key { return Key{index: i, isInt: true} }

// Str makes a slot-name key ("$1", "$2", a record field name).
func Str(s string) Key { return Key{str: s} }

func (k Key) String() string {
	if k.isInt {
		return strconv.Itoa(k.index)
	}
	return k.str
}

// Path is an ordered sequence of Keys.
type Path []Key

// Append returns a new Path with ks appended; Path is never mutated in
// place so two branches of a recursive walk never alias each other's tail.
func (p Path) Append(ks ...Key) Path {
	out := make(Path, len(p)+len(ks))
	copy(out, p)
	copy(out[len(p):], ks)
	return out
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, k := range p {
		parts[i] = k.String()
	}
	return strings.Join(parts, ".")
}

// Compare orders two paths structurally: the spec notes that sorting
// serialized path keys lexicographically is "not correct but works for
// indexes <10" (an acknowledged bug in the system this was distilled
// from) — positions 10 and above sort before 2. Compare fixes this by
// comparing integer components numerically and only falling back to
// lexicographic comparison for trailing string components.
func Compare(a, b Path) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ka, kb := a[i], b[i]
		switch {
		case ka.isInt && kb.isInt:
			if ka.index != kb.index {
				if ka.index < kb.index {
					return -1
				}
				return 1
			}
		case ka.isInt != kb.isInt:
			// An int key only ever appears as the leading component
			// (the argument index); a mismatch here means the paths
			// diverged in shape upstream. Treat int as the lesser kind
			// so ordering stays total and deterministic.
			if ka.isInt {
				return -1
			}
			return 1
		default:
			if ka.str != kb.str {
				if ka.str < kb.str {
					return -1
				}
				return 1
			}
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Less reports whether a sorts before b (see Compare).
func Less(a, b Path) bool { return Compare(a, b) < 0 }
