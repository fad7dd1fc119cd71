// Package solver implements the constraint solver (spec §4.4): walking an
// expected type against observed values while threading a TypeVarMap that
// narrows each type variable's surviving candidate concrete types.
// Grounded on escalier's internal/checker/unify.go / unify_mut.go (a
// value-semantic substitution threaded through a recursive type walk) and
// its error.go (one struct per failure shape), reshaped into the spec's
// required deferred-thunk error construction.
package solver

import (
	"github.com/escalier-lang/defcheck/internal/propath"
	"github.com/escalier-lang/defcheck/internal/typesys"
	"github.com/escalier-lang/defcheck/internal/value"
	"github.com/moznion/go-optional"
)

// Occurrence is one accumulated observation of a type variable: the path
// it was observed at and the raw values seen there.
type Occurrence struct {
	Path   propath.Path
	Values []value.Value
}

// VarEntry is the solver's per-variable working memory (spec §3's
// TypeVarMap entry): the candidate concrete types still consistent with
// every value observed so far, and the evidence (by path) that narrowed
// them.
type VarEntry struct {
	Candidates   []*typesys.Type
	ValuesByPath map[string]*Occurrence
}

func (e *VarEntry) clone() *VarEntry {
	occ := make(map[string]*Occurrence, len(e.ValuesByPath))
	for k, v := range e.ValuesByPath {
		occ[k] = v
	}
	return &VarEntry{
		Candidates:   append([]*typesys.Type(nil), e.Candidates...),
		ValuesByPath: occ,
	}
}

// TypeVarMap is immutable/value-semantic (spec §3): every solver step
// produces a fresh map via With, never mutating an existing one in
// place, so two call branches holding the same map never observe each
// other's refinements.
type TypeVarMap struct {
	entries map[string]*VarEntry
}

// NewTypeVarMap returns an empty map.
func NewTypeVarMap() *TypeVarMap {
	return &TypeVarMap{entries: map[string]*VarEntry{}}
}

// Lookup returns the named variable's entry, if any evidence has been
// recorded for it yet.
func (m *TypeVarMap) Lookup(name string) optional.Option[*VarEntry] {
	if e, ok := m.entries[name]; ok {
		return optional.Some(e)
	}
	return optional.None[*VarEntry]()
}

// With returns a new map with name's entry replaced by entry; m itself is
// untouched.
func (m *TypeVarMap) With(name string, entry *VarEntry) *TypeVarMap {
	next := make(map[string]*VarEntry, len(m.entries)+1)
	for k, v := range m.entries {
		next[k] = v
	}
	next[name] = entry
	return &TypeVarMap{entries: next}
}

// Entries exposes the map's contents; callers must treat the result as
// read-only.
func (m *TypeVarMap) Entries() map[string]*VarEntry {
	return m.entries
}
