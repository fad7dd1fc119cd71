package solver_test

import (
	"testing"

	"github.com/escalier-lang/defcheck/internal/solver"
	"github.com/escalier-lang/defcheck/internal/typeclass"
	"github.com/escalier-lang/defcheck/internal/typesys"
	"github.com/escalier-lang/defcheck/internal/value"
	"github.com/stretchr/testify/assert"
)

func isFloat(v value.Value) bool { _, ok := v.(float64); return ok }
func isString(v value.Value) bool { _, ok := v.(string); return ok }

var numberType = typesys.NullaryType("test/Number", isFloat)
var stringType = typesys.NullaryType("test/String", isString)

var arrayFactory = typesys.UnaryType("test/Array",
	func(v value.Value) bool { _, ok := v.([]value.Value); return ok },
	func(v value.Value) []value.Value {
		s, _ := v.([]value.Value)
		return s
	},
)

var pairFactory = typesys.BinaryType("test/Pair",
	func(v value.Value) bool { _, ok := v.([2]value.Value); return ok },
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

func testCtx() *solver.Context {
	return &solver.Context{Env: []*typesys.Type{numberType, stringType}}
}

func TestSolveLeafSucceeds(t *testing.T) {
	ctx := testCtx()
	_, deferred := solver.Solve(ctx, numberType, []value.Value{1.0}, 0, nil, solver.NewTypeVarMap())
	assert.Nil(t, deferred)
}

func TestSolveLeafInvalidValue(t *testing.T) {
	ctx := testCtx()
	_, deferred := solver.Solve(ctx, numberType, []value.Value{"x"}, 0, nil, solver.NewTypeVarMap())
	assert.NotNil(t, deferred)
	f := deferred()
	assert.Equal(t, solver.InvalidValue, f.Kind)
	assert.Equal(t, "x", f.Value)
	assert.Equal(t, "0", f.Path.String())
}

func TestSolveVariableTypeClassViolation(t *testing.T) {
	positive := typeclass.Predicate{ClassName: "Positive", Pred: func(v value.Value) bool {
		n, ok := v.(float64)
		return ok && n > 0
	}}
	ctx := &solver.Context{
		Env:         []*typesys.Type{numberType},
		Constraints: map[string][]typeclass.TypeClass{"a": {positive}},
	}
	a := typesys.TypeVariable("a")
	_, deferred := solver.Solve(ctx, a, []value.Value{-1.0}, 0, nil, solver.NewTypeVarMap())
	assert.NotNil(t, deferred)
	f := deferred()
	assert.Equal(t, solver.TypeClassViolation, f.Kind)
	assert.Equal(t, "Positive", f.Class.Name())
}

func TestSolveVariableNarrowsAcrossObservations(t *testing.T) {
	ctx := testCtx()
	a := typesys.TypeVariable("a")
	m, deferred := solver.Solve(ctx, a, []value.Value{1.0}, 0, nil, solver.NewTypeVarMap())
	assert.Nil(t, deferred)
	m, deferred = solver.Solve(ctx, a, []value.Value{2.0}, 1, nil, m)
	assert.Nil(t, deferred)
	entry, ok := m.Lookup("a").Get()
	assert.True(t, ok)
	assert.Len(t, entry.Candidates, 1)
}

func TestSolveVariableViolationOnInconsistentObservations(t *testing.T) {
	ctx := testCtx()
	a := typesys.TypeVariable("a")
	m, deferred := solver.Solve(ctx, a, []value.Value{1.0}, 0, nil, solver.NewTypeVarMap())
	assert.Nil(t, deferred)
	_, deferred = solver.Solve(ctx, a, []value.Value{"x"}, 1, nil, m)
	assert.NotNil(t, deferred)
	f := deferred()
	assert.Equal(t, solver.VariableViolation, f.Kind)
	assert.Len(t, f.Occurrences, 2)
}

// TestTypeVarMapPriorOccurrenceUnmutatedByLaterBranch guards the
// TypeVarMap value-semantics invariant directly: extending the same path's
// evidence from a later branch must never mutate the Occurrence object
// the prior, still-live TypeVarMap holds for that same path.
func TestTypeVarMapPriorOccurrenceUnmutatedByLaterBranch(t *testing.T) {
	ctx := testCtx()
	a := typesys.TypeVariable("a")
	base, deferred := solver.Solve(ctx, a, []value.Value{1.0}, 0, nil, solver.NewTypeVarMap())
	assert.Nil(t, deferred)
	baseEntry, _ := base.Lookup("a").Get()
	baseOccurrence := baseEntry.ValuesByPath["0"]
	baseValuesBefore := append([]value.Value(nil), baseOccurrence.Values...)

	branch, deferred := solver.Solve(ctx, a, []value.Value{3.0}, 0, nil, base)
	assert.Nil(t, deferred)
	branchEntry, _ := branch.Lookup("a").Get()
	assert.Len(t, branchEntry.ValuesByPath["0"].Values, 2, "branch sees both observations at the same path")

	assert.Equal(t, baseValuesBefore, baseOccurrence.Values, "base's own Occurrence must be untouched by the branch's extension")
}

// TestSolveUnaryTypeVariableNarrowsOnLastKey pins the §9 open-question
// decision: a Unary type variable's (`f a`) inner-shape check uses the
// candidate's own last-keyed extractor ($1 here, since Unary has only
// one slot).
func TestSolveUnaryTypeVariableNarrowsOnLastKey(t *testing.T) {
	ctx := &solver.Context{Env: []*typesys.Type{arrayFactory(typesys.UnknownType)}}
	f := typesys.UnaryTypeVariable("f")(numberType)

	_, deferred := solver.Solve(ctx, f, []value.Value{[]value.Value{1.0, 2.0}}, 0, nil, solver.NewTypeVarMap())
	assert.Nil(t, deferred, "Array's elements are Numbers, matching f a's declared inner type")

	_, deferred = solver.Solve(ctx, f, []value.Value{[]value.Value{"x"}}, 0, nil, solver.NewTypeVarMap())
	assert.NotNil(t, deferred, "Array's elements are Strings, violating f a's declared inner type")
}

// TestSolveBinaryTypeVariableNarrowsOnLastKey does the same for a Binary
// type variable (`p a b`), checking against its second ($2) slot.
func TestSolveBinaryTypeVariableNarrowsOnLastKey(t *testing.T) {
	ctx := &solver.Context{Env: []*typesys.Type{pairFactory(typesys.UnknownType, typesys.UnknownType)}}
	p := typesys.BinaryTypeVariable("p")(typesys.UnknownType, numberType)

	ok := [2]value.Value{"anything", 1.0}
	_, deferred := solver.Solve(ctx, p, []value.Value{ok}, 0, nil, solver.NewTypeVarMap())
	assert.Nil(t, deferred, "second slot is a Number, matching p a b's declared inner type")

	bad := [2]value.Value{"anything", "not a number"}
	_, deferred = solver.Solve(ctx, p, []value.Value{bad}, 0, nil, solver.NewTypeVarMap())
	assert.NotNil(t, deferred, "second slot violates p a b's declared inner type")
}

func TestPublicTestHelper(t *testing.T) {
	ctx := testCtx()
	assert.True(t, solver.Test(ctx, numberType, 1.0))
	assert.False(t, solver.Test(ctx, numberType, "x"))
}
