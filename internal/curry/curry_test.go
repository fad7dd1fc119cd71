package curry_test

import (
	"testing"

	"github.com/escalier-lang/defcheck/internal/curry"
	"github.com/escalier-lang/defcheck/internal/render"
	"github.com/escalier-lang/defcheck/internal/signature"
	"github.com/escalier-lang/defcheck/internal/solver"
	"github.com/escalier-lang/defcheck/internal/typeclass"
	"github.com/escalier-lang/defcheck/internal/typesys"
	"github.com/escalier-lang/defcheck/internal/value"
	"github.com/stretchr/testify/assert"
)

var numberType = typesys.NullaryType("test/Number", func(v value.Value) bool {
	_, ok := v.(float64)
	return ok
})

func addInfo() *signature.TypeInfo {
	return &signature.TypeInfo{Name: "add", Types: []*typesys.Type{numberType, numberType, numberType}}
}

func ctx() *solver.Context {
	return &solver.Context{Env: []*typesys.Type{numberType}}
}

func addImpl(args []value.Value) (value.Value, error) {
	return args[0].(float64) + args[1].(float64), nil
}

func TestCallFullyAppliedReturnsResult(t *testing.T) {
	c := curry.New(ctx(), addInfo(), addImpl, true, render.Plain)
	result, err := c.Call([]value.Value{2.0, 3.0})
	assert.NoError(t, err)
	assert.Equal(t, 5.0, result)
}

func TestCallOneArgumentAtATimeCurries(t *testing.T) {
	c := curry.New(ctx(), addInfo(), addImpl, true, render.Plain)
	partial, err := c.Call([]value.Value{2.0})
	assert.NoError(t, err)
	next, ok := partial.(*curry.Callable)
	assert.True(t, ok)
	assert.Equal(t, 1, next.Arity())

	result, err := next.Call([]value.Value{3.0})
	assert.NoError(t, err)
	assert.Equal(t, 5.0, result)
}

func TestCallPlaceholderLeavesPositionOpen(t *testing.T) {
	c := curry.New(ctx(), addInfo(), addImpl, true, render.Plain)
	partial, err := c.Call([]value.Value{curry.Placeholder, 3.0})
	assert.NoError(t, err)
	next := partial.(*curry.Callable)
	assert.Equal(t, 1, next.Arity())

	result, err := next.Call([]value.Value{2.0})
	assert.NoError(t, err)
	assert.Equal(t, 5.0, result)
}

func TestCallInvalidValueReturnsDispatchError(t *testing.T) {
	c := curry.New(ctx(), addInfo(), addImpl, true, render.Plain)
	_, err := c.Call([]value.Value{"not a number", 3.0})
	assert.Error(t, err)
	var dispatchErr *curry.DispatchError
	assert.ErrorAs(t, err, &dispatchErr)
	assert.Equal(t, curry.InvalidValue, dispatchErr.Kind)
}

func TestCallWrongArityReturnsDispatchError(t *testing.T) {
	c := curry.New(ctx(), addInfo(), addImpl, true, render.Plain)
	_, err := c.Call([]value.Value{1.0, 2.0, 3.0})
	assert.Error(t, err)
	var dispatchErr *curry.DispatchError
	assert.ErrorAs(t, err, &dispatchErr)
	assert.Equal(t, curry.WrongArity, dispatchErr.Kind)
}

func TestCallTypeClassViolationReturnsDispatchError(t *testing.T) {
	positive := typeclass.Predicate{ClassName: "Positive", Pred: func(v value.Value) bool {
		n, ok := v.(float64)
		return ok && n > 0
	}}
	a := typesys.TypeVariable("a")
	info := &signature.TypeInfo{
		Name:        "positive",
		Types:       []*typesys.Type{a, a},
		Constraints: map[string][]typeclass.TypeClass{"a": {positive}},
	}
	violationCtx := &solver.Context{Env: []*typesys.Type{numberType}, Constraints: info.Constraints}
	c := curry.New(violationCtx, info, func(args []value.Value) (value.Value, error) { return args[0], nil }, true, render.Plain)
	_, err := c.Call([]value.Value{-1.0})
	assert.Error(t, err)
	var dispatchErr *curry.DispatchError
	assert.ErrorAs(t, err, &dispatchErr)
	assert.Equal(t, curry.TypeClassViolation, dispatchErr.Kind)
}

func TestCallVariableViolationReturnsDispatchError(t *testing.T) {
	a := typesys.TypeVariable("a")
	info := &signature.TypeInfo{Name: "same", Types: []*typesys.Type{a, a, a}}
	c := curry.New(ctx(), info, func(args []value.Value) (value.Value, error) { return args[0], nil }, true, render.Plain)
	_, err := c.Call([]value.Value{1.0, "not a number"})
	assert.Error(t, err)
	var dispatchErr *curry.DispatchError
	assert.ErrorAs(t, err, &dispatchErr)
	assert.Equal(t, curry.VariableViolation, dispatchErr.Kind)
}

func TestCallSkipsValidationWhenCheckTypesFalse(t *testing.T) {
	info := addInfo()
	first := func(args []value.Value) (value.Value, error) { return args[0], nil }
	c := curry.New(ctx(), info, first, false, render.Plain)
	// A String in a Number slot would be rejected with checking on; with
	// checking off the value reaches the implementation unchanged.
	result, err := c.Call([]value.Value{"not a number", 3.0})
	assert.NoError(t, err)
	assert.Equal(t, "not a number", result)
}

func TestNewPanicsAboveMaxArity(t *testing.T) {
	types := make([]*typesys.Type, typesys.MaxArity+2)
	for i := range types {
		types[i] = numberType
	}
	info := &signature.TypeInfo{Name: "tooMany", Types: types}
	assert.Panics(t, func() {
		curry.New(ctx(), info, func(args []value.Value) (value.Value, error) { return nil, nil }, true, render.Plain)
	})
}

func TestCallValidatesFunctionArgumentCallback(t *testing.T) {
	a := typesys.TypeVariable("a")
	mapInfo := &signature.TypeInfo{
		Name: "mapOnce",
		Types: []*typesys.Type{
			typesys.Function([]*typesys.Type{a, a}),
			a,
			a,
		},
	}
	c := curry.New(ctx(), mapInfo, func(args []value.Value) (value.Value, error) {
		f := args[0].(value.Callable)
		return f.Call([]value.Value{args[1]})
	}, true, render.Plain)

	double := fnCallable{arity: 1, call: func(args []value.Value) (value.Value, error) {
		return args[0].(float64) * 2, nil
	}}

	result, err := c.Call([]value.Value{double, 3.0})
	assert.NoError(t, err)
	assert.Equal(t, 6.0, result)
}

type fnCallable struct {
	arity int
	call  func(args []value.Value) (value.Value, error)
}

func (f fnCallable) Arity() int                               { return f.arity }
func (f fnCallable) Call(args []value.Value) (value.Value, error) { return f.call(args) }
