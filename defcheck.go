// Package defcheck is a runtime type-checking engine for a dynamically
// typed value universe: build a type algebra out of nullary, unary,
// binary, enum, record and function constructors plus type variables,
// describe a function's signature against it, and get back a curried,
// validated callable that raises a rendered diagnostic banner the moment
// a value, a type-class constraint, a type variable, or an arity goes
// wrong.
package defcheck

import (
	"github.com/escalier-lang/defcheck/internal/catalog"
	"github.com/escalier-lang/defcheck/internal/curry"
	"github.com/escalier-lang/defcheck/internal/render"
	"github.com/escalier-lang/defcheck/internal/signature"
	"github.com/escalier-lang/defcheck/internal/solver"
	"github.com/escalier-lang/defcheck/internal/typeclass"
	"github.com/escalier-lang/defcheck/internal/typesys"
	"github.com/escalier-lang/defcheck/internal/value"
)

// Options configures an Engine (spec §4.5/§9).
type Options struct {
	// CheckTypes disables all runtime validation when false, so a def
	// built against it behaves as an ordinary curried function — useful
	// for stripping the cost of checking in a production build once a
	// signature has been exercised in development.
	CheckTypes bool
	// Env is the set of types candidate inference and the solver draw
	// concrete types from. A nil Env falls back to catalog.Env.
	Env []*typesys.Type
	// Style governs how a raised *TypeError is rendered. The zero value
	// renders with PlainStyle; a terminal-facing caller typically passes
	// ColorStyle.
	Style Style
}

// Style is the ANSI wrapping a *TypeError's diagnostic banner uses.
// PlainStyle (the zero value's effective default) applies none; ColorStyle
// colors the caret underline and numbered labels for a terminal.
type Style = render.Style

// PlainStyle applies no styling to a rendered diagnostic.
var PlainStyle = render.Plain

// ColorStyle colors a rendered diagnostic for terminal output.
var ColorStyle = render.Color

// Engine is a configured instance ready to build defs (spec §4.5's
// "def = create({checkTypes, env})" entry point).
type Engine struct {
	checkTypes bool
	env        []*typesys.Type
	style      render.Style
}

// Create builds an Engine from opts.
func Create(opts Options) *Engine {
	env := opts.Env
	if env == nil {
		env = catalog.Env
	}
	style := opts.Style
	if style.Caret == nil {
		style = render.Plain
	}
	return &Engine{checkTypes: opts.CheckTypes, env: env, style: style}
}

// Def declares one signature: name, per-type-variable constraints, the
// curried parameter list (last element is the return type), and the
// underlying implementation. The returned Callable accepts arguments one
// at a time (or many at once), validating each as it arrives, and raises
// *TypeError for any violation. Def itself returns an error only for a
// malformed signature (more than typesys.MaxArity parameters).
func (e *Engine) Def(
	name string,
	constraints map[string][]typeclass.TypeClass,
	types []*typesys.Type,
	impl curry.Impl,
) (c Callable, err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(*typesys.RangeError); ok {
				err = re
				return
			}
			panic(r)
		}
	}()

	info := &signature.TypeInfo{Name: name, Constraints: constraints, Types: types}
	ctx := &solver.Context{Env: e.env, Constraints: constraints}
	return &callable{inner: curry.New(ctx, info, impl, e.checkTypes, e.style)}, nil
}

// callable adapts *curry.Callable to value.Callable, translating every
// internal dispatch error into a *TypeError so callers never need to
// import an internal package to handle a failed check.
type callable struct {
	inner *curry.Callable
}

func (c *callable) Arity() int { return c.inner.Arity() }

func (c *callable) String() string { return c.inner.String() }

func (c *callable) Call(args []value.Value) (value.Value, error) {
	result, err := c.inner.Call(args)
	if err != nil {
		kind := InvalidValue
		if dispatchErr, ok := err.(*curry.DispatchError); ok {
			kind = dispatchErr.Kind
		}
		return nil, &TypeError{Kind: kind, cause: err}
	}
	if next, ok := result.(*curry.Callable); ok {
		return &callable{inner: next}, nil
	}
	return result, nil
}

// ErrorKind identifies which of the error taxonomy's entries (spec §7) a
// *TypeError raises: InvalidValue, TypeClassViolation, VariableViolation
// or WrongArity.
type ErrorKind = curry.ErrorKind

const (
	InvalidValue       = curry.InvalidValue
	TypeClassViolation = curry.TypeClassViolation
	VariableViolation  = curry.VariableViolation
	WrongArity         = curry.WrongArity
)

// TypeError wraps every diagnostic this package raises: an invalid
// value, a type-class violation, a type-variable conflict, or a
// wrong-arity call. Kind identifies which without parsing Error()'s
// rendered banner text.
type TypeError struct {
	Kind  ErrorKind
	cause error
}

func (e *TypeError) Error() string { return e.cause.Error() }
func (e *TypeError) Unwrap() error { return e.cause }

// Test reports whether v belongs to t under the solver (spec §6),
// running the full recursive check rather than t's shallow recognizer.
func Test(env []*typesys.Type, t *typesys.Type, v value.Value) bool {
	return solver.Test(&solver.Context{Env: env}, t, v)
}

// Placeholder, passed as an argument to a Callable, leaves that position
// open for a later call (spec §4.5).
var Placeholder = curry.Placeholder
