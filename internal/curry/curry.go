// Package curry implements curried dispatch (spec §4.5): a def's
// positional parameter list filled in one argument at a time, with a
// placeholder sentinel for deliberately skipped positions, each filled
// value solved against its declared type as it arrives. Grounded on
// escalier's internal/checker/infer_func.go: the shape of threading a
// substitution through an application one argument at a time, generalized
// here from compile-time inference to runtime currying.
package curry

import (
	"fmt"

	"github.com/escalier-lang/defcheck/internal/render"
	"github.com/escalier-lang/defcheck/internal/signature"
	"github.com/escalier-lang/defcheck/internal/solver"
	"github.com/escalier-lang/defcheck/internal/typesys"
	"github.com/escalier-lang/defcheck/internal/value"
)

// Impl is the underlying, already-type-erased function body a def wraps.
type Impl func(args []value.Value) (value.Value, error)

// placeholderType is Placeholder's concrete type, distinguishing "this
// position left open for later" from every ordinary value.
type placeholderType struct{}

// Placeholder, passed in a Call, leaves that position open without
// filling it or running it through the solver.
var Placeholder value.Value = placeholderType{}

// ErrorKind classifies a DispatchError (spec §7's error taxonomy): the
// three failure shapes the solver itself can raise, plus WrongArity for
// the one failure curry raises before a call ever reaches the solver.
type ErrorKind int

const (
	InvalidValue ErrorKind = iota
	TypeClassViolation
	VariableViolation
	WrongArity
)

// kindOf maps a realized solver.Failure onto the curry package's own
// ErrorKind, so a DispatchError's Kind is always one of the taxonomy
// entries regardless of which layer raised it.
func kindOf(f *solver.Failure) ErrorKind {
	switch f.Kind {
	case solver.TypeClassViolation:
		return TypeClassViolation
	case solver.VariableViolation:
		return VariableViolation
	default:
		return InvalidValue
	}
}

// DispatchError is the error Call returns for every validation failure:
// wrong arity, an invalid value, a type-class violation, or a
// type-variable conflict. Kind identifies which; Text is the fully
// rendered diagnostic banner.
type DispatchError struct {
	Kind ErrorKind
	Text string
}

func (e *DispatchError) Error() string { return e.Text }

// Callable is one partially (or fully) applied curried def. It is
// immutable: Call never mutates the receiver, always returning either a
// fresh Callable with more positions filled, or the final result.
type Callable struct {
	info       *signature.TypeInfo
	ctx        *solver.Context
	impl       Impl
	checkTypes bool
	style      render.Style
	values     []value.Value
	filled     []bool
	varMap     *solver.TypeVarMap
}

// New builds the zero-state Callable for info, panicking with a
// *typesys.RangeError if info declares more than typesys.MaxArity
// parameters. style governs how a raised DispatchError is rendered
// (render.Plain for byte-comparable diagnostics, render.Color for a
// terminal-facing caller).
func New(ctx *solver.Context, info *signature.TypeInfo, impl Impl, checkTypes bool, style render.Style) *Callable {
	typesys.CheckArity(info.Arity())
	return &Callable{
		info:       info,
		ctx:        ctx,
		impl:       impl,
		checkTypes: checkTypes,
		style:      style,
		values:     make([]value.Value, info.Arity()),
		filled:     make([]bool, info.Arity()),
		varMap:     solver.NewTypeVarMap(),
	}
}

// Arity is the number of positions not yet filled.
func (c *Callable) Arity() int {
	n := 0
	for _, f := range c.filled {
		if !f {
			n++
		}
	}
	return n
}

// String renders the def's stable signature text.
func (c *Callable) String() string {
	return render.Signature(c.info)
}

func (c *Callable) clone() *Callable {
	nc := *c
	nc.values = append([]value.Value(nil), c.values...)
	nc.filled = append([]bool(nil), c.filled...)
	return &nc
}

func (c *Callable) openSlots() []int {
	var open []int
	for i, f := range c.filled {
		if !f {
			open = append(open, i)
		}
	}
	return open
}

// Call fills as many open positions as args supplies, validating each
// non-Placeholder value against its declared type (spec §4.5). Supplying
// more arguments than remain open is a wrong-arity error. Once every
// position is filled, Call runs the underlying implementation and
// validates its result.
func (c *Callable) Call(args []value.Value) (value.Value, error) {
	open := c.openSlots()
	if len(args) > len(open) {
		got := c.info.Arity() - len(open) + len(args)
		return nil, &DispatchError{Kind: WrongArity, Text: render.Arity(c.info, got, c.style)}
	}

	next := c.clone()
	for i, a := range args {
		slot := open[i]
		if _, isPlaceholder := a.(placeholderType); isPlaceholder {
			continue
		}
		if c.checkTypes {
			m, deferred := solver.Solve(c.ctx, c.info.Types[slot], []value.Value{a}, slot, nil, next.varMap)
			if deferred != nil {
				failure := deferred()
				return nil, &DispatchError{Kind: kindOf(failure), Text: render.Render(c.info, c.ctx.Env, failure, c.style)}
			}
			next.varMap = m
		}
		next.values[slot] = a
		next.filled[slot] = true
	}

	for _, f := range next.filled {
		if !f {
			return next, nil
		}
	}
	return next.apply()
}

// apply invokes the implementation once every position is filled. Any
// Function-typed argument is wrapped so that its call-time arguments and
// return value are themselves checked, sharing one mutable TypeVarMap
// cell with the rest of this call (spec §4.5, §9: "the only mutable
// shared state; its lifetime is exactly the outer call").
func (c *Callable) apply() (value.Value, error) {
	cell := &mapCell{m: c.varMap}
	args := make([]value.Value, len(c.values))
	for i, v := range c.values {
		if c.checkTypes {
			if paramType := c.info.Types[i]; paramType.Variant == typesys.VariantFunction {
				if callable, ok := v.(value.Callable); ok {
					v = &wrappedCallable{
						inner:  callable,
						fnType: paramType,
						ctx:    c.ctx,
						parent: c.info,
						slot:   i,
						info:   callbackInfo(c.info, paramType),
						cell:   cell,
						style:  c.style,
					}
				}
			}
		}
		args[i] = v
	}

	result, err := c.impl(args)
	if err != nil {
		return nil, err
	}
	if !c.checkTypes {
		return result, nil
	}

	retIndex := len(c.values)
	m, deferred := solver.Solve(c.ctx, c.info.ReturnType(), []value.Value{result}, retIndex, nil, cell.m)
	if deferred != nil {
		failure := deferred()
		return nil, &DispatchError{Kind: kindOf(failure), Text: render.Render(c.info, c.ctx.Env, failure, c.style)}
	}
	cell.m = m
	return result, nil
}

var _ fmt.Stringer = (*Callable)(nil)
