package curry

import (
	"fmt"

	"github.com/escalier-lang/defcheck/internal/render"
	"github.com/escalier-lang/defcheck/internal/signature"
	"github.com/escalier-lang/defcheck/internal/solver"
	"github.com/escalier-lang/defcheck/internal/typesys"
	"github.com/escalier-lang/defcheck/internal/value"
)

// mapCell is the one deliberate exception to the solver's otherwise
// value-semantic TypeVarMap threading (spec §9): a callback's call-time
// arguments may narrow a type variable shared with the enclosing def's
// signature, and that narrowing has to be visible to whatever check runs
// next in the same outer call, even though the callback itself is never
// re-invoked through the normal Call-and-rebind path.
type mapCell struct {
	m *solver.TypeVarMap
}

// wrappedCallable checks a Function-typed argument's call-time arguments
// and return value against its declared parameter type, narrowing cell.m
// in place as evidence arrives.
type wrappedCallable struct {
	inner  value.Callable
	fnType *typesys.Type
	ctx    *solver.Context
	parent *signature.TypeInfo // the enclosing def's own signature
	slot   int                 // this callback's position within parent
	info   *signature.TypeInfo // this callback's own parameter/return shape
	cell   *mapCell
	style  render.Style
}

func (w *wrappedCallable) Arity() int { return w.inner.Arity() }

func (w *wrappedCallable) Call(args []value.Value) (value.Value, error) {
	paramCount := len(w.fnType.Keys) - 1 // last key is "$return"
	if len(args) != paramCount {
		return nil, &DispatchError{Kind: WrongArity, Text: render.CallbackArity(w.parent, w.ctx.Env, w.slot, args, w.style)}
	}

	for i, a := range args {
		key := w.fnType.Keys[i]
		sub := w.fnType.Children[key].SubType
		m, deferred := solver.Solve(w.ctx, sub, []value.Value{a}, i, nil, w.cell.m)
		if deferred != nil {
			failure := deferred()
			return nil, &DispatchError{Kind: kindOf(failure), Text: render.Render(w.info, w.ctx.Env, failure, w.style)}
		}
		w.cell.m = m
	}

	result, err := w.inner.Call(args)
	if err != nil {
		return nil, err
	}

	retKey := w.fnType.Keys[len(w.fnType.Keys)-1]
	retSub := w.fnType.Children[retKey].SubType
	m, deferred := solver.Solve(w.ctx, retSub, []value.Value{result}, paramCount, nil, w.cell.m)
	if deferred != nil {
		failure := deferred()
		return nil, &DispatchError{Kind: kindOf(failure), Text: render.Render(w.info, w.ctx.Env, failure, w.style)}
	}
	w.cell.m = m
	return result, nil
}

func (w *wrappedCallable) String() string {
	return render.Signature(w.info)
}

// callbackInfo builds the small TypeInfo describing one Function-typed
// parameter's own shape, so the renderer underlines positions within the
// callback's signature rather than the enclosing def's.
func callbackInfo(parent *signature.TypeInfo, fnType *typesys.Type) *signature.TypeInfo {
	types := make([]*typesys.Type, len(fnType.Keys))
	for i, k := range fnType.Keys {
		types[i] = fnType.Children[k].SubType
	}
	return &signature.TypeInfo{
		Name:        fmt.Sprintf("%s's callback", parent.Name),
		Constraints: parent.Constraints,
		Types:       types,
	}
}

var _ value.Callable = (*wrappedCallable)(nil)
