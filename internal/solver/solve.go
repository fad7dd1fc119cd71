package solver

import (
	"github.com/escalier-lang/defcheck/internal/infer"
	"github.com/escalier-lang/defcheck/internal/propath"
	"github.com/escalier-lang/defcheck/internal/typeclass"
	"github.com/escalier-lang/defcheck/internal/typesys"
	"github.com/escalier-lang/defcheck/internal/value"
)

// Context is the read-only state every solver step needs: the
// environment candidate inference draws from, and the per-variable
// type-class constraints a signature declared. Grounded on escalier's
// checker.Context (internal/checker/checker.go): a plain struct threaded
// through a recursive walk rather than a receiver method on a stateful
// object, since a TypeVarMap — not the Context — is what actually
// changes step to step.
type Context struct {
	Env         []*typesys.Type
	Constraints map[string][]typeclass.TypeClass
}

// Solve walks expected against values, threading prevMap forward (spec
// §4.4). argIndex identifies the curried parameter this observation
// belongs to (used only to key TypeVarMap evidence); path locates where
// within that parameter's type tree these values were extracted from.
// On success it returns the refined map and a nil Deferred; on failure
// the returned Deferred constructs the diagnostic, and the returned map
// should not be used further for this call.
func Solve(ctx *Context, expected *typesys.Type, values []value.Value, argIndex int, path propath.Path, prevMap *TypeVarMap) (*TypeVarMap, Deferred) {
	switch expected.Variant {
	case typesys.VariantVariable:
		return solveVariable(ctx, expected, values, argIndex, path, prevMap)
	case typesys.VariantRecord:
		return solveRecord(ctx, expected, values, argIndex, path, prevMap)
	case typesys.VariantUnary:
		return solveUnary(ctx, expected, values, argIndex, path, prevMap)
	case typesys.VariantBinary:
		return solveBinary(ctx, expected, values, argIndex, path, prevMap)
	default: // Nullary, Enum, Function, Unknown, Inconsistent
		return solveLeaf(expected, values, argIndex, path, prevMap)
	}
}

// fullPath prefixes a structural path with the curried-argument index that
// every Failure.Path is rooted at, matching the path keys the renderer's
// signature measurement uses.
func fullPath(argIndex int, path propath.Path) propath.Path {
	return propath.Path{propath.Int(argIndex)}.Append(path...)
}

func solveLeaf(expected *typesys.Type, values []value.Value, argIndex int, path propath.Path, prevMap *TypeVarMap) (*TypeVarMap, Deferred) {
	for _, v := range values {
		if verr := expected.Validate(v); verr != nil {
			failPath := fullPath(argIndex, path).Append(verr.Path...)
			failValue := verr.Value
			return prevMap, func() *Failure {
				return &Failure{Kind: InvalidValue, Value: failValue, Path: failPath}
			}
		}
	}
	return prevMap, nil
}

func solveRecord(ctx *Context, expected *typesys.Type, values []value.Value, argIndex int, path propath.Path, prevMap *TypeVarMap) (*TypeVarMap, Deferred) {
	m := prevMap
	for _, v := range values {
		if !expected.Recognize(v) {
			failValue := v
			failPath := fullPath(argIndex, path)
			return prevMap, func() *Failure { return &Failure{Kind: InvalidValue, Value: failValue, Path: failPath} }
		}
	}
	for _, k := range expected.Keys {
		child := expected.Children[k]
		var childValues []value.Value
		for _, v := range values {
			childValues = append(childValues, child.Extractor(v)...)
		}
		var deferred Deferred
		m, deferred = Solve(ctx, child.SubType, childValues, argIndex, path.Append(propath.Str(k)), m)
		if deferred != nil {
			return m, deferred
		}
	}
	return m, nil
}

func solveUnary(ctx *Context, expected *typesys.Type, values []value.Value, argIndex int, path propath.Path, prevMap *TypeVarMap) (*TypeVarMap, Deferred) {
	for _, v := range values {
		if !expected.Recognize(v) {
			failValue := v
			failPath := fullPath(argIndex, path)
			return prevMap, func() *Failure { return &Failure{Kind: InvalidValue, Value: failValue, Path: failPath} }
		}
	}
	key := expected.Keys[0]
	child := expected.Children[key]
	var childValues []value.Value
	for _, v := range values {
		childValues = append(childValues, child.Extractor(v)...)
	}
	return Solve(ctx, child.SubType, childValues, argIndex, path.Append(propath.Str(key)), prevMap)
}

func solveBinary(ctx *Context, expected *typesys.Type, values []value.Value, argIndex int, path propath.Path, prevMap *TypeVarMap) (*TypeVarMap, Deferred) {
	for _, v := range values {
		if !expected.Recognize(v) {
			failValue := v
			failPath := fullPath(argIndex, path)
			return prevMap, func() *Failure { return &Failure{Kind: InvalidValue, Value: failValue, Path: failPath} }
		}
	}
	key1, key2 := expected.Keys[0], expected.Keys[1]
	child1, child2 := expected.Children[key1], expected.Children[key2]

	var values1 []value.Value
	for _, v := range values {
		values1 = append(values1, child1.Extractor(v)...)
	}
	m, deferred := Solve(ctx, child1.SubType, values1, argIndex, path.Append(propath.Str(key1)), prevMap)
	if deferred != nil {
		return m, deferred
	}

	var values2 []value.Value
	for _, v := range values {
		values2 = append(values2, child2.Extractor(v)...)
	}
	return Solve(ctx, child2.SubType, values2, argIndex, path.Append(propath.Str(key2)), m)
}

func solveVariable(ctx *Context, expected *typesys.Type, values []value.Value, argIndex int, path propath.Path, prevMap *TypeVarMap) (*TypeVarMap, Deferred) {
	for _, v := range values {
		for _, tc := range ctx.Constraints[expected.Name] {
			if !tc.Test(v) {
				class := tc
				failValue := v
				failPath := fullPath(argIndex, path)
				return prevMap, func() *Failure {
					return &Failure{Kind: TypeClassViolation, Value: failValue, Class: class, VarName: expected.Name, Path: failPath}
				}
			}
		}
	}
	return updateTypeVarMap(ctx, prevMap, expected, argIndex, path, values)
}

// updateTypeVarMap refines the candidate list for expected.Name against
// values, then — when expected itself has children (a Unary/Binary type
// variable, e.g. `f a`) — additionally enforces that every surviving
// candidate's own last-keyed slot extracts values belonging to the
// variable's declared inner type (spec §4.4, and the §9 open question on
// which keyed extractor this check uses: the candidate's *last* key).
func updateTypeVarMap(ctx *Context, prevMap *TypeVarMap, expected *typesys.Type, argIndex int, path propath.Path, values []value.Value) (*TypeVarMap, Deferred) {
	name := expected.Name
	var entry *VarEntry
	if e, ok := prevMap.Lookup(name).Get(); ok {
		entry = e.clone()
	} else {
		entry = &VarEntry{
			Candidates:   append([]*typesys.Type(nil), ctx.Env...),
			ValuesByPath: map[string]*Occurrence{},
		}
	}

	candidates := entry.Candidates
	for _, v := range values {
		var survivors []*typesys.Type
		for _, c := range candidates {
			if !Test(ctx, c, v) {
				continue
			}
			survivors = append(survivors, refineCandidate(ctx, c, v))
		}
		candidates = survivors
	}
	entry.Candidates = candidates

	varPath := fullPath(argIndex, path)
	key := varPath.String()
	var priorValues []value.Value
	if prior, ok := entry.ValuesByPath[key]; ok {
		priorValues = prior.Values
	}
	entry.ValuesByPath[key] = &Occurrence{
		Path:   varPath,
		Values: append(append([]value.Value(nil), priorValues...), values...),
	}

	if len(expected.Keys) > 0 && len(values) > 0 {
		if deferred := checkInnerShape(expected, candidates, values, argIndex, path); deferred != nil {
			return prevMap, deferred
		}
	}

	newMap := prevMap.With(name, entry)

	if len(candidates) == 0 && totalObserved(entry) > 0 {
		entryCopy := entry
		varType := expected
		violationPath := varPath
		return newMap, func() *Failure {
			return &Failure{Kind: VariableViolation, VarName: name, VarType: varType, Occurrences: entryCopy.ValuesByPath, Path: violationPath}
		}
	}
	return newMap, nil
}

func checkInnerShape(expected *typesys.Type, candidates []*typesys.Type, values []value.Value, argIndex int, path propath.Path) Deferred {
	declaredInnerKey := expected.Keys[len(expected.Keys)-1]
	declaredInner := expected.Children[declaredInnerKey].SubType
	if declaredInner == nil || declaredInner.Variant == typesys.VariantVariable {
		return nil // deferred: the inner type is itself unresolved
	}
	for _, c := range candidates {
		if len(c.Keys) == 0 {
			continue
		}
		tKey := c.Keys[len(c.Keys)-1]
		extractor := c.Children[tKey].Extractor
		for _, v := range values {
			for _, iv := range extractor(v) {
				if verr := declaredInner.Validate(iv); verr != nil {
					failValue := verr.Value
					failPath := fullPath(argIndex, path.Append(propath.Str(declaredInnerKey)).Append(verr.Path...))
					return func() *Failure {
						return &Failure{Kind: InvalidValue, Value: failValue, Path: failPath}
					}
				}
			}
		}
	}
	return nil
}

func totalObserved(e *VarEntry) int {
	n := 0
	for _, occ := range e.ValuesByPath {
		n += len(occ.Values)
	}
	return n
}

// refineCandidate specializes a surviving Unary/Binary candidate's
// Unknown child(ren) against v's extracted inner values via strict
// inference (spec §4.4: observing [1, 2] narrows "Array ???" to
// "Array Number").
func refineCandidate(ctx *Context, c *typesys.Type, v value.Value) *typesys.Type {
	switch c.Variant {
	case typesys.VariantUnary:
		key := c.Keys[0]
		child := c.Children[key]
		if child.SubType != typesys.UnknownType {
			return c
		}
		ic := infer.Candidates(ctx.Env, child.Extractor(v), infer.Strict)
		if len(ic) == 0 {
			return c
		}
		return c.WithChild(key, ic[0])
	case typesys.VariantBinary:
		nc := c
		for _, key := range c.Keys {
			child := nc.Children[key]
			if child.SubType != typesys.UnknownType {
				continue
			}
			ic := infer.Candidates(ctx.Env, child.Extractor(v), infer.Strict)
			if len(ic) > 0 {
				nc = nc.WithChild(key, ic[0])
			}
		}
		return nc
	default:
		return c
	}
}

// Test is the public membership-via-solver helper (spec §6): does v
// belong to t, using the full solver rather than the shallow Recognize.
func Test(ctx *Context, t *typesys.Type, v value.Value) bool {
	_, deferred := Solve(ctx, t, []value.Value{v}, 0, nil, NewTypeVarMap())
	return deferred == nil
}
