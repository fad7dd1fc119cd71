package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/escalier-lang/defcheck/internal/infer"
	"github.com/escalier-lang/defcheck/internal/propath"
	"github.com/escalier-lang/defcheck/internal/signature"
	"github.com/escalier-lang/defcheck/internal/solver"
	"github.com/escalier-lang/defcheck/internal/typesys"
	"github.com/escalier-lang/defcheck/internal/value"
)

// Render builds the full diagnostic text for one solver Failure (spec
// §4.6): the three-line banner, underlining and numbering the offending
// position(s), followed by a supplementary body appropriate to the
// failure's kind.
func Render(info *signature.TypeInfo, env []*typesys.Type, f *solver.Failure, style Style) string {
	switch f.Kind {
	case solver.InvalidValue:
		return invalidValueBanner(info, env, f, style)
	case solver.TypeClassViolation:
		return typeClassBanner(info, env, f, style)
	case solver.VariableViolation:
		return variableBanner(info, env, f, style)
	default:
		return banner(info, style, nil)
	}
}

func invalidValueBanner(info *signature.TypeInfo, env []*typesys.Type, f *solver.Failure, style Style) string {
	head := banner(info, style, []propath.Path{f.Path})
	return head + "\n\n" + valueLine(env, f.Value)
}

func typeClassBanner(info *signature.TypeInfo, env []*typesys.Type, f *solver.Failure, style Style) string {
	head := banner(info, style, []propath.Path{f.Path})
	return head + "\n\n" + valueLine(env, f.Value) +
		fmt.Sprintf("\n\ndoes not satisfy %s %s", f.Class.Name(), f.VarName)
}

// variableBanner implements spec §4.6's variable-violation rule: of every
// position that has ever supplied a value for the offending variable,
// only those whose values — combined with the values at the position
// that triggered the violation — cannot all inhabit any single
// environment type under strict inference are kept as part of the
// conflict. Positions consistent with the violating value are dropped
// even though they too contributed evidence.
func variableBanner(info *signature.TypeInfo, env []*typesys.Type, f *solver.Failure, style Style) string {
	violating := f.Occurrences[f.Path.String()]
	var keys []string
	for k := range f.Occurrences {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var conflicting []*solver.Occurrence
	for _, k := range keys {
		occ := f.Occurrences[k]
		if occ == violating {
			conflicting = append(conflicting, occ)
			continue
		}
		combined := append(append([]value.Value(nil), violating.Values...), occ.Values...)
		if len(infer.Candidates(env, combined, infer.Strict)) == 0 {
			conflicting = append(conflicting, occ)
		}
	}
	if violating == nil {
		conflicting = []*solver.Occurrence{}
	}

	paths := make([]propath.Path, len(conflicting))
	for i, occ := range conflicting {
		paths[i] = occ.Path
	}
	head := banner(info, style, paths)

	var body strings.Builder
	for i, occ := range conflicting {
		if i > 0 {
			body.WriteString("\n")
		}
		for _, v := range occ.Values {
			body.WriteString("\n")
			body.WriteString(valueLine(env, v))
		}
	}
	return head + "\n" + body.String()
}

// Arity renders the wrong-arity banner for a def's own call (spec §4.6's
// fourth shape, applied at the top level): the signature is printed with
// no highlighting at all, since the defect is the call's argument count,
// not a specific position within it.
func Arity(info *signature.TypeInfo, got int, style Style) string {
	head := banner(info, style, nil)
	return head + fmt.Sprintf("\n\nexpected %d argument(s), received %d", info.Arity(), got)
}

// CallbackArity renders the wrong-arity banner for a mis-applied
// Function-typed argument (spec §4.6's fourth shape): slot, the index of
// the callback parameter within parent's own curried signature, is
// highlighted in parent's banner rather than in a synthetic sub-signature,
// so a caller sees which of the def's own parameters received the bad
// callback. The supplementary body lists every value the callback was
// actually invoked with.
func CallbackArity(parent *signature.TypeInfo, env []*typesys.Type, slot int, args []value.Value, style Style) string {
	head := banner(parent, style, []propath.Path{{propath.Int(slot)}})
	var body strings.Builder
	for _, a := range args {
		body.WriteString("\n")
		body.WriteString(valueLine(env, a))
	}
	return head + "\n" + body.String()
}
