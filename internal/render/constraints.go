package render

import (
	"strings"

	"github.com/escalier-lang/defcheck/internal/signature"
	"github.com/escalier-lang/defcheck/internal/typesys"
)

// varOrder lists every TypeVariable name appearing in types, in first
// left-to-right appearance order, so the constraint context is always
// printed in the same order the variables themselves appear in the
// signature.
func varOrder(types []*typesys.Type) []string {
	var order []string
	seen := map[string]bool{}
	var walk func(t *typesys.Type)
	walk = func(t *typesys.Type) {
		if t == nil {
			return
		}
		if t.Variant == typesys.VariantVariable && !seen[t.Name] {
			seen[t.Name] = true
			order = append(order, t.Name)
		}
		for _, k := range t.Keys {
			walk(t.Children[k].SubType)
		}
	}
	for _, t := range types {
		walk(t)
	}
	return order
}

// constraintsRepr renders a TypeInfo's constraint context: "C a => ",
// "(C a, D b) => ", or "" when nothing is constrained.
func constraintsRepr(info *signature.TypeInfo) string {
	var parts []string
	for _, name := range varOrder(info.Types) {
		for _, tc := range info.Constraints[name] {
			parts = append(parts, tc.Name()+" "+name)
		}
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0] + " => "
	default:
		return "(" + strings.Join(parts, ", ") + ") => "
	}
}
