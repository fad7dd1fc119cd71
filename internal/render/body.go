package render

import (
	"strings"

	"github.com/escalier-lang/defcheck/internal/infer"
	"github.com/escalier-lang/defcheck/internal/typesys"
	"github.com/escalier-lang/defcheck/internal/value"
)

// valueLine renders one "<value> :: <loosely inferred types>" body line
// (spec §4.6's supplementary body for invalid-value and type-class
// banners): the offending value followed by every environment type it
// loosely belongs to, or Inconsistent if none.
func valueLine(env []*typesys.Type, v value.Value) string {
	candidates := infer.Candidates(env, []value.Value{v}, infer.Loose)
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.String()
	}
	return value.ToString(v) + " :: " + strings.Join(names, ", ")
}
