// Package render implements the diagnostic renderer (spec §4.6): three-line
// signature banners with caret underlines and numbered positions for the
// four error shapes. Grounded on the recursive outer/inner styling shape
// of escalier's internal/printer (turning a typed tree back into source
// text) and on kryptco-kr's color.go for the ANSI styling primitives.
package render

import (
	"strings"

	"github.com/escalier-lang/defcheck/internal/propath"
	"github.com/escalier-lang/defcheck/internal/typesys"
)

type span struct{ start, end int }

// measurement renders a signature's parameter list to plain text while
// recording the column span every sub-type occupies, keyed by its full
// path (argument index + structural path). One measurement is built once
// per banner and reused for both the caret line and the numbered-label
// line, so the two always agree on column offsets.
type measurement struct {
	text  string
	spans map[string]span
}

const arrow = " -> "

func measureTypes(types []*typesys.Type) *measurement {
	pos := 0
	spans := map[string]span{}
	var b strings.Builder
	for i, t := range types {
		if i > 0 {
			b.WriteString(arrow)
			pos += len(arrow)
		}
		b.WriteString(measureOne(t, propath.Path{propath.Int(i)}, &pos, spans))
	}
	return &measurement{text: b.String(), spans: spans}
}

func measureOne(t *typesys.Type, path propath.Path, pos *int, spans map[string]span) string {
	start := *pos
	text := t.Format(
		func(lit string) string {
			*pos += len(lit)
			return lit
		},
		func(k string) string {
			childPath := path.Append(propath.Str(k))
			sub := t.Children[k].SubType
			wrap := sub.IsComposite()
			if wrap {
				*pos++ // "("
			}
			childStart := *pos
			rendered := measureOne(sub, childPath, pos, spans)
			spans[childPath.String()] = span{start: childStart, end: *pos}
			if wrap {
				*pos++ // ")"
				return "(" + rendered + ")"
			}
			return rendered
		},
	)
	spans[path.String()] = span{start: start, end: *pos}
	return text
}
