package render

import (
	"sort"
	"strconv"
	"strings"

	"github.com/escalier-lang/defcheck/internal/propath"
	"github.com/escalier-lang/defcheck/internal/signature"
)

// Signature renders a TypeInfo's plain banner line ("name :: Number ->
// Number -> Number"), with no caret/label lines beneath it.
func Signature(info *signature.TypeInfo) string {
	prefix := info.Name + " :: " + constraintsRepr(info)
	return prefix + measureTypes(info.Types).text
}

// banner builds the three-line signature block, underlining and
// numbering every path in highlighted (sorted into a stable left-to-right
// reading order first).
func banner(info *signature.TypeInfo, style Style, highlighted []propath.Path) string {
	m := measureTypes(info.Types)
	prefix := info.Name + " :: " + constraintsRepr(info)

	sort.Slice(highlighted, func(i, j int) bool {
		return propath.Less(highlighted[i], highlighted[j])
	})

	caret := make([]rune, len([]rune(m.text)))
	for i := range caret {
		caret[i] = ' '
	}
	number := make([]rune, len(caret))
	for i := range number {
		number[i] = ' '
	}

	for i, p := range highlighted {
		sp, ok := m.spans[p.String()]
		if !ok {
			continue
		}
		for c := sp.start; c < sp.end && c < len(caret); c++ {
			caret[c] = '^'
		}
		label := strconv.Itoa(i + 1)
		start := sp.start + (sp.end-sp.start-len(label))/2
		if start < sp.start {
			start = sp.start
		}
		for j, r := range label {
			if start+j < len(number) {
				number[start+j] = r
			}
		}
	}

	lines := []string{
		prefix + m.text,
		prefix + style.Caret(strings.TrimRight(string(caret), " ")),
		prefix + style.Label(strings.TrimRight(string(number), " ")),
	}
	return strings.Join(lines, "\n")
}

