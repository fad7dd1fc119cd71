package render

import "github.com/fatih/color"

// Style supplies the ANSI wrapping the renderer applies to the caret
// underline and the numbered labels. Plain (identity on both) is what the
// library itself and the snapshot tests use, since a diagnostic string
// that embeds escape codes can't be asserted against by value; Color is
// what a terminal-facing caller (cmd/defcheck) passes instead.
type Style struct {
	Caret func(string) string
	Label func(string) string
}

func identity(s string) string { return s }

// Plain applies no styling.
var Plain = Style{Caret: identity, Label: identity}

// Color underlines in red and labels in yellow, matching kryptco-kr's
// color.go conventions for failure output.
var Color = Style{
	Caret: func(s string) string { return color.RedString("%s", s) },
	Label: func(s string) string { return color.YellowString("%s", s) },
}
