package prompt

import (
	"io"

	"github.com/muesli/termenv"
)

// Style decorates prompt output. Colors are dropped when the writer is not
// a terminal.
type Style struct {
	out *termenv.Output
}

// NewStyle detects the color profile of w.
func NewStyle(w io.Writer) Style {
	return Style{out: termenv.NewOutput(w)}
}

// PlainStyle never emits escape sequences.
func PlainStyle(w io.Writer) Style {
	return Style{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
}

// Hint renders secondary text such as the default value.
func (s Style) Hint(text string) string {
	return s.out.String(text).Foreground(s.out.Color("8")).String()
}

// Error renders an error line.
func (s Style) Error(text string) string {
	return s.out.String(text).Foreground(s.out.Color("1")).String()
}
