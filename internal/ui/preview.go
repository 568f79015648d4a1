package ui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal, used to decide
// whether `show` renders a styled glamour preview or plain text.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Preview renders body through glamour for a styled terminal preview,
// grounded on the teacher's show.go NewTermRenderer usage. wrapWidth of 0
// falls back to glamour's own default.
func Preview(body string, wrapWidth int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if wrapWidth > 0 {
		opts = append(opts, glamour.WithWordWrap(wrapWidth))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return renderer.Render(body)
}
