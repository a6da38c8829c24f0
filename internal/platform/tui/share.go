package tui

import (
	"io"

	"github.com/muesli/termenv"
)

// Sharer delivers share text to the player.
type Sharer interface {
	Copy(text string)
}

// clipboardSharer copies text to the terminal clipboard with OSC 52.
// Works over SSH, since the escape sequence travels with the session output.
type clipboardSharer struct {
	out *termenv.Output
}

// NewClipboardSharer creates a Sharer writing OSC 52 sequences to w.
func NewClipboardSharer(w io.Writer) Sharer {
	return clipboardSharer{out: termenv.NewOutput(w)}
}

func (s clipboardSharer) Copy(text string) {
	s.out.Copy(text)
}
