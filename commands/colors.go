package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

// ColorFunc returns an ansi colour function for style, or a pass-through when
// f is not a terminal.
func ColorFunc(f *os.File, style string) func(string) string {
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return func(text string) string { return text }
	}

	return ansi.ColorFunc(style)
}

var red = ColorFunc(os.Stderr, "red+b")
var yellow = ColorFunc(os.Stderr, "yellow+b")
