package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the easel banner to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	// Warm ochre to vermilion, like a wet palette.
	lines := []struct{ text, color string }{
		{"   ___  ____ ____ ___ / ", "#fbbf24"},
		{"  / -_)/ _ `(_-</ -_) / ", "#f59e0b"},
		{"  \\__/ \\_,_/___/\\__/_/  ", "#f97316"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  brush choreography "+version).Faint())
	fmt.Fprintln(w)
}
