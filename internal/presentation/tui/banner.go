package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the inkwell banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{" _       _                 _ _", "#818cf8"},
		{"(_)_ __ | | ____      _____| | |", "#a78bfa"},
		{"| | '_ \\| |/ /\\ \\ /\\ / / _ \\ | |", "#c084fc"},
		{"| | | | |   <  \\ V  V /  __/ | |", "#e879f9"},
		{"|_|_| |_|_|\\_\\  \\_/\\_/ \\___|_|_|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	if version = strings.TrimSpace(version); version != "" {
		fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	}
	fmt.Fprintln(w)
}
