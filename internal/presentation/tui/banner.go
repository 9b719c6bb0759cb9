package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner followed by the version.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{" _______        _", "#818cf8"},
		{"|__   __|      (_)", "#a78bfa"},
		{"   | |_   _ _ __ _ _ __   __ _", "#c084fc"},
		{"   | | | | | '__| | '_ \\ / _` |", "#e879f9"},
		{"   | | |_| | |  | | | | | (_| |", "#f472b6"},
		{"   |_|\\__,_|_|  |_|_| |_|\\__, |", "#fb7185"},
		{"                          __/ |", "#fb7185"},
		{"                         |___/", "#fb7185"},
	}

	fmt.Fprintln(out)
	for _, l := range lines {
		fmt.Fprintln(out, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintf(out, "  v%s\n\n", strings.TrimSpace(version))
}
