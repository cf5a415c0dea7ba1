package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/swatchy/internal/palette"
)

const swatchWidth = 4

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// supportsUnicode reports whether writer is an interactive terminal.
func supportsUnicode(writer any) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// renderPaletteText writes the human readable palette. Color blocks are
// only drawn when colored is set so piped output stays plain.
func renderPaletteText(w io.Writer, p palette.Palette, colored bool) {
	header := func(s string) string {
		if colored {
			return headerStyle.Render(s)
		}
		return s
	}
	block := func(hex string) string {
		if !colored {
			return ""
		}
		return " " + lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", swatchWidth))
	}

	fmt.Fprintf(w, "%s %s%s\n", header("Color:"), p.Hex, block(p.Hex))
	fmt.Fprintf(w, "RGB:      %s\n", p.RGBText)
	fmt.Fprintf(w, "HSL:      hsl(%.0f, %.0f%%, %.0f%%)\n", p.HSL.H, p.HSL.S*100, p.HSL.L*100)
	fmt.Fprintf(w, "RGBA:     %s\n", p.RGBAText)
	fmt.Fprintf(w, "Hex+A:    %s\n", p.HexAlpha)

	writeSection(w, header("Shades:"), p.Shades, block, colored)
	writeSection(w, header("Harmonies:"), p.Harmonies, block, colored)
}

func writeSection(w io.Writer, title string, swatches []palette.Swatch, block func(string) string, colored bool) {
	fmt.Fprintf(w, "\n%s\n", title)
	for i, s := range swatches {
		index := fmt.Sprintf("%2d", i)
		if colored {
			index = mutedStyle.Render(index)
		}
		fmt.Fprintf(w, "  %s  %-10s %s%s\n", index, s.Label, s.Hex, block(s.Hex))
	}
}
