package tui

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/swatchy/internal/palette"
)

type rowLayout struct {
	section palette.Section
	line    int
}

// View renders the current model state
func (m Model) View() string {
	lines, _ := m.body()
	return strings.Join(lines, "\n")
}

// layout reports the screen line of each swatch row.
func (m Model) layout() []rowLayout {
	_, rows := m.body()
	return rows
}

func (m Model) body() ([]string, []rowLayout) {
	var (
		lines []string
		rows  []rowLayout
	)

	lines = append(lines, titleStyle.Render("swatchy"))
	lines = append(lines, m.renderPreview())
	lines = append(lines, labelStyle.Render(fmt.Sprintf("opacity %3.0f%%  ", m.derived.Opacity*100))+
		valueStyle.Render(m.derived.HexAlpha))
	lines = append(lines, "")

	if m.derived.Revealed {
		for _, section := range []palette.Section{palette.SectionShades, palette.SectionHarmonies} {
			lines = append(lines, sectionStyle.Render(sectionTitle(section)))
			rows = append(rows, rowLayout{section: section, line: len(lines)})
			lines = append(lines, m.renderRow(section))
			lines = append(lines, m.renderMarker(section))
			lines = append(lines, "")
		}
	} else {
		lines = append(lines, hintStyle.Render("press e to pick a base color"))
		lines = append(lines, "")
	}

	if m.mode == ModeEdit {
		lines = append(lines, m.input.View())
	}

	lines = append(lines, m.renderStatus())
	lines = append(lines, m.help.View(m.keys))

	return lines, rows
}

func (m Model) renderPreview() string {
	p := m.derived
	return strings.Join([]string{
		swatchBlock(p.RGB.Hex(), swatchWidth),
		valueStyle.Render(p.Hex),
		valueStyle.Render(p.RGBText),
		valueStyle.Render(p.RGBAText),
	}, "  ")
}

func (m Model) renderRow(section palette.Section) string {
	swatches := m.derived.Section(section)
	blocks := make([]string, len(swatches))
	for i, sw := range swatches {
		blocks[i] = swatchBlock(sw.Hex, swatchWidth)
	}
	return strings.Join(blocks, strings.Repeat(" ", swatchGap))
}

// renderMarker points at the selected swatch and names it.
func (m Model) renderMarker(section palette.Section) string {
	if section != m.section {
		return ""
	}
	sw, ok := m.Selected()
	if !ok {
		return ""
	}
	arrow := "^"
	if m.useUnicode {
		arrow = "▲"
	}
	pad := strings.Repeat(" ", m.cursor*(swatchWidth+swatchGap))
	return pad + markerStyle.Render(arrow) + " " + valueStyle.Render(sw.Hex) + " " + labelStyle.Render(sw.Label)
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusError {
		return statusErrorStyle.Render(m.status)
	}
	return statusOKStyle.Render(m.status)
}

func sectionTitle(section palette.Section) string {
	switch section {
	case palette.SectionShades:
		return "Shades"
	case palette.SectionHarmonies:
		return "Harmonies"
	default:
		return string(section)
	}
}
