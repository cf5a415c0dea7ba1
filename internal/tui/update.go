package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatchy/internal/config"
	"github.com/alexisbeaulieu97/swatchy/internal/palette"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.mode == ModeEdit {
			return m.handleEditKeys(msg)
		}
		return m.handleBrowseKeys(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ColorPickedMsg:
		return m.pickColor(msg.Hex)

	case OpacityChangedMsg:
		m.session = m.session.WithOpacity(msg.Opacity)
		m.derive()
		return m, nil

	case CopiedMsg:
		if msg.Result.OK {
			m.log.WithFields(map[string]any{"value": msg.Result.Value}).Info("swatch copied")
		} else {
			m.log.Error(msg.Result.Err, "clipboard write failed")
		}
		return m, m.setStatus(msg.Result.Message(), !msg.Result.OK)

	case ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.status = ""
			m.statusError = false
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		m.mode = ModeEdit
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.OpacityUp):
		m.session = m.session.WithOpacity(m.session.Opacity() + m.opacityStep)
		m.derive()
		return m, nil

	case key.Matches(msg, m.keys.OpacityDown):
		m.session = m.session.WithOpacity(m.session.Opacity() - m.opacityStep)
		m.derive()
		return m, nil

	case key.Matches(msg, m.keys.CopyHex):
		return m, copyCmd(m.clip, m.derived.Hex)

	case key.Matches(msg, m.keys.CopyRGBA):
		return m, copyCmd(m.clip, m.derived.RGBAText)
	}

	if !m.derived.Revealed {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Section):
		m.toggleSection()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copySelected()
	}

	return m, nil
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = ModeBrowse
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		value := strings.TrimSpace(m.input.Value())
		if !strings.HasPrefix(value, "#") {
			value = "#" + value
		}
		if !config.IsSwatchHex(value) {
			return m, m.setStatus(fmt.Sprintf("%s is not a #RGB or #RRGGBB color", value), true)
		}
		m.mode = ModeBrowse
		m.input.Blur()
		return m.pickColor(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleMouse copies the swatch under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || m.mode != ModeBrowse {
		return m, nil
	}
	for _, t := range m.targets() {
		if t.hit(msg.X, msg.Y) {
			m.section = t.section
			m.cursor = t.index
			return m, t.onClick()
		}
	}
	return m, nil
}

func (m Model) pickColor(hex string) (tea.Model, tea.Cmd) {
	m.session = m.session.WithColor(strings.ToUpper(hex))
	m.derive()
	m.log.WithColor(m.session.Color(), m.session.Opacity()).Info("base color changed")
	return m, nil
}

func (m Model) copySelected() tea.Cmd {
	sw, ok := m.Selected()
	if !ok {
		return nil
	}
	return copyCmd(m.clip, sw.Hex)
}

// target is a clickable swatch with its copy callback bound to the swatch value.
type target struct {
	section palette.Section
	index   int
	line    int
	col     int
	onClick func() tea.Cmd
}

func (t target) hit(x, y int) bool {
	return y == t.line && x >= t.col && x < t.col+swatchWidth
}

func (m Model) targets() []target {
	if !m.derived.Revealed {
		return nil
	}
	var out []target
	for _, row := range m.layout() {
		for i, sw := range m.derived.Section(row.section) {
			value := sw.Hex
			out = append(out, target{
				section: row.section,
				index:   i,
				line:    row.line,
				col:     i * (swatchWidth + swatchGap),
				onClick: func() tea.Cmd { return copyCmd(m.clip, value) },
			})
		}
	}
	return out
}
