// Package tui is the interactive palette shell built on bubbletea.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatchy/internal/clipboard"
	"github.com/alexisbeaulieu97/swatchy/internal/color"
	"github.com/alexisbeaulieu97/swatchy/internal/logger"
	"github.com/alexisbeaulieu97/swatchy/internal/palette"
)

const (
	swatchWidth = 6
	swatchGap   = 1

	defaultStatusTimeout = 2 * time.Second
	defaultOpacityStep   = 0.05
)

// Options configures a Model.
type Options struct {
	Session       palette.Session
	Clipboard     clipboard.Writer
	Logger        *logger.Logger
	StatusTimeout time.Duration
	OpacityStep   float64
	Unicode       bool
}

// Model is the bubbletea state of the palette screen.
type Model struct {
	// Core data
	session palette.Session
	derived palette.Palette
	clip    clipboard.Writer
	log     *logger.Logger

	// UI state
	mode    Mode
	section palette.Section
	cursor  int
	keys    KeyMap
	help    help.Model
	input   textinput.Model

	// Status line
	status      string
	statusError bool
	statusSeq   int

	// Dimensions
	width  int
	height int

	// Configuration
	statusTimeout time.Duration
	opacityStep   float64
	useUnicode    bool
}

// NewModel creates the palette screen.
func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "#RRGGBB"
	ti.CharLimit = 7
	ti.Width = 10
	ti.Prompt = "color: "

	m := Model{
		session:       opts.Session,
		clip:          opts.Clipboard,
		log:           opts.Logger,
		mode:          ModeBrowse,
		section:       palette.SectionShades,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		input:         ti,
		statusTimeout: opts.StatusTimeout,
		opacityStep:   opts.OpacityStep,
		useUnicode:    opts.Unicode,
		width:         80,
		height:        24,
	}
	if m.log == nil {
		m.log = logger.Discard()
	}
	if m.statusTimeout <= 0 {
		m.statusTimeout = defaultStatusTimeout
	}
	if m.opacityStep <= 0 {
		m.opacityStep = defaultOpacityStep
	}
	m.cursor = color.BaseShadeIndex
	m.derive()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Session returns the current view-model state.
func (m Model) Session() palette.Session {
	return m.session
}

// Palette returns the most recent derivation.
func (m Model) Palette() palette.Palette {
	return m.derived
}

// Selected returns the swatch under the cursor.
func (m Model) Selected() (palette.Swatch, bool) {
	if !m.derived.Revealed {
		return palette.Swatch{}, false
	}
	sw, err := m.derived.Swatch(m.section, m.cursor)
	if err != nil {
		return palette.Swatch{}, false
	}
	return sw, true
}

// Status returns the status line text and whether it reports a failure.
func (m Model) Status() (string, bool) {
	return m.status, m.statusError
}

// Mode returns the current screen mode.
func (m Model) Mode() Mode {
	return m.mode
}

func (m *Model) derive() {
	m.derived = m.session.Derive()
	if n := len(m.derived.Section(m.section)); m.cursor >= n {
		m.cursor = n - 1
	}
	m.log.WithColor(m.session.Color(), m.session.Opacity()).Debug("palette derived")
}

func (m *Model) moveCursor(delta int) {
	n := len(m.derived.Section(m.section))
	if n == 0 {
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

func (m *Model) toggleSection() {
	if m.section == palette.SectionShades {
		m.section = palette.SectionHarmonies
	} else {
		m.section = palette.SectionShades
	}
	if n := len(m.derived.Section(m.section)); m.cursor >= n {
		m.cursor = n - 1
	}
}

// setStatus shows msg and returns the command that clears it later.
func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.statusSeq++
	m.status = msg
	m.statusError = isError
	return clearStatusCmd(m.statusSeq, m.statusTimeout)
}
