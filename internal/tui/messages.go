package tui

import (
	"github.com/alexisbeaulieu97/swatchy/internal/clipboard"
)

// Mode determines which screen to render.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeEdit
)

// CopiedMsg carries the outcome of a clipboard write.
type CopiedMsg struct {
	Result clipboard.Result
}

// ClearStatusMsg dismisses the status line if it is still the one shown
// when the timer was started.
type ClearStatusMsg struct {
	Seq int
}

// ColorPickedMsg sets a new base color, as if chosen in a picker.
type ColorPickedMsg struct {
	Hex string
}

// OpacityChangedMsg sets a new opacity.
type OpacityChangedMsg struct {
	Opacity float64
}
