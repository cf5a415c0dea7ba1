// Package palette holds the view-model that the interactive shell and the
// CLI derive swatches from. A Session is a value; every change returns a new
// Session instead of mutating shared state.
package palette

import (
	"math"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/swatchy/internal/color"
	swatchyerrors "github.com/alexisbeaulieu97/swatchy/pkg/errors"
)

// Session is the current base color and opacity.
type Session struct {
	base     string
	opacity  float64
	revealed bool
}

// NewSession starts a session. Derived sections stay hidden until the
// first WithColor call, mirroring a picker that has not been touched yet.
func NewSession(hex string, opacity float64) Session {
	return Session{base: hex, opacity: clampOpacity(opacity)}
}

// WithColor returns a session showing hex and its derived swatches.
func (s Session) WithColor(hex string) Session {
	s.base = hex
	s.revealed = true
	return s
}

// WithOpacity returns a session with opacity clamped to [0,1].
func (s Session) WithOpacity(a float64) Session {
	s.opacity = clampOpacity(a)
	return s
}

// Reveal returns a session whose derived sections are visible.
func (s Session) Reveal() Session {
	s.revealed = true
	return s
}

// Color returns the base color exactly as supplied.
func (s Session) Color() string { return s.base }

// Opacity returns the current opacity.
func (s Session) Opacity() float64 { return s.opacity }

// Revealed reports whether shades and harmonies should be shown.
func (s Session) Revealed() bool { return s.revealed }

// ParseOpacity reads user input such as "0.25" or "25%".
func ParseOpacity(input string) (float64, error) {
	raw := strings.TrimSpace(input)
	scale := 1.0
	if strings.HasSuffix(raw, "%") {
		raw = strings.TrimSuffix(raw, "%")
		scale = 100
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, swatchyerrors.NewInputError("opacity", input, "must be a number", err)
	}
	v /= scale
	if math.IsNaN(v) || v < 0 || v > 1 {
		return 0, swatchyerrors.NewInputError("opacity", input, "must be between 0 and 1", nil)
	}
	return v, nil
}

func clampOpacity(a float64) float64 {
	if math.IsNaN(a) || a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// Derive runs one derivation pass over the session.
func (s Session) Derive() Palette {
	rgb := color.HexToRGB(s.base)

	p := Palette{
		Hex:      s.base,
		RGB:      rgb,
		HSL:      rgb.HSL(),
		RGBText:  rgb.String(),
		RGBAText: color.RGBA(rgb.R, rgb.G, rgb.B, s.opacity),
		HexAlpha: color.HexAlpha(rgb.R, rgb.G, rgb.B, s.opacity),
		Opacity:  s.opacity,
		Revealed: s.revealed,
	}

	for i, shade := range color.Shades(rgb) {
		p.Shades = append(p.Shades, Swatch{
			Label: shadeLabel(color.ShadeOffset(i)),
			Hex:   shade.Hex(),
			RGB:   shade,
		})
	}

	for _, h := range color.HarmonySet(s.base) {
		p.Harmonies = append(p.Harmonies, Swatch{
			Label: h.Role.String(),
			Hex:   h.Hex,
			RGB:   color.HexToRGB(h.Hex),
		})
	}

	return p
}

func shadeLabel(offset int) string {
	if offset > 0 {
		return "+" + strconv.Itoa(offset)
	}
	return strconv.Itoa(offset)
}
