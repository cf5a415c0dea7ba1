package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatchy/internal/color"
	swatchyerrors "github.com/alexisbeaulieu97/swatchy/pkg/errors"
)

func TestNewSessionStartsHidden(t *testing.T) {
	t.Parallel()

	s := NewSession("#FFFFFF", 1)
	require.False(t, s.Revealed())

	p := s.Derive()
	require.False(t, p.Revealed)
	require.Equal(t, "#FFFFFF", p.Hex)
	require.Equal(t, "rgb(255, 255, 255)", p.RGBText)
	require.Equal(t, "rgba(255, 255, 255, 1)", p.RGBAText)
}

func TestWithColorRevealsAndDoesNotMutate(t *testing.T) {
	t.Parallel()

	original := NewSession("#FFFFFF", 0.5)
	next := original.WithColor("#336699")

	require.Equal(t, "#FFFFFF", original.Color())
	require.False(t, original.Revealed())
	require.Equal(t, "#336699", next.Color())
	require.True(t, next.Revealed())
	require.InDelta(t, 0.5, next.Opacity(), 1e-12)
}

func TestWithOpacityClamps(t *testing.T) {
	t.Parallel()

	s := NewSession("#000000", 2)
	assert.InDelta(t, 1, s.Opacity(), 1e-12)
	assert.InDelta(t, 0, s.WithOpacity(-0.4).Opacity(), 1e-12)
	assert.InDelta(t, 0.3, s.WithOpacity(0.3).Opacity(), 1e-12)
}

func TestDerive(t *testing.T) {
	t.Parallel()

	p := NewSession("#808080", 0.5).WithColor("#808080").Derive()

	require.True(t, p.Revealed)
	require.Equal(t, color.RGB{R: 128, G: 128, B: 128}, p.RGB)
	require.Equal(t, "rgba(128, 128, 128, 0.5)", p.RGBAText)
	require.Equal(t, color.HexAlpha(128, 128, 128, 0.5), p.HexAlpha)

	require.Len(t, p.Shades, color.ShadeCount)
	require.Equal(t, "-70", p.Shades[0].Label)
	require.Equal(t, "0", p.Shades[color.BaseShadeIndex].Label)
	require.Equal(t, "#808080", p.Shades[color.BaseShadeIndex].Hex)
	require.Equal(t, "+60", p.Shades[13].Label)
	require.Equal(t, "#BCBCBC", p.Shades[13].Hex)

	require.Len(t, p.Harmonies, color.HarmonyCount)
	require.Equal(t, "complement", p.Harmonies[0].Label)
	require.Equal(t, "square", p.Harmonies[6].Label)
	for _, h := range p.Harmonies {
		require.Equal(t, "#808080", h.Hex)
	}
}

func TestDeriveShorthandInput(t *testing.T) {
	t.Parallel()

	p := NewSession("#f00", 1).Derive()
	require.Equal(t, color.RGB{R: 255}, p.RGB)
	require.Equal(t, "#00FFFF", p.Harmonies[0].Hex)
}

func TestParseOpacity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"0.25", 0.25, true},
		{" 1 ", 1, true},
		{"40%", 0.4, true},
		{"0", 0, true},
		{"1.2", 0, false},
		{"-0.1", 0, false},
		{"half", 0, false},
		{"NaN", 0, false},
	}

	for _, tc := range cases {
		got, err := ParseOpacity(tc.input)
		if !tc.ok {
			var validationErr *swatchyerrors.ValidationError
			require.ErrorAs(t, err, &validationErr, tc.input)
			require.Equal(t, tc.input, validationErr.Input)
			continue
		}
		require.NoError(t, err, tc.input)
		require.InDelta(t, tc.want, got, 1e-12, tc.input)
	}
}

func TestPaletteSwatchLookup(t *testing.T) {
	t.Parallel()

	p := NewSession("#336699", 1).Derive()

	sw, err := p.Swatch(SectionHarmonies, 0)
	require.NoError(t, err)
	require.Equal(t, "#996633", sw.Hex)

	sw, err = p.Swatch(SectionShades, color.BaseShadeIndex)
	require.NoError(t, err)
	require.Equal(t, "#336699", sw.Hex)

	_, err = p.Swatch(SectionShades, 14)
	require.Error(t, err)
	_, err = p.Swatch(SectionHarmonies, -1)
	require.Error(t, err)
	require.Nil(t, p.Section(Section("other")))
}

func TestParseSection(t *testing.T) {
	t.Parallel()

	s, err := ParseSection("shades")
	require.NoError(t, err)
	require.Equal(t, SectionShades, s)

	s, err = ParseSection("harmony")
	require.NoError(t, err)
	require.Equal(t, SectionHarmonies, s)

	_, err = ParseSection("tints")
	require.Error(t, err)
}
