package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarmoniesRed(t *testing.T) {
	t.Parallel()

	got := Harmonies("#FF0000")
	require.Len(t, got, HarmonyCount)
	require.Equal(t, 7, HarmonyCount)

	want := []string{"#00FFFF", "#FF8000", "#FF0080", "#00FF00", "#0000FF", "#80FF00", "#8000FF"}
	for i := range want {
		requireChannelsNear(t, HexToRGB(want[i]), HexToRGB(got[i]))
	}
	require.Equal(t, "#00FFFF", got[0], "complement of red is cyan")
}

func TestHarmoniesKeepSaturationAndLightness(t *testing.T) {
	t.Parallel()

	for _, hex := range []string{"#336699", "#FF0000", "#12AB34", "#C0FFEE"} {
		base := HexToRGB(hex).HSL()
		set := HarmonySet(hex)
		require.Len(t, set, HarmonyCount)

		complement := HexToRGB(set[0].Hex).HSL()
		assert.InDelta(t, NormalizeHue(base.H+180), complement.H, 2, "complement hue of %s", hex)
		assert.InDelta(t, base.S, complement.S, 0.02, "complement saturation of %s", hex)
		assert.InDelta(t, base.L, complement.L, 0.01, "complement lightness of %s", hex)

		for _, h := range set {
			hsl := HexToRGB(h.Hex).HSL()
			assert.InDelta(t, base.L, hsl.L, 0.01, "%s %s lightness", hex, h.Role)
		}
	}
}

func TestHarmonySetOrder(t *testing.T) {
	t.Parallel()

	set := HarmonySet("#336699")
	roles := make([]HarmonyRole, len(set))
	offsets := make([]float64, len(set))
	for i, h := range set {
		roles[i] = h.Role
		offsets[i] = h.Offset
	}

	require.Equal(t, []HarmonyRole{
		RoleComplement, RoleAnalogous, RoleAnalogous, RoleTriadic, RoleTriadic, RoleSquare, RoleSquare,
	}, roles)
	require.Equal(t, []float64{180, 30, -30, 120, -120, 90, 270}, offsets)
	require.Equal(t, "#996633", set[0].Hex)
}

func TestHarmoniesAchromatic(t *testing.T) {
	t.Parallel()

	for _, hex := range Harmonies("#808080") {
		require.Equal(t, "#808080", hex)
	}
	for _, hex := range Harmonies("bogus") {
		require.Equal(t, "#000000", hex, "unparseable input falls back to black")
	}
}

func TestHarmonyRoleString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "complement", RoleComplement.String())
	require.Equal(t, "analogous", RoleAnalogous.String())
	require.Equal(t, "triadic", RoleTriadic.String())
	require.Equal(t, "square", RoleSquare.String())
	require.Equal(t, "unknown", HarmonyRole(42).String())
}
