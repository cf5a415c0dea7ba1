package color

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShadesGray(t *testing.T) {
	t.Parallel()

	shades := Shades(RGB{128, 128, 128})
	require.Len(t, shades, ShadeCount)
	require.Equal(t, 14, ShadeCount)
	require.Equal(t, RGB{128, 128, 128}, shades[BaseShadeIndex])
	require.Equal(t, RGB{58, 58, 58}, shades[0])
	require.Equal(t, RGB{188, 188, 188}, shades[13])
}

func TestShadesClamp(t *testing.T) {
	t.Parallel()

	shades := Shades(RGB{250, 5, 128})
	require.Equal(t, RGB{180, 0, 58}, shades[0])
	require.Equal(t, RGB{255, 65, 188}, shades[13])
	require.Equal(t, RGB{250, 5, 128}, shades[7])

	black := Shades(RGB{})
	require.Equal(t, RGB{}, black[0], "darkening black stays black")
	require.Equal(t, RGB{60, 60, 60}, black[13])
}

func TestShadesMonotonic(t *testing.T) {
	t.Parallel()

	bases := []RGB{{0, 0, 0}, {255, 255, 255}, {12, 200, 99}, {240, 15, 70}, {51, 102, 153}}
	for _, base := range bases {
		shades := Shades(base)
		require.Len(t, shades, ShadeCount)
		require.Equal(t, base, shades[BaseShadeIndex])
		for i := 1; i < len(shades); i++ {
			prev, cur := shades[i-1], shades[i]
			require.LessOrEqual(t, prev.R, cur.R, "red at %d for %v", i, base)
			require.LessOrEqual(t, prev.G, cur.G, "green at %d for %v", i, base)
			require.LessOrEqual(t, prev.B, cur.B, "blue at %d for %v", i, base)
		}
	}
}

func TestShadeOffset(t *testing.T) {
	t.Parallel()

	require.Equal(t, -70, ShadeOffset(0))
	require.Equal(t, 0, ShadeOffset(BaseShadeIndex))
	require.Equal(t, 60, ShadeOffset(ShadeCount-1))
}
