package color

const (
	shadeMinOffset = -7
	shadeMaxOffset = 6
	shadeStep      = 10
)

// ShadeCount is the fixed number of entries returned by Shades.
const ShadeCount = shadeMaxOffset - shadeMinOffset + 1

// BaseShadeIndex is the position of the unadjusted base color in Shades.
const BaseShadeIndex = -shadeMinOffset

// ShadeOffset returns the channel adjustment applied at shade index i.
func ShadeOffset(i int) int {
	return (i + shadeMinOffset) * shadeStep
}

// Adjust adds amount to every channel of c, clamping to [0,255].
func Adjust(c RGB, amount int) RGB {
	return RGB{
		R: Clamp(c.R+amount, 0, 255),
		G: Clamp(c.G+amount, 0, 255),
		B: Clamp(c.B+amount, 0, 255),
	}
}

// Shades returns the 14-step ramp around base, darkest offset first. Entries
// are not sorted by value; the order follows the offsets -70 through +60.
func Shades(base RGB) []RGB {
	shades := make([]RGB, 0, ShadeCount)
	for i := shadeMinOffset; i <= shadeMaxOffset; i++ {
		shades = append(shades, Adjust(base, i*shadeStep))
	}
	return shades
}
