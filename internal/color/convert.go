package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is the canonical color representation. Each channel is in [0,255].
type RGB struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
}

// HSL holds hue in degrees [0,360) and saturation/lightness in [0,1].
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// Hex returns the uppercase #RRGGBB encoding of c.
func (c RGB) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

// HSL converts c to hue/saturation/lightness.
func (c RGB) HSL() HSL {
	return RGBToHSL(c.R, c.G, c.B)
}

// String renders c as a CSS rgb() expression.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the uppercase #RRGGBB encoding of h.
func (h HSL) Hex() string {
	return HSLToHex(h.H, h.S, h.L)
}

// Clamp limits v to [lo,hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeHue folds any hue in degrees into [0,360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(math.Mod(h, 360)+360, 360)
	if h >= 360 {
		return 0
	}
	return h
}

// HexToRGB parses #RGB or #RRGGBB. The first character is treated as the
// prefix and not inspected. Any other length yields black, and a digit pair
// that is not valid hexadecimal yields 0 for that channel.
func HexToRGB(hex string) RGB {
	switch len(hex) {
	case 4:
		return RGB{
			R: parseChannel(hex[1:2] + hex[1:2]),
			G: parseChannel(hex[2:3] + hex[2:3]),
			B: parseChannel(hex[3:4] + hex[3:4]),
		}
	case 7:
		return RGB{
			R: parseChannel(hex[1:3]),
			G: parseChannel(hex[3:5]),
			B: parseChannel(hex[5:7]),
		}
	default:
		return RGB{}
	}
}

func parseChannel(pair string) int {
	v, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		return 0
	}
	return int(v)
}

// RGBToHex encodes the channels as #RRGGBB. Channels are clamped first.
// Zero padding comes from setting bit 24 and dropping the leading digit.
func RGBToHex(r, g, b int) string {
	packed := int64(1)<<24 + int64(Clamp(r, 0, 255))<<16 + int64(Clamp(g, 0, 255))<<8 + int64(Clamp(b, 0, 255))
	return "#" + strings.ToUpper(strconv.FormatInt(packed, 16)[1:])
}

// RGBToHSL converts channels in [0,255] to HSL using the min/max-channel
// method. Achromatic input yields H=0 and S=0.
func RGBToHSL(r, g, b int) HSL {
	rf := float64(Clamp(r, 0, 255)) / 255
	gf := float64(Clamp(g, 0, 255)) / 255
	bf := float64(Clamp(b, 0, 255)) / 255

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	l := (maxC + minC) / 2

	if maxC == minC {
		return HSL{H: 0, S: 0, L: l}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	h /= 6

	return HSL{H: NormalizeHue(h * 360), S: s, L: l}
}

// HSLToHex converts HSL to #RRGGBB. Hue is in degrees; saturation zero
// produces a gray at the given lightness.
func HSLToHex(h, s, l float64) string {
	var r, g, b float64

	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		t := h / 360

		r = hueToChannel(p, q, t+1.0/3)
		g = hueToChannel(p, q, t)
		b = hueToChannel(p, q, t-1.0/3)
	}

	return RGBToHex(toByte(r), toByte(g), toByte(b))
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func toByte(v float64) int {
	return int(math.Round(v * 255))
}
