package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGBA renders a CSS rgba() expression. The alpha value is written as given,
// using the shortest decimal form that round-trips.
func RGBA(r, g, b int, a float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(a, 'f', -1, 64))
}

// HexAlpha packs the color and alpha into a single hex string.
//
// The alpha byte is added into the same accumulator as the 24-bit marker
// rather than appended as its own pair, so the leading digit dropped is the
// marker only when alpha is zero. For alpha of 255 the result is #00RRGGBB,
// for alpha in [15,254] it has seven digits and below that six. This is not
// CSS #RRGGBBAA order. Alpha is clamped to [0,255] after rounding.
func HexAlpha(r, g, b int, a float64) string {
	alpha := int64(Clamp(int(math.Round(a*255)), 0, 255))
	packed := int64(1)<<24 +
		int64(Clamp(r, 0, 255))<<16 +
		int64(Clamp(g, 0, 255))<<8 +
		int64(Clamp(b, 0, 255)) +
		alpha<<24
	return "#" + strings.ToUpper(strconv.FormatInt(packed, 16)[1:])
}
