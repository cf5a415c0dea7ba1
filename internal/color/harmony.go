package color

// HarmonyRole names the relationship between a harmony entry and its base color.
type HarmonyRole int

const (
	RoleComplement HarmonyRole = iota
	RoleAnalogous
	RoleTriadic
	RoleSquare
)

// String returns the lowercase role name.
func (r HarmonyRole) String() string {
	switch r {
	case RoleComplement:
		return "complement"
	case RoleAnalogous:
		return "analogous"
	case RoleTriadic:
		return "triadic"
	case RoleSquare:
		return "square"
	default:
		return "unknown"
	}
}

// Harmony is a single hue-rotated companion of a base color.
type Harmony struct {
	Role   HarmonyRole
	Offset float64
	Hex    string
}

// harmonyOffsets is a contract: consumers index the result by position.
var harmonyOffsets = [...]struct {
	role   HarmonyRole
	offset float64
}{
	{RoleComplement, 180},
	{RoleAnalogous, 30},
	{RoleAnalogous, -30},
	{RoleTriadic, 120},
	{RoleTriadic, -120},
	{RoleSquare, 90},
	{RoleSquare, 270},
}

// HarmonyCount is the fixed number of entries returned by Harmonies.
const HarmonyCount = len(harmonyOffsets)

// HarmonySet returns the role-tagged harmonies of hex in contract order:
// complement, analogous +30/-30, triadic +120/-120, square +90/+270.
// Saturation and lightness are kept from the base color.
func HarmonySet(hex string) []Harmony {
	base := HexToRGB(hex).HSL()
	set := make([]Harmony, 0, HarmonyCount)
	for _, h := range harmonyOffsets {
		set = append(set, Harmony{
			Role:   h.role,
			Offset: h.offset,
			Hex:    HSLToHex(NormalizeHue(base.H+h.offset), base.S, base.L),
		})
	}
	return set
}

// Harmonies returns the hex values of HarmonySet in the same order.
func Harmonies(hex string) []string {
	set := HarmonySet(hex)
	out := make([]string, len(set))
	for i, h := range set {
		out[i] = h.Hex
	}
	return out
}
