package palette

import (
	"fmt"

	"github.com/alexisbeaulieu97/swatchy/internal/color"
)

// Section identifies a group of swatches within a Palette.
type Section string

const (
	SectionShades    Section = "shade"
	SectionHarmonies Section = "harmony"
)

// ParseSection accepts singular or plural section names.
func ParseSection(name string) (Section, error) {
	switch name {
	case "shade", "shades":
		return SectionShades, nil
	case "harmony", "harmonies":
		return SectionHarmonies, nil
	default:
		return "", fmt.Errorf("unknown section %q (want shade or harmony)", name)
	}
}

// Swatch is one copyable derived color.
type Swatch struct {
	Label string    `json:"label" yaml:"label"`
	Hex   string    `json:"hex" yaml:"hex"`
	RGB   color.RGB `json:"rgb" yaml:"rgb"`
}

// Palette is the result of a single derivation pass.
type Palette struct {
	Hex       string    `json:"hex" yaml:"hex"`
	RGB       color.RGB `json:"rgb" yaml:"rgb"`
	HSL       color.HSL `json:"hsl" yaml:"hsl"`
	RGBText   string    `json:"rgb_text" yaml:"rgb_text"`
	RGBAText  string    `json:"rgba_text" yaml:"rgba_text"`
	HexAlpha  string    `json:"hex_alpha" yaml:"hex_alpha"`
	Opacity   float64   `json:"opacity" yaml:"opacity"`
	Revealed  bool      `json:"-" yaml:"-"`
	Shades    []Swatch  `json:"shades" yaml:"shades"`
	Harmonies []Swatch  `json:"harmonies" yaml:"harmonies"`
}

// Section returns the swatches of a section.
func (p Palette) Section(s Section) []Swatch {
	switch s {
	case SectionShades:
		return p.Shades
	case SectionHarmonies:
		return p.Harmonies
	default:
		return nil
	}
}

// Swatch looks up a swatch by section and zero-based index.
func (p Palette) Swatch(s Section, index int) (Swatch, error) {
	list := p.Section(s)
	if index < 0 || index >= len(list) {
		return Swatch{}, fmt.Errorf("%s index %d out of range [0,%d)", s, index, len(list))
	}
	return list[index], nil
}
