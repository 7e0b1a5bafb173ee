package docx

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Length is a distance in twentieths of a point (twips), the unit used by
// WordprocessingML for spacing, indentation and page geometry.
type Length int

// Pt returns a length in points.
func Pt(v float64) Length { return Length(math.Round(v * 20)) }

// Cm returns a length in centimetres.
func Cm(v float64) Length { return Length(math.Round(v * 1440 / 2.54)) }

// Inch returns a length in inches.
func Inch(v float64) Length { return Length(math.Round(v * 1440)) }

// Points returns the length in points.
func (l Length) Points() float64 { return float64(l) / 20 }

// halfPoints converts a font size to the unit of w:sz.
func (l Length) halfPoints() int { return int(math.Round(float64(l) / 10)) }

// ErrInvalidColor is returned by ParseColor for malformed colours.
var ErrInvalidColor = errors.New("invalid color")

// Color is an RGB colour as six uppercase hex digits, without a leading #.
type Color string

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("%02X%02X%02X", r, g, b))
}

// ParseColor accepts "#RRGGBB" or "RRGGBB" in any case.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for _, c := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return Color(strings.ToUpper(hex)), nil
}

// PageLayout describes the page size and margins of the single section.
// Width and Height are the portrait dimensions.
type PageLayout struct {
	Width     Length
	Height    Length
	Margin    Length
	Landscape bool
}

// Standard portrait paper sizes with the default margin.
var (
	PageLetter = PageLayout{Width: Inch(8.5), Height: Inch(11), Margin: Cm(2.5)}
	PageA4     = PageLayout{Width: 11906, Height: 16838, Margin: Cm(2.5)}
	PageLegal  = PageLayout{Width: Inch(8.5), Height: Inch(14), Margin: Cm(2.5)}
)

// Size returns the page width and height after orientation is applied.
func (p PageLayout) Size() (w, h Length) {
	if p.Landscape {
		return p.Height, p.Width
	}
	return p.Width, p.Height
}

// ContentWidth is the width between the left and right margins.
func (p PageLayout) ContentWidth() Length {
	w, _ := p.Size()
	if cw := w - 2*p.Margin; cw > 0 {
		return cw
	}
	return 0
}
