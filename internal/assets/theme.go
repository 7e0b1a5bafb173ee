package assets

import (
	"fmt"

	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// DefaultThemeName is the built-in theme every other theme extends.
const DefaultThemeName = "classic"

// Size limits in points.
const (
	minFontSize = 4
	maxFontSize = 96
)

// Theme holds the fonts, sizes (in points) and colours used to render a
// document. Colours are hex strings, with or without a leading #.
type Theme struct {
	Name   string      `yaml:"name"`
	Fonts  ThemeFonts  `yaml:"fonts"`
	Sizes  ThemeSizes  `yaml:"sizes"`
	Colors ThemeColors `yaml:"colors"`
}

type ThemeFonts struct {
	Body string `yaml:"body"`
	Code string `yaml:"code"`
}

type ThemeSizes struct {
	Body       float64 `yaml:"body"`
	Heading1   float64 `yaml:"heading1"`
	Heading2   float64 `yaml:"heading2"`
	Heading3   float64 `yaml:"heading3"`
	InlineCode float64 `yaml:"inlineCode"`
	Code       float64 `yaml:"code"`
	Table      float64 `yaml:"table"`
	Title      float64 `yaml:"title"`
	Subtitle   float64 `yaml:"subtitle"`
	Separator  float64 `yaml:"separator"`
	CoverMeta  float64 `yaml:"coverMeta"`
	Footer     float64 `yaml:"footer"`
}

type ThemeColors struct {
	Accent     string `yaml:"accent"`     // headings, title page, table header fill
	HeaderText string `yaml:"headerText"` // table header text
	InlineCode string `yaml:"inlineCode"`
	CodeText   string `yaml:"codeText"`
	CodeFill   string `yaml:"codeFill"`
	Stripe     string `yaml:"stripe"` // alternate table rows
	Subtitle   string `yaml:"subtitle"`
	CoverValue string `yaml:"coverValue"`
	Footer     string `yaml:"footer"`
}

// HeadingSize returns the size for a heading level, clamped to 1..3.
func (t *Theme) HeadingSize(level int) float64 {
	switch {
	case level <= 1:
		return t.Sizes.Heading1
	case level == 2:
		return t.Sizes.Heading2
	default:
		return t.Sizes.Heading3
	}
}

// Validate checks that every font is named, every size is in range and every
// colour parses.
func (t *Theme) Validate() error {
	if t.Fonts.Body == "" || t.Fonts.Code == "" {
		return fmt.Errorf("%w: %s: fonts.body and fonts.code are required", ErrInvalidTheme, t.Name)
	}

	sizes := []struct {
		name  string
		value float64
	}{
		{"body", t.Sizes.Body},
		{"heading1", t.Sizes.Heading1},
		{"heading2", t.Sizes.Heading2},
		{"heading3", t.Sizes.Heading3},
		{"inlineCode", t.Sizes.InlineCode},
		{"code", t.Sizes.Code},
		{"table", t.Sizes.Table},
		{"title", t.Sizes.Title},
		{"subtitle", t.Sizes.Subtitle},
		{"separator", t.Sizes.Separator},
		{"coverMeta", t.Sizes.CoverMeta},
		{"footer", t.Sizes.Footer},
	}
	for _, s := range sizes {
		if s.value < minFontSize || s.value > maxFontSize {
			return fmt.Errorf("%w: %s: sizes.%s must be between %d and %d, got %g",
				ErrInvalidTheme, t.Name, s.name, minFontSize, maxFontSize, s.value)
		}
	}

	colors := []struct {
		name  string
		value string
	}{
		{"accent", t.Colors.Accent},
		{"headerText", t.Colors.HeaderText},
		{"inlineCode", t.Colors.InlineCode},
		{"codeText", t.Colors.CodeText},
		{"codeFill", t.Colors.CodeFill},
		{"stripe", t.Colors.Stripe},
		{"subtitle", t.Colors.Subtitle},
		{"coverValue", t.Colors.CoverValue},
		{"footer", t.Colors.Footer},
	}
	for _, c := range colors {
		if _, err := docx.ParseColor(c.value); err != nil {
			return fmt.Errorf("%w: %s: colors.%s: %v", ErrInvalidTheme, t.Name, c.name, err)
		}
	}
	return nil
}

// ParseTheme decodes a theme file on top of base and validates the result.
// Unknown keys are rejected. An empty name in the file is replaced by name.
func ParseTheme(name string, data []byte, base Theme) (*Theme, error) {
	theme := base
	theme.Name = ""
	if err := yamlutil.UnmarshalStrict(data, &theme); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTheme, name, err)
	}
	if theme.Name == "" {
		theme.Name = name
	}
	if err := theme.Validate(); err != nil {
		return nil, err
	}
	return &theme, nil
}
