package md2docx

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-md2docx/internal/docx"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// PageSizes lists the accepted page sizes.
var PageSizes = []string{PageSizeLetter, PageSizeA4, PageSizeLegal}

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in centimetres.
const (
	MinMargin     = 0.5
	MaxMargin     = 7.5
	DefaultMargin = 2.5
)

// Footer position constants.
const (
	PositionLeft   = "left"
	PositionCenter = "center"
	PositionRight  = "right"
)

// PageSettings configures page dimensions. Empty fields take defaults:
// letter, portrait, 2.5 cm.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // centimetres, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}
	switch strings.ToLower(p.Size) {
	case "", PageSizeLetter, PageSizeA4, PageSizeLegal:
	default:
		return fmt.Errorf("%w: %q (must be letter, a4, or legal)", ErrInvalidPageSize, p.Size)
	}
	switch strings.ToLower(p.Orientation) {
	case "", OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q (must be portrait or landscape)", ErrInvalidOrientation, p.Orientation)
	}
	if p.Margin != 0 && (p.Margin < MinMargin || p.Margin > MaxMargin) {
		return fmt.Errorf("%w: %.2f (must be between %.1f and %.1f cm)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}
	return nil
}

// layout converts validated settings to the section geometry.
func (p *PageSettings) layout() docx.PageLayout {
	if p == nil {
		return docx.PageLetter
	}
	var l docx.PageLayout
	switch strings.ToLower(p.Size) {
	case PageSizeA4:
		l = docx.PageA4
	case PageSizeLegal:
		l = docx.PageLegal
	default:
		l = docx.PageLetter
	}
	if p.Margin != 0 {
		l.Margin = docx.Cm(p.Margin)
	}
	l.Landscape = strings.EqualFold(p.Orientation, OrientationLandscape)
	return l
}

// Footer configures the page footer. A nil Footer means no footer.
type Footer struct {
	Position       string // "left", "center", "right" (default: "center")
	ShowPageNumber bool
	Text           string // Optional text, placed before the page number
}

// Validate checks that footer settings are valid.
// Returns nil if f is nil (nil means no footer).
func (f *Footer) Validate() error {
	if f == nil {
		return nil
	}
	switch strings.ToLower(f.Position) {
	case "", PositionLeft, PositionCenter, PositionRight:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidFooterPosition, f.Position)
	}
}

func (f *Footer) isEmpty() bool {
	return f == nil || (!f.ShowPageNumber && strings.TrimSpace(f.Text) == "")
}

// Cover configures the title page. A nil Cover means no title page.
type Cover struct {
	Title    string // Empty = front matter title, first "#" heading, then Input.Name
	Subtitle string
	Author   string
	Version  string
	Date     string // Literal, "auto", "auto:FORMAT" or "auto:preset"
	Fields   []CoverField
}

// CoverField is one centred "Label: value" line on the title page.
type CoverField struct {
	Label string
	Value string
}

// Validate checks that every field has a label and the date syntax is valid.
// Returns nil if c is nil.
func (c *Cover) Validate() error {
	if c == nil {
		return nil
	}
	for i, f := range c.Fields {
		if strings.TrimSpace(f.Label) == "" {
			return fmt.Errorf("%w: field %d has no label", ErrInvalidCoverField, i)
		}
	}
	if _, err := ResolveDate(c.Date, zeroTime); err != nil {
		return err
	}
	return nil
}

// Input contains conversion parameters.
type Input struct {
	Markdown string        // Markdown content (required)
	Name     string        // Source name, last resort for the title (optional)
	Cover    *Cover        // Title page (optional, nil = none)
	Footer   *Footer       // Footer (optional, nil = none)
	Page     *PageSettings // Page settings (optional, nil = defaults)
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	DOCX  []byte // Encoded .docx archive
	Title string // Resolved document title
	Stats Stats
}

// Stats counts the blocks written to the document body.
type Stats struct {
	Headings   int
	Paragraphs int
	ListItems  int
	Tables     int
	CodeBlocks int
	// Languages lists canonical names of recognised fence languages, in
	// order of first appearance.
	Languages []string
}

// Option configures a Converter.
type Option func(*Converter)

// WithTheme selects a theme by name (embedded or under the asset path) or
// by file path to a theme YAML file.
func WithTheme(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.theme = nameOrPath
	}
}

// WithAssetPath sets a directory whose themes/ subdirectory is searched
// before the embedded themes.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithThemeLoader sets a custom theme loader. It takes precedence over
// WithAssetPath.
func WithThemeLoader(loader ThemeLoader) Option {
	return func(c *Converter) {
		c.cfg.loader = loader
	}
}

// WithFrontMatter controls whether a leading YAML front matter block is
// read as metadata (default true). When disabled the block is converted as
// Markdown.
func WithFrontMatter(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.frontMatter = enabled
	}
}

// WithClock sets the time source used to resolve "auto" dates.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		if now != nil {
			c.cfg.now = now
		}
	}
}

// converterConfig holds configuration applied by options.
type converterConfig struct {
	theme       string
	assetPath   string
	loader      ThemeLoader
	frontMatter bool
	now         func() time.Time
}
