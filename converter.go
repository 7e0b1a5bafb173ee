package md2docx

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/frontmatter"
	"github.com/alnah/go-md2docx/internal/mdscan"
)

// Converter turns Markdown into .docx documents.
// Create with NewConverter() and call Convert() for each document. A
// Converter is immutable after construction and safe for concurrent use.
type Converter struct {
	cfg     converterConfig
	theme   *Theme
	palette palette
}

// NewConverter creates a Converter with the classic theme.
// Use options to customize behavior (e.g., WithTheme, WithAssetPath, WithClock).
// Returns error if the theme cannot be loaded or is invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			theme:       DefaultTheme,
			frontMatter: true,
			now:         time.Now,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	// WithThemeLoader wins over WithAssetPath.
	if c.cfg.loader == nil {
		loader, err := NewThemeLoader(c.cfg.assetPath)
		if err != nil {
			return nil, err
		}
		c.cfg.loader = loader
	}

	if err := c.resolveTheme(); err != nil {
		return nil, err
	}
	return c, nil
}

// Theme returns the theme used for rendering.
func (c *Converter) Theme() Theme {
	return *c.theme
}

// resolveTheme resolves the theme input (name or path) and prepares its
// palette. Called during NewConverter() after options are applied.
func (c *Converter) resolveTheme() error {
	input := c.cfg.theme
	if input == "" {
		input = DefaultTheme
	}

	var (
		theme *Theme
		err   error
	)
	if fileutil.IsFilePath(input) {
		theme, err = LoadThemeFile(input)
	} else {
		theme, err = c.cfg.loader.LoadTheme(input)
	}
	if err != nil {
		return fmt.Errorf("loading theme %q: %w", input, err)
	}
	if theme == nil {
		return fmt.Errorf("%w: loader returned no theme for %q", ErrThemeNotFound, input)
	}
	// Custom loaders may skip validation.
	if err := theme.Validate(); err != nil {
		return convertAssetError(err)
	}

	p, err := newPalette(theme)
	if err != nil {
		return err
	}
	c.theme = theme
	c.palette = p
	return nil
}

// Convert parses the Markdown in input and returns the encoded document.
// The context is checked between stages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	// Front matter is optional metadata. A block that does not decode is
	// kept and converted as Markdown.
	markdown := input.Markdown
	var meta frontmatter.Meta
	if c.cfg.frontMatter {
		if m, body, err := frontmatter.Split(markdown); err == nil {
			meta, markdown = m, body
		}
	}

	parsed := mdscan.Parse(markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	now := c.cfg.now()
	title := resolveTitle(input.Cover, meta, parsed.Title, input.Name)
	cover, err := buildCover(input.Cover, meta, title, now)
	if err != nil {
		return nil, err
	}

	r := newRenderer(c.palette, input.Page.layout())
	r.doc.Title = title
	r.doc.Created = now
	if cover != nil {
		r.doc.Author = cover.Author
		r.titlePage(cover)
	} else {
		r.doc.Author = meta.Author
	}
	r.footer(input.Footer)

	for _, b := range parsed.Blocks {
		r.block(b)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	data, err := r.doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentBuild, err)
	}

	return &ConvertResult{
		DOCX:  data,
		Title: title,
		Stats: r.stats,
	}, nil
}

// validateInput checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their input validated earlier by Config.Validate() at config load time.
func (c *Converter) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	if err := input.Footer.Validate(); err != nil {
		return err
	}
	if err := input.Cover.Validate(); err != nil {
		return err
	}
	return nil
}

// resolveTitle picks the document title: explicit cover title, front matter
// title, first top-level heading, then the input name without extension.
func resolveTitle(cover *Cover, meta frontmatter.Meta, heading, name string) string {
	if cover != nil && strings.TrimSpace(cover.Title) != "" {
		return strings.TrimSpace(cover.Title)
	}
	if meta.Title != "" {
		return meta.Title
	}
	if heading != "" {
		return heading
	}
	return titleFromName(name)
}

func titleFromName(name string) string {
	if name == "" {
		return ""
	}
	base := name
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}

// buildCover merges front matter into the configured cover and resolves the
// date. Configured values win; front matter fills the gaps. Returns nil when
// no title page is requested.
func buildCover(cover *Cover, meta frontmatter.Meta, title string, now time.Time) (*Cover, error) {
	if cover == nil {
		return nil, nil
	}
	out := *cover
	out.Title = title
	out.Subtitle = firstNonEmpty(out.Subtitle, meta.Subtitle)
	out.Author = firstNonEmpty(out.Author, meta.Author)
	out.Version = firstNonEmpty(out.Version, meta.Version)
	out.Date = firstNonEmpty(out.Date, meta.Date)
	if len(out.Fields) == 0 {
		for _, f := range meta.Fields {
			out.Fields = append(out.Fields, CoverField{Label: f.Label, Value: f.Value})
		}
	}

	date, err := ResolveDate(out.Date, now)
	if err != nil {
		return nil, err
	}
	out.Date = date
	return &out, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
