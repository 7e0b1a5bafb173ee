package main

import (
	"errors"
	"fmt"
	"strings"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// ErrInvalidCoverField reports a --cover-field value not in Label=Value form.
var ErrInvalidCoverField = errors.New("invalid cover field")

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	cover  *md2docx.Cover
	footer *md2docx.Footer
	page   *md2docx.PageSettings
}

// buildConversionParams derives the per-file conversion inputs from config.
func buildConversionParams(cfg *config.Config) (*conversionParams, error) {
	params := &conversionParams{
		cover:  buildCover(cfg),
		footer: buildFooter(cfg),
		page:   buildPageSettings(cfg),
	}
	if err := params.page.Validate(); err != nil {
		return nil, err
	}
	if err := params.footer.Validate(); err != nil {
		return nil, err
	}
	if err := params.cover.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

// buildCover creates md2docx.Cover from config. The title is left to the
// converter when cfg.Document.Title is empty, so each file gets its own.
// The date is resolved by the converter with its clock.
func buildCover(cfg *config.Config) *md2docx.Cover {
	if !cfg.Cover.Enabled {
		return nil
	}

	c := &md2docx.Cover{
		Title:    cfg.Document.Title,
		Subtitle: cfg.Document.Subtitle,
		Author:   cfg.Document.Author,
		Version:  cfg.Document.Version,
		Date:     cfg.Document.Date,
	}
	for _, f := range cfg.Cover.Fields {
		c.Fields = append(c.Fields, md2docx.CoverField{Label: f.Label, Value: f.Value})
	}
	return c
}

// buildFooter creates md2docx.Footer from config.
func buildFooter(cfg *config.Config) *md2docx.Footer {
	if !cfg.Footer.Enabled {
		return nil
	}
	return &md2docx.Footer{
		Position:       cfg.Footer.Position,
		ShowPageNumber: cfg.Footer.ShowPageNumber,
		Text:           cfg.Footer.Text,
	}
}

// buildPageSettings creates md2docx.PageSettings from config, filling
// defaults for empty fields.
func buildPageSettings(cfg *config.Config) *md2docx.PageSettings {
	ps := &md2docx.PageSettings{
		Size:        cfg.Page.Size,
		Orientation: cfg.Page.Orientation,
		Margin:      cfg.Page.Margin,
	}
	if ps.Size == "" {
		ps.Size = md2docx.PageSizeLetter
	}
	if ps.Orientation == "" {
		ps.Orientation = md2docx.OrientationPortrait
	}
	if ps.Margin == 0 {
		ps.Margin = md2docx.DefaultMargin
	}
	return ps
}

// parseCoverFields parses "Label=Value" flag values. The value may be empty
// and may itself contain "=".
func parseCoverFields(values []string) ([]config.CoverField, error) {
	fields := make([]config.CoverField, 0, len(values))
	for _, v := range values {
		label, value, ok := strings.Cut(v, "=")
		label = strings.TrimSpace(label)
		if !ok || label == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCoverField, v)
		}
		fields = append(fields, config.CoverField{Label: label, Value: strings.TrimSpace(value)})
	}
	return fields, nil
}
