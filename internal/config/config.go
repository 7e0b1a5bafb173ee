// Package config loads and validates md2docx configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alnah/go-md2docx/internal/dateutil"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
	ErrInvalidField     = errors.New("invalid config value")
	ErrTooManyFields    = errors.New("too many cover fields")
	ErrExcludePattern   = errors.New("invalid exclude pattern")
	ErrEmptyFieldLabel  = errors.New("cover field label cannot be empty")
	ErrInvalidDateValue = errors.New("invalid document date")
)

// Field length limits.
const (
	MaxTitleLength      = 200
	MaxSubtitleLength   = 200
	MaxAuthorLength     = 100
	MaxVersionLength    = 50
	MaxDateLength       = 30
	MaxTextLength       = 500
	MaxLabelLength      = 100
	MaxValueLength      = 200
	MaxThemeLength      = 100
	MaxPathLength       = 4096
	MaxPageSizeLength   = 10
	MaxOrientationLen   = 10
	MaxCoverFields      = 20
	MaxExcludePatterns  = 100
	MaxExcludePatternSz = 256
)

// appDir is the directory name under the user config directory.
const appDir = "go-md2docx"

// Config holds all configuration for document generation.
type Config struct {
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	Theme       string            `yaml:"theme"`
	Assets      AssetsConfig      `yaml:"assets"`
	Document    DocumentConfig    `yaml:"document"`
	Cover       CoverConfig       `yaml:"cover"`
	Footer      FooterConfig      `yaml:"footer"`
	Page        PageConfig        `yaml:"page"`
	FrontMatter FrontMatterConfig `yaml:"frontMatter"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string   `yaml:"defaultDir"` // Default input directory (empty = must specify)
	Exclude    []string `yaml:"exclude"`    // Glob patterns relative to the input directory
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// AssetsConfig defines where custom themes are looked up.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = embedded themes only
}

// DocumentConfig holds document metadata shown on the title page and
// written to the document properties.
type DocumentConfig struct {
	Title    string `yaml:"title"`    // Empty = front matter, first heading, then file name
	Subtitle string `yaml:"subtitle"`
	Author   string `yaml:"author"`
	Version  string `yaml:"version"`
	Date     string `yaml:"date"` // Literal, "auto" or "auto:FORMAT"
}

// CoverConfig defines title page options.
type CoverConfig struct {
	Enabled bool         `yaml:"enabled"`
	Fields  []CoverField `yaml:"fields"` // Extra "Label: value" lines, in order
}

// CoverField is one labelled line on the title page.
type CoverField struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// FooterConfig defines page footer options.
type FooterConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Position       string `yaml:"position"` // "left", "center", "right" (default: "center")
	ShowPageNumber bool   `yaml:"showPageNumber"`
	Text           string `yaml:"text"` // Optional free-form text
}

// PageConfig defines page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (default: "letter")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // centimetres (default: 2.5)
}

// FrontMatterConfig controls YAML front matter handling.
type FrontMatterConfig struct {
	Disabled bool `yaml:"disabled"` // Treat a leading "---" block as Markdown
}

// Validate checks field lengths and value formats.
// Called automatically by LoadConfig, but available for callers that build
// a Config manually. Page size, orientation and margin ranges are checked by
// the converter.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"theme", c.Theme, MaxThemeLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.subtitle", c.Document.Subtitle, MaxSubtitleLength},
		{"document.author", c.Document.Author, MaxAuthorLength},
		{"document.version", c.Document.Version, MaxVersionLength},
		{"document.date", c.Document.Date, MaxDateLength},
		{"footer.text", c.Footer.Text, MaxTextLength},
		{"page.size", c.Page.Size, MaxPageSizeLength},
		{"page.orientation", c.Page.Orientation, MaxOrientationLen},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if err := dateutil.Validate(c.Document.Date); err != nil {
		return fmt.Errorf("%w: document.date: %v", ErrInvalidDateValue, err)
	}

	if c.Footer.Position != "" {
		switch strings.ToLower(c.Footer.Position) {
		case "left", "center", "right":
		default:
			return fmt.Errorf("%w: footer.position %q (must be left, center, or right)", ErrInvalidField, c.Footer.Position)
		}
	}

	if err := validateCoverFields(c.Cover.Fields); err != nil {
		return err
	}
	return ValidateExcludes(c.Input.Exclude)
}

func validateCoverFields(fields []CoverField) error {
	if len(fields) > MaxCoverFields {
		return fmt.Errorf("%w: %d (max %d)", ErrTooManyFields, len(fields), MaxCoverFields)
	}
	for i, f := range fields {
		if strings.TrimSpace(f.Label) == "" {
			return fmt.Errorf("%w: cover.fields[%d]", ErrEmptyFieldLabel, i)
		}
		if err := validateFieldLength(fmt.Sprintf("cover.fields[%d].label", i), f.Label, MaxLabelLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("cover.fields[%d].value", i), f.Value, MaxValueLength); err != nil {
			return err
		}
	}
	return nil
}

// ValidateExcludes checks glob syntax of exclude patterns. Patterns use
// doublestar syntax ("drafts/**", "**/*.draft.md").
func ValidateExcludes(patterns []string) error {
	if len(patterns) > MaxExcludePatterns {
		return fmt.Errorf("%w: %d patterns (max %d)", ErrExcludePattern, len(patterns), MaxExcludePatterns)
	}
	for _, p := range patterns {
		if len(p) > MaxExcludePatternSz {
			return fmt.Errorf("%w: pattern exceeds %d characters", ErrExcludePattern, MaxExcludePatternSz)
		}
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return fmt.Errorf("%w: %q", ErrExcludePattern, p)
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given: a
// title page and a centred page-number footer on Letter paper with the
// classic theme.
func DefaultConfig() *Config {
	return &Config{
		Theme:  "classic",
		Cover:  CoverConfig{Enabled: true},
		Footer: FooterConfig{Enabled: true, Position: "center", ShowPageNumber: true},
		Page:   PageConfig{Size: "letter", Orientation: "portrait", Margin: 2.5},
	}
}

// NotFoundError reports the locations searched for a named config.
// It matches ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Paths []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: tried %s", ErrConfigNotFound, strings.Join(e.Paths, ", "))
}

func (e *NotFoundError) Is(target error) bool { return target == ErrConfigNotFound }

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Paths: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-md2docx/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		tried = append(tried, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", &NotFoundError{Paths: tried}
}
