package md2docx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx/internal/assets"
)

// DefaultTheme is the name of the built-in theme.
const DefaultTheme = assets.DefaultThemeName

// Theme holds the fonts, sizes (points) and colours used to render a document.
type Theme = assets.Theme

// Theme sections, re-exported for callers building a Theme in code.
type (
	ThemeFonts  = assets.ThemeFonts
	ThemeSizes  = assets.ThemeSizes
	ThemeColors = assets.ThemeColors
)

// ThemeLoader defines the contract for loading themes by name.
// Implementations may load from filesystem, embedded assets, a database, etc.
//
// The library provides NewThemeLoader() for filesystem-based loading with
// fallback to embedded themes. Implement this interface for custom backends.
type ThemeLoader interface {
	// LoadTheme loads a validated theme by name (without .yaml extension).
	// Returns ErrThemeNotFound if the theme doesn't exist.
	LoadTheme(name string) (*Theme, error)
}

// NewThemeLoader creates a ThemeLoader for the given base path.
// If basePath is empty, returns a loader using only embedded themes.
// If basePath is set, themes/{name}.yaml under it take precedence with
// fallback to embedded.
//
// Returns ErrInvalidAssetPath if basePath is set but not a readable directory.
func NewThemeLoader(basePath string) (ThemeLoader, error) {
	resolver, err := assets.NewThemeResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &themeLoaderAdapter{resolver: resolver}, nil
}

// Themes lists the names of the embedded themes.
func Themes() []string {
	return assets.NewEmbeddedLoader().Names()
}

// ClassicTheme returns a copy of the built-in theme, as a base for themes
// built in code.
func ClassicTheme() (*Theme, error) {
	t, err := assets.Classic()
	if err != nil {
		return nil, convertAssetError(err)
	}
	return t, nil
}

// LoadThemeFile reads a theme YAML file. Keys absent from the file keep the
// classic theme's values.
func LoadThemeFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, path)
		}
		return nil, fmt.Errorf("reading theme file %q: %w", path, err)
	}
	base, err := assets.Classic()
	if err != nil {
		return nil, convertAssetError(err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	theme, err := assets.ParseTheme(name, data, *base)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return theme, nil
}

// themeLoaderAdapter wraps the internal resolver to return public errors.
type themeLoaderAdapter struct {
	resolver *assets.ThemeResolver
}

func (a *themeLoaderAdapter) LoadTheme(name string) (*Theme, error) {
	t, err := a.resolver.LoadTheme(name)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return t, nil
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrThemeNotFound):
		return wrapError(ErrThemeNotFound, err)
	case errors.Is(err, assets.ErrInvalidTheme):
		return wrapError(ErrInvalidTheme, err)
	case errors.Is(err, assets.ErrInvalidBasePath):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrThemeNotFound, err) // Invalid name means not found
	default:
		return err
	}
}

// wrapError creates an error that keeps the original message and matches
// the public sentinel with errors.Is.
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
