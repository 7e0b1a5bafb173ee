package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

//go:embed themes/*.yaml
var themes embed.FS

// classicTheme parses the embedded base theme once.
var classicTheme = sync.OnceValues(func() (*Theme, error) {
	data, err := themes.ReadFile("themes/" + DefaultThemeName + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, DefaultThemeName)
	}
	return ParseTheme(DefaultThemeName, data, Theme{})
})

// Classic returns a copy of the built-in base theme.
func Classic() (*Theme, error) {
	base, err := classicTheme()
	if err != nil {
		return nil, err
	}
	theme := *base
	return &theme, nil
}

// EmbeddedLoader loads themes compiled into the binary.
type EmbeddedLoader struct{}

func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

func (e *EmbeddedLoader) LoadTheme(name string) (*Theme, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}
	if name == DefaultThemeName {
		return Classic()
	}

	data, err := themes.ReadFile("themes/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	base, err := Classic()
	if err != nil {
		return nil, err
	}
	return ParseTheme(name, data, *base)
}

// Names lists the embedded themes in alphabetical order.
func (e *EmbeddedLoader) Names() []string {
	entries, err := fs.ReadDir(themes, "themes")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ ThemeLoader = (*EmbeddedLoader)(nil)
