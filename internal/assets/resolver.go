package assets

import "errors"

// ThemeResolver combines custom and embedded loaders. When a custom loader is
// configured it is tried first, and embedded themes are used only when the
// custom directory has no theme of that name.
type ThemeResolver struct {
	custom   ThemeLoader // nil if no custom path configured
	embedded *EmbeddedLoader
}

// NewThemeResolver creates a ThemeResolver.
// If customBasePath is empty, only embedded themes are used.
// Returns error if customBasePath is set but invalid.
func NewThemeResolver(customBasePath string) (*ThemeResolver, error) {
	resolver := &ThemeResolver{embedded: NewEmbeddedLoader()}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

func (r *ThemeResolver) LoadTheme(name string) (*Theme, error) {
	if r.custom == nil {
		return r.embedded.LoadTheme(name)
	}

	theme, err := r.custom.LoadTheme(name)
	if err == nil {
		return theme, nil
	}
	// Invalid or unreadable custom themes are reported, not masked.
	if !errors.Is(err, ErrThemeNotFound) {
		return nil, err
	}
	return r.embedded.LoadTheme(name)
}

// Available lists the embedded theme names, for error hints.
func (r *ThemeResolver) Available() []string {
	return r.embedded.Names()
}

// HasCustomLoader returns true if a custom theme directory is configured.
func (r *ThemeResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ ThemeLoader = (*ThemeResolver)(nil)
