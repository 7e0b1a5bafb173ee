package assets

// ThemeLoader loads themes by name.
type ThemeLoader interface {
	// LoadTheme loads a theme by name (without .yaml extension).
	// Returns ErrThemeNotFound if the theme doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTheme(name string) (*Theme, error)
}
