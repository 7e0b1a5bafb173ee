// Package assets provides the colour and typography themes used to style
// generated documents.
//
// # Loader Architecture
//
//	ThemeLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in themes compiled in with go:embed
//	    ├── FilesystemLoader  - themes from a custom directory on disk
//	    └── ThemeResolver     - custom first, falling back to embedded
//
// A theme file only needs the keys it changes: every theme is decoded on top
// of the built-in classic theme.
//
// # Directory Structure
//
//	{basePath}/
//	└── themes/
//	    └── {name}.yaml
//
// # Security
//
// Theme names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
