// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound suggests --config and, when one of the searched paths is
// in the user config directory, creating that file.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "go-md2docx/") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForThemeNotFound lists the themes that can be used instead.
func ForThemeNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForInvalidExtension reminds which input files are accepted.
func ForInvalidExtension() string {
	return format("input files must end in .md or .markdown")
}

// ForPageSize lists the accepted page sizes.
func ForPageSize(valid []string) string {
	return format("use one of: " + strings.Join(valid, ", "))
}

// ForCoverField shows the expected --cover-field syntax.
func ForCoverField() string {
	return format(`use --cover-field "Label=Value", e.g. --cover-field "Client=Acme"`)
}

// ForNoInput explains how to provide input.
func ForNoInput() string {
	return formatHints([]string{
		"pass a file or directory",
		"or set input.defaultDir in the config file or MD2DOCX_INPUT_DIR",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
