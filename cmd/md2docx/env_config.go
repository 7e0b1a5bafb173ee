package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-md2docx/internal/config"
)

// envPrefix is the common prefix of every md2docx environment variable.
const envPrefix = "MD2DOCX_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	// Tier 1 - Essential
	ConfigPath string // MD2DOCX_CONFIG: config file name or path
	Theme      string // MD2DOCX_THEME: theme name or path

	// Tier 2 - I/O
	InputDir  string // MD2DOCX_INPUT_DIR: default input directory
	OutputDir string // MD2DOCX_OUTPUT_DIR: default output directory

	// Tier 3 - Extended
	PageSize   string // MD2DOCX_PAGE_SIZE: letter, a4, legal
	DocAuthor  string // MD2DOCX_DOC_AUTHOR: document author
	DocVersion string // MD2DOCX_DOC_VERSION: document version
	DocDate    string // MD2DOCX_DOC_DATE: document date
	Workers    int    // MD2DOCX_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2DOCX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2DOCX_CONFIG":      true,
	"MD2DOCX_THEME":       true,
	"MD2DOCX_INPUT_DIR":   true,
	"MD2DOCX_OUTPUT_DIR":  true,
	"MD2DOCX_PAGE_SIZE":   true,
	"MD2DOCX_DOC_AUTHOR":  true,
	"MD2DOCX_DOC_VERSION": true,
	"MD2DOCX_DOC_DATE":    true,
	"MD2DOCX_WORKERS":     true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid or non-positive MD2DOCX_WORKERS values are ignored.
func loadEnvConfig(env *Environment) *envConfig {
	cfg := &envConfig{
		ConfigPath: env.getenv("MD2DOCX_CONFIG"),
		Theme:      env.getenv("MD2DOCX_THEME"),
		InputDir:   env.getenv("MD2DOCX_INPUT_DIR"),
		OutputDir:  env.getenv("MD2DOCX_OUTPUT_DIR"),
		PageSize:   env.getenv("MD2DOCX_PAGE_SIZE"),
		DocAuthor:  env.getenv("MD2DOCX_DOC_AUTHOR"),
		DocVersion: env.getenv("MD2DOCX_DOC_VERSION"),
		DocDate:    env.getenv("MD2DOCX_DOC_DATE"),
	}

	if workers := env.getenv("MD2DOCX_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars prints a warning for each unrecognized MD2DOCX_* variable.
func warnUnknownEnvVars(w io.Writer, env *Environment) {
	for _, kv := range env.environ() {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// A set variable replaces the config value, so the precedence is
// CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Theme != "" {
		cfg.Theme = env.Theme
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.PageSize != "" {
		cfg.Page.Size = env.PageSize
	}
	if env.DocAuthor != "" {
		cfg.Document.Author = env.DocAuthor
	}
	if env.DocVersion != "" {
		cfg.Document.Version = env.DocVersion
	}
	if env.DocDate != "" {
		cfg.Document.Date = env.DocDate
	}
}
