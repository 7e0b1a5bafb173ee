package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// runConvertCmd parses convert flags and runs the conversion.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	return runConvert(ctx, positional, flags, env)
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	envCfg := loadEnvConfig(env)
	warnUnknownEnvVars(env.Stderr, env)

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)

	// Merge CLI flags into config (CLI wins)
	if err := mergeFlags(flags, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir, cfg.Input.Exclude)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	params, err := buildConversionParams(cfg)
	if err != nil {
		return err
	}

	conv, err := md2docx.NewConverter(
		md2docx.WithTheme(cfg.Theme),
		md2docx.WithAssetPath(cfg.Assets.BasePath),
		md2docx.WithFrontMatter(!cfg.FrontMatter.Disabled),
		md2docx.WithClock(env.now),
	)
	if err != nil {
		return err
	}

	poolSize := md2docx.ResolvePoolSize(workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "Converting %d file(s) with %d worker(s), theme %q\n",
			len(files), min(poolSize, len(files)), conv.Theme().Name)
	}

	results := convertBatch(ctx, conv, poolSize, files, params)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}

	return nil
}

// loadConfig loads the config named by the --config flag, then
// MD2DOCX_CONFIG. Without either, the defaults are used.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// Exclude patterns from flags are added to those of the config.
func mergeFlags(flags *convertFlags, cfg *config.Config) error {
	// Document flags
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.subtitle != "" {
		cfg.Document.Subtitle = flags.document.subtitle
	}
	if flags.document.author != "" {
		cfg.Document.Author = flags.document.author
	}
	if flags.document.version != "" {
		cfg.Document.Version = flags.document.version
	}
	if flags.document.date != "" {
		cfg.Document.Date = flags.document.date
	}

	// Page flags
	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin > 0 {
		cfg.Page.Margin = flags.page.margin
	}

	// Footer flags
	if flags.footer.position != "" {
		cfg.Footer.Position = flags.footer.position
	}
	if flags.footer.text != "" {
		cfg.Footer.Text = flags.footer.text
	}
	if flags.footer.noPageNumber {
		cfg.Footer.ShowPageNumber = false
	}

	// Cover flags
	if len(flags.cover.fields) > 0 {
		fields, err := parseCoverFields(flags.cover.fields)
		if err != nil {
			return err
		}
		cfg.Cover.Fields = fields
	}

	// Theme flags
	if flags.assets.theme != "" {
		cfg.Theme = flags.assets.theme
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}

	cfg.Input.Exclude = append(cfg.Input.Exclude, flags.exclude...)

	// Disable flags
	if flags.noFrontMatter {
		cfg.FrontMatter.Disabled = true
	}
	if flags.footer.disabled {
		cfg.Footer.Enabled = false
	}
	if flags.cover.disabled {
		cfg.Cover.Enabled = false
	}
	return nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}
