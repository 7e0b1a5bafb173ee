package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds document metadata flags.
type documentFlags struct {
	title    string
	subtitle string
	author   string
	version  string
	date     string
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// footerFlags holds footer-related flags.
type footerFlags struct {
	position     string
	text         string
	noPageNumber bool
	disabled     bool
}

// coverFlags holds title page flags.
type coverFlags struct {
	fields   []string // "Label=Value"
	disabled bool
}

// assetFlags holds theme-related flags.
type assetFlags struct {
	theme     string // Name or path of a theme YAML file
	assetPath string // Directory holding themes/
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common        commonFlags
	output        string
	workers       int
	exclude       []string
	document      documentFlags
	page          pageFlags
	footer        footerFlags
	cover         coverFlags
	assets        assetFlags
	noFrontMatter bool
}

// inspectFlags holds flags for the inspect command.
type inspectFlags struct {
	yaml          bool
	noFrontMatter bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and block counts")
}

// addDocumentFlags adds document metadata flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "doc-title", "", "document title (\"\" = front matter, first # heading, file name)")
	fs.StringVar(&f.subtitle, "doc-subtitle", "", "document subtitle")
	fs.StringVar(&f.author, "doc-author", "", "document author")
	fs.StringVar(&f.version, "doc-version", "", "document version")
	fs.StringVar(&f.date, "doc-date", "", "document date (\"auto\" = today)")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in centimetres (0.5-7.5)")
}

// addFooterFlags adds footer flags to a FlagSet.
func addFooterFlags(fs *flag.FlagSet, f *footerFlags) {
	fs.StringVar(&f.position, "footer-position", "", "footer position: left, center, right")
	fs.StringVar(&f.text, "footer-text", "", "custom footer text")
	fs.BoolVar(&f.noPageNumber, "no-page-number", false, "hide page numbers in footer")
	fs.BoolVar(&f.disabled, "no-footer", false, "disable footer")
}

// addCoverFlags adds title page flags to a FlagSet.
func addCoverFlags(fs *flag.FlagSet, f *coverFlags) {
	fs.StringArrayVar(&f.fields, "cover-field", nil, "title page line as Label=Value (repeatable)")
	fs.BoolVar(&f.disabled, "no-cover", false, "disable title page")
}

// addAssetFlags adds theme flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.theme, "theme", "", "theme name or YAML file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory (themes/<name>.yaml)")
}

// newConvertFlagSet registers every convert flag on a new FlagSet.
func newConvertFlagSet(f *convertFlags, usage io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(usage)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringArrayVar(&f.exclude, "exclude", nil, "glob of files to skip in directories (repeatable)")
	fs.BoolVar(&f.noFrontMatter, "no-front-matter", false, "treat a leading --- block as Markdown")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addPageFlags(fs, &f.page)
	addFooterFlags(fs, &f.footer)
	addCoverFlags(fs, &f.cover)
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printConvertUsage(usage) }
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f, usage)

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapFlagError(err)
	}

	return f, fs.Args(), nil
}

// parseInspectFlags parses inspect command flags and returns positional args.
func parseInspectFlags(args []string, usage io.Writer) (*inspectFlags, []string, error) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &inspectFlags{}

	fs.BoolVar(&f.yaml, "yaml", false, "print blocks as YAML")
	fs.BoolVar(&f.noFrontMatter, "no-front-matter", false, "treat a leading --- block as Markdown")
	fs.Usage = func() { printInspectUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapFlagError(err)
	}
	return f, fs.Args(), nil
}
