package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlag wraps flag parsing failures.
var ErrInvalidFlag = errors.New("invalid flag")

// wrapFlagError keeps flag.ErrHelp intact so callers can treat --help as
// success.
func wrapFlagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
}

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to DOCX")
	fmt.Fprintln(w, "  inspect    Show how a markdown file is classified")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "'md2docx <file.md> [flags]' is shorthand for 'md2docx convert <file.md> [flags]'.")
	fmt.Fprintln(w, "Run 'md2docx help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to DOCX.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output .docx file or directory")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --exclude <glob>        Skip matching files in directories (repeatable)")
	fmt.Fprintln(w, "      --no-front-matter       Treat a leading --- block as Markdown")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --doc-title <s>         Title (\"\" = front matter, first # heading, file name)")
	fmt.Fprintln(w, "      --doc-subtitle <s>      Subtitle")
	fmt.Fprintln(w, "      --doc-author <s>        Author")
	fmt.Fprintln(w, "      --doc-version <s>       Version string")
	fmt.Fprintln(w, "      --doc-date <s>          Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                              Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, dddd, ddd")
	fmt.Fprintln(w, "                              Presets (case-insensitive): iso, european, us, long, short")
	fmt.Fprintln(w, "                              Use [text] to escape literals: [Week of] MMM D")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Title page:")
	fmt.Fprintln(w, "      --cover-field <L=V>     Extra \"Label: value\" line (repeatable)")
	fmt.Fprintln(w, "      --no-cover              Disable title page")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>         Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>       Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>            Margin in centimetres (0.5-7.5)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Footer:")
	fmt.Fprintln(w, "      --footer-position <s>   Position: left, center, right")
	fmt.Fprintln(w, "      --footer-text <s>       Custom footer text")
	fmt.Fprintln(w, "      --no-page-number        Hide page numbers")
	fmt.Fprintln(w, "      --no-footer             Disable footer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --theme <name|path>     Theme name (classic, slate) or YAML file")
	fmt.Fprintln(w, "      --asset-path <dir>      Directory with themes/<name>.yaml")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show timing and block counts")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2DOCX_CONFIG, MD2DOCX_THEME, MD2DOCX_INPUT_DIR, MD2DOCX_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MD2DOCX_PAGE_SIZE, MD2DOCX_DOC_AUTHOR, MD2DOCX_DOC_VERSION,")
	fmt.Fprintln(w, "  MD2DOCX_DOC_DATE, MD2DOCX_WORKERS")
}

// printInspectUsage prints usage for the inspect command.
func printInspectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx inspect <file.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the blocks a markdown file is split into, one per line.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --yaml                  Print title, metadata and blocks as YAML")
	fmt.Fprintln(w, "      --no-front-matter       Treat a leading --- block as Markdown")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "inspect":
		printInspectUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2docx version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2docx help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
