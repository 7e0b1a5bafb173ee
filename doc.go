// Package md2docx converts Markdown documents to Word (.docx) files.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := md2docx.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown: "# Hello\n\n## Section\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.docx", result.DOCX, 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Optional YAML front matter is split off as metadata
//  2. Lines are classified one at a time into headings, paragraphs, list
//     items, pipe tables and fenced code blocks
//  3. Blocks are rendered with the theme's fonts, sizes and colours
//  4. The document parts are written as a zip archive
//
// Top-level "#" headings are not part of the body. The first one names the
// document when no title is configured.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2docx.NewConverter(
//	    md2docx.WithTheme("slate"),
//	    md2docx.WithAssetPath("/path/to/custom/assets"),
//	)
//
// Per-conversion options are passed via Input:
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown: content,
//	    Name:     "guide.md",
//	    Page:     &md2docx.PageSettings{Size: "a4", Margin: 2},
//	    Footer:   &md2docx.Footer{ShowPageNumber: true},
//	    Cover:    &md2docx.Cover{Author: "Jane Doe", Date: "auto"},
//	})
//
// A Converter is safe for concurrent use; batch conversions can share one.
//
// # Custom Themes
//
// Themes are YAML files. Keys left out keep the classic values:
//
//	name: corporate
//	fonts:
//	  code: Consolas
//	colors:
//	  accent: "#1F4E79"
//
// Place them under {assetPath}/themes/{name}.yaml, or pass a file path to
// WithTheme.
package md2docx
