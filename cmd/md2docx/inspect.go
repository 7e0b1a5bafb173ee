package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2docx/internal/frontmatter"
	"github.com/alnah/go-md2docx/internal/mdscan"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// inspectReport is the YAML form of an inspected file.
type inspectReport struct {
	Title    string         `yaml:"title"`
	Metadata *inspectMeta   `yaml:"metadata,omitempty"`
	Blocks   []inspectBlock `yaml:"blocks"`
}

type inspectMeta struct {
	Title    string            `yaml:"title,omitempty"`
	Subtitle string            `yaml:"subtitle,omitempty"`
	Author   string            `yaml:"author,omitempty"`
	Version  string            `yaml:"version,omitempty"`
	Date     string            `yaml:"date,omitempty"`
	Fields   []inspectMetaItem `yaml:"fields,omitempty"`
}

type inspectMetaItem struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type inspectBlock struct {
	Kind     string     `yaml:"kind"`
	Level    int        `yaml:"level,omitempty"`
	Text     string     `yaml:"text,omitempty"`
	Language string     `yaml:"language,omitempty"`
	Lines    []string   `yaml:"lines,omitempty"`
	Rows     [][]string `yaml:"rows,omitempty"`
}

// runInspectCmd prints the blocks a Markdown file is classified into.
func runInspectCmd(args []string, env *Environment) error {
	flags, positional, err := parseInspectFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if len(positional) == 0 {
		return ErrNoInput
	}

	path := positional[0]
	if err := validateMarkdownExtension(path); err != nil {
		return err
	}
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	report := inspect(string(content), path, !flags.noFrontMatter)
	if flags.yaml {
		data, err := yamlutil.Marshal(report)
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		_, err = env.Stdout.Write(data)
		return err
	}
	return writeInspectText(env.Stdout, string(content), !flags.noFrontMatter)
}

// splitBody returns the front matter and the Markdown body. A block that
// cannot be decoded stays in the body.
func splitBody(content string, frontMatter bool) (frontmatter.Meta, string) {
	if !frontMatter {
		return frontmatter.Meta{}, content
	}
	meta, body, err := frontmatter.Split(content)
	if err != nil {
		return frontmatter.Meta{}, content
	}
	return meta, body
}

func inspect(content, path string, frontMatter bool) inspectReport {
	meta, body := splitBody(content, frontMatter)
	doc := mdscan.Parse(body)

	report := inspectReport{
		Title:  inspectTitle(meta, doc, path),
		Blocks: make([]inspectBlock, 0, len(doc.Blocks)),
	}
	if !meta.IsZero() {
		m := &inspectMeta{
			Title:    meta.Title,
			Subtitle: meta.Subtitle,
			Author:   meta.Author,
			Version:  meta.Version,
			Date:     meta.Date,
		}
		for _, f := range meta.Fields {
			m.Fields = append(m.Fields, inspectMetaItem{Label: f.Label, Value: f.Value})
		}
		report.Metadata = m
	}
	for _, b := range doc.Blocks {
		report.Blocks = append(report.Blocks, toInspectBlock(b))
	}
	return report
}

func inspectTitle(meta frontmatter.Meta, doc *mdscan.Document, path string) string {
	switch {
	case meta.Title != "":
		return meta.Title
	case doc.Title != "":
		return doc.Title
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func toInspectBlock(b mdscan.Block) inspectBlock {
	switch b := b.(type) {
	case mdscan.Heading:
		return inspectBlock{Kind: "heading", Level: b.Level, Text: b.Text}
	case mdscan.Paragraph:
		return inspectBlock{Kind: "paragraph", Text: mdscan.PlainText(b.Spans)}
	case mdscan.ListItem:
		return inspectBlock{Kind: b.Kind.String(), Text: mdscan.PlainText(b.Spans)}
	case mdscan.Table:
		return inspectBlock{Kind: "table", Rows: b.Rows}
	case mdscan.CodeBlock:
		lang := b.Lexer
		if lang == "" {
			lang = b.Language
		}
		return inspectBlock{Kind: "code", Language: lang, Lines: b.Lines}
	}
	return inspectBlock{Kind: "unknown", Text: b.String()}
}

// writeInspectText prints one line per block, tables followed by their rows.
func writeInspectText(w io.Writer, content string, frontMatter bool) error {
	_, body := splitBody(content, frontMatter)
	for _, b := range mdscan.Parse(body).Blocks {
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
