// Package frontmatter extracts document metadata from a leading YAML block:
//
//	---
//	title: Deployment Guide
//	author: Platform Team
//	version: "2.1"
//	date: auto:long
//	fields:
//	  - label: Client
//	    value: Acme
//	---
//
// Scalars are kept as text, so unquoted numbers and dates are accepted.
package frontmatter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// ErrInvalidFrontMatter reports a front matter block that could not be decoded.
var ErrInvalidFrontMatter = errors.New("invalid front matter")

const delimiter = "---"

// yamlFormat accepts "---" fenced YAML, including an empty block.
var yamlFormat = frontmatter.NewFormat(delimiter, delimiter, yamlutil.UnmarshalMeta)

// Field is one labelled line for the title page.
type Field struct {
	Label string
	Value string
}

// Meta is the metadata found in front matter. Empty strings mean unset.
type Meta struct {
	Title    string
	Subtitle string
	Author   string
	Version  string
	Date     string
	Fields   []Field
}

// IsZero reports whether no metadata was found.
func (m Meta) IsZero() bool {
	return m.Title == "" && m.Subtitle == "" && m.Author == "" &&
		m.Version == "" && m.Date == "" && len(m.Fields) == 0
}

// Split separates front matter from the Markdown body. Content that does not
// start with "---", or whose block has none of metaKeys, is returned
// unchanged. When the block cannot be decoded, the error wraps
// ErrInvalidFrontMatter and body is the original content.
func Split(content string) (meta Meta, body string, err error) {
	trimmed := strings.TrimPrefix(content, "\uFEFF")
	if !strings.HasPrefix(trimmed, delimiter) {
		return Meta{}, content, nil
	}

	raw := map[string]any{}
	rest, err := frontmatter.Parse(strings.NewReader(trimmed), &raw, yamlFormat)
	if err != nil {
		return Meta{}, content, fmt.Errorf("%w: %v", ErrInvalidFrontMatter, err)
	}
	// Without a metadata key the block is two rules around body content.
	if !hasMetaKey(raw) {
		return Meta{}, content, nil
	}

	meta, err = fromMap(raw)
	if err != nil {
		return Meta{}, content, err
	}
	return meta, string(rest), nil
}

// metaKeys are the keys that mark a leading "---" block as front matter.
var metaKeys = []string{"title", "subtitle", "author", "version", "date", "fields"}

func hasMetaKey(raw map[string]any) bool {
	for _, k := range metaKeys {
		if _, ok := raw[k]; ok {
			return true
		}
	}
	return false
}

func fromMap(raw map[string]any) (Meta, error) {
	m := Meta{
		Title:    text(raw["title"]),
		Subtitle: text(raw["subtitle"]),
		Author:   text(raw["author"]),
		Version:  text(raw["version"]),
		Date:     text(raw["date"]),
	}

	list, ok := raw["fields"]
	if !ok || list == nil {
		return m, nil
	}
	items, ok := list.([]any)
	if !ok {
		return Meta{}, fmt.Errorf("%w: fields must be a list", ErrInvalidFrontMatter)
	}
	for i, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			return Meta{}, fmt.Errorf("%w: fields[%d] must have label and value", ErrInvalidFrontMatter, i)
		}
		label := strings.TrimSpace(text(entry["label"]))
		if label == "" {
			return Meta{}, fmt.Errorf("%w: fields[%d] has no label", ErrInvalidFrontMatter, i)
		}
		m.Fields = append(m.Fields, Field{Label: label, Value: text(entry["value"])})
	}
	return m, nil
}

// text renders a decoded scalar as the user wrote it, as far as YAML allows.
func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 {
			return x.Format(time.DateOnly)
		}
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}
