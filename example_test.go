package md2docx_test

import (
	"context"
	"fmt"
	"time"

	"github.com/alnah/go-md2docx"
)

// Example demonstrates converting markdown to a .docx archive.
func Example() {
	conv, err := md2docx.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), md2docx.Input{
		Markdown: "# Hello World\n\n## Intro\n\nThis is a test.",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Title, result.Stats.Headings, result.Stats.Paragraphs)
	// Output: Hello World 1 1
}

// Example_withCover demonstrates a title page with an auto date.
func Example_withCover() {
	conv, err := md2docx.NewConverter(
		md2docx.WithClock(func() time.Time {
			return time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
		}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), md2docx.Input{
		Markdown: "## Overview\n\nDocument content here.",
		Name:     "report.md",
		Cover: &md2docx.Cover{
			Subtitle: "Q1 Analysis",
			Author:   "Jane Doe",
			Date:     "auto",
		},
		Footer: &md2docx.Footer{ShowPageNumber: true},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Title)
	// Output: report
}

// ExampleResolveDate shows the auto date syntax.
func ExampleResolveDate() {
	t := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	for _, v := range []string{"auto", "auto:DD/MM/YYYY", "auto:long", "v1 draft"} {
		s, err := md2docx.ResolveDate(v, t)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(s)
	}
	// Output:
	// 2026-03-09
	// 09/03/2026
	// March 9, 2026
	// v1 draft
}
