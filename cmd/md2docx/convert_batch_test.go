package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	md2docx "github.com/alnah/go-md2docx"
)

func TestConvertBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var files []FileToConvert
	for _, name := range []string{"a.md", "b.md", "c.md", "d.md"} {
		in := writeFile(t, dir, name, "# "+name+"\n")
		files = append(files, FileToConvert{
			InputPath:  in,
			OutputPath: filepath.Join(dir, "out", strings.TrimSuffix(name, ".md")+".docx"),
		})
	}
	failing := files[2].InputPath
	conv := &mockConverter{fail: map[string]bool{failing: true}}
	params := &conversionParams{footer: &md2docx.Footer{ShowPageNumber: true}}

	results := convertBatch(context.Background(), conv, 3, files, params)

	if len(results) != len(files) {
		t.Fatalf("got %d results, want %d", len(results), len(files))
	}
	for i, r := range results {
		if r.InputPath != files[i].InputPath {
			t.Errorf("results[%d].InputPath = %q, want %q", i, r.InputPath, files[i].InputPath)
		}
		if r.InputPath == failing {
			if !errors.Is(r.Err, md2docx.ErrEmptyMarkdown) {
				t.Errorf("results[%d].Err = %v, want ErrEmptyMarkdown", i, r.Err)
			}
			continue
		}
		if r.Err != nil {
			t.Errorf("results[%d].Err = %v", i, r.Err)
			continue
		}
		data, err := os.ReadFile(r.OutputPath)
		if err != nil {
			t.Errorf("output %s: %v", r.OutputPath, err)
		} else if string(data) != "PK mock" {
			t.Errorf("output %s = %q", r.OutputPath, data)
		}
		if r.Title != "Mock" || r.Stats.Paragraphs != 1 {
			t.Errorf("results[%d] title/stats = %q, %+v", i, r.Title, r.Stats)
		}
	}

	if len(conv.inputs) != len(files) {
		t.Fatalf("converter called %d times, want %d", len(conv.inputs), len(files))
	}
	for _, in := range conv.inputs {
		if in.Footer != params.footer {
			t.Errorf("input %s did not receive the shared footer", in.Name)
		}
		if !strings.HasPrefix(in.Markdown, "# ") {
			t.Errorf("input %s markdown = %q", in.Name, in.Markdown)
		}
	}
}

func TestConvertBatch_Empty(t *testing.T) {
	t.Parallel()

	if got := convertBatch(context.Background(), &mockConverter{}, 2, nil, &conversionParams{}); got != nil {
		t.Errorf("convertBatch(nil) = %v, want nil", got)
	}
}

func TestConvertBatch_Cancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := []FileToConvert{
		{InputPath: writeFile(t, dir, "a.md", "a"), OutputPath: filepath.Join(dir, "a.docx")},
		{InputPath: writeFile(t, dir, "b.md", "b"), OutputPath: filepath.Join(dir, "b.docx")},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := &mockConverter{}
	results := convertBatch(ctx, conv, 1, files, &conversionParams{})

	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v, want context.Canceled", i, r.Err)
		}
	}
	if len(conv.inputs) != 0 {
		t.Errorf("converter called %d times after cancel", len(conv.inputs))
	}
}

func TestConvertFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("read error", func(t *testing.T) {
		t.Parallel()

		f := FileToConvert{InputPath: filepath.Join(dir, "missing.md"), OutputPath: filepath.Join(dir, "missing.docx")}
		r := convertFile(context.Background(), &mockConverter{}, f, &conversionParams{})
		if !errors.Is(r.Err, ErrReadMarkdown) {
			t.Errorf("Err = %v, want ErrReadMarkdown", r.Err)
		}
	})

	t.Run("write error", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, dir, "w.md", "text")
		blocker := writeFile(t, dir, "blocker", "not a directory")
		f := FileToConvert{InputPath: in, OutputPath: filepath.Join(blocker, "w.docx")}
		r := convertFile(context.Background(), &mockConverter{}, f, &conversionParams{})
		if !errors.Is(r.Err, ErrWriteDOCX) {
			t.Errorf("Err = %v, want ErrWriteDOCX", r.Err)
		}
	})

	t.Run("converter error", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, dir, "c.md", "text")
		f := FileToConvert{InputPath: in, OutputPath: filepath.Join(dir, "c.docx")}
		r := convertFile(context.Background(), &mockConverter{err: md2docx.ErrDocumentBuild}, f, &conversionParams{})
		if !errors.Is(r.Err, md2docx.ErrDocumentBuild) {
			t.Errorf("Err = %v, want ErrDocumentBuild", r.Err)
		}
		if _, err := os.Stat(f.OutputPath); !os.IsNotExist(err) {
			t.Errorf("output should not exist after failure, stat err = %v", err)
		}
	})
}

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []ConversionResult{
		{InputPath: "a.md", OutputPath: "a.docx", Title: "A", Duration: 12 * time.Millisecond,
			Stats: md2docx.Stats{Headings: 1, CodeBlocks: 1, Languages: []string{"Go"}}},
		{InputPath: "b.md", OutputPath: "b.docx", Err: ErrReadMarkdown},
	}

	tests := []struct {
		name        string
		quiet       bool
		verbose     bool
		wantStdout  []string
		avoidStdout []string
	}{
		{
			name:       "default",
			wantStdout: []string{"Created a.docx", "1 succeeded, 1 failed"},
		},
		{
			name:        "quiet",
			quiet:       true,
			avoidStdout: []string{"Created", "succeeded"},
		},
		{
			name:       "verbose",
			verbose:    true,
			wantStdout: []string{"a.md -> a.docx (12ms)", `"A": 1 headings`, "1 code blocks (Go)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(nil)
			failed := printResults(results, tt.quiet, tt.verbose, env)

			if failed != 1 {
				t.Errorf("printResults() = %d, want 1", failed)
			}
			if !strings.Contains(stderr.String(), "FAILED b.md") {
				t.Errorf("stderr = %q, want FAILED line", stderr.String())
			}
			for _, s := range tt.wantStdout {
				if !strings.Contains(stdout.String(), s) {
					t.Errorf("stdout = %q, want to contain %q", stdout.String(), s)
				}
			}
			for _, s := range tt.avoidStdout {
				if strings.Contains(stdout.String(), s) {
					t.Errorf("stdout = %q, should not contain %q", stdout.String(), s)
				}
			}
		})
	}
}

func TestCountResults(t *testing.T) {
	t.Parallel()

	got := countResults([]ConversionResult{{}, {Err: ErrWriteDOCX}, {}})
	if got != (ResultSummary{Succeeded: 2, Failed: 1}) {
		t.Errorf("countResults() = %+v", got)
	}
}
