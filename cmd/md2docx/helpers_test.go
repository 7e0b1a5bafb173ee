package main

// Notes:
// - Test helpers shared across the cmd tests. Every test injects its own
//   environment so the process environment never leaks in.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	md2docx "github.com/alnah/go-md2docx"
)

// fixedNow is the clock used by tests.
var fixedNow = time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)

// testEnv returns an Environment whose variables come from vars and whose
// output is captured.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	env := &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: stdout,
		Stderr: stderr,
		Getenv: func(key string) string { return vars[key] },
		Environ: func() []string {
			list := make([]string, 0, len(vars))
			for k, v := range vars {
				list = append(list, k+"="+v)
			}
			sort.Strings(list)
			return list
		},
	}
	return env, stdout, stderr
}

// writeFile creates a file with content under dir, creating parents.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// mockConverter records its inputs and returns a fixed document.
type mockConverter struct {
	mu     sync.Mutex
	inputs []md2docx.Input
	err    error
	fail   map[string]bool // Input.Name values that fail
}

func (m *mockConverter) Convert(_ context.Context, input md2docx.Input) (*md2docx.ConvertResult, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	if m.fail[input.Name] {
		return nil, md2docx.ErrEmptyMarkdown
	}
	return &md2docx.ConvertResult{
		DOCX:  []byte("PK mock"),
		Title: "Mock",
		Stats: md2docx.Stats{Paragraphs: 1},
	}, nil
}
