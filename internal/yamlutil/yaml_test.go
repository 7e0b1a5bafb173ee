package yamlutil_test

// Notes:
// - Marshal error branch: not tested because yaml.Marshal only fails with
//   unmarshalable types (channels, functions).
// - TestInputSizeLimit mutates MaxInputSize and therefore does not run in
//   parallel.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md2docx/internal/yamlutil"
)

type testMeta struct {
	Title   string   `yaml:"title"`
	Version int      `yaml:"version"`
	Draft   bool     `yaml:"draft"`
	Tags    []string `yaml:"tags"`
}

func assertErr(t *testing.T, err, want error) {
	t.Helper()

	if want == nil {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	if err == nil {
		t.Fatalf("expected error matching %q, got nil", want)
	}
	if errors.Is(err, want) {
		return
	}
	if !strings.Contains(err.Error(), want.Error()) {
		t.Fatalf("error = %q, want containing %q", err, want)
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Lenient decoding
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		want    testMeta
		wantErr error
	}{
		{
			name: "valid YAML",
			data: []byte("title: Guide\nversion: 3\ndraft: true\ntags: [a, b]"),
			dest: &testMeta{},
			want: testMeta{Title: "Guide", Version: 3, Draft: true, Tags: []string{"a", "b"}},
		},
		{
			name: "unknown keys ignored",
			data: []byte("title: Guide\nextra: 1"),
			dest: &testMeta{},
			want: testMeta{Title: "Guide"},
		},
		{
			name: "unicode content",
			data: []byte("title: 日本語テスト"),
			dest: &testMeta{},
			want: testMeta{Title: "日本語テスト"},
		},
		{name: "nil data", data: nil, dest: &testMeta{}, wantErr: yamlutil.ErrNilData},
		{name: "empty data", data: []byte{}, dest: &testMeta{}, wantErr: yamlutil.ErrNilData},
		{name: "nil destination", data: []byte("title: x"), dest: nil, wantErr: yamlutil.ErrNilDestination},
		{name: "invalid syntax", data: []byte("title: [unclosed"), dest: &testMeta{}, wantErr: errors.New("yamlutil:")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			assertErr(t, err, tt.wantErr)
			if tt.wantErr != nil {
				return
			}
			got := *tt.dest.(*testMeta)
			if got.Title != tt.want.Title || got.Version != tt.want.Version ||
				got.Draft != tt.want.Draft || strings.Join(got.Tags, ",") != strings.Join(tt.want.Tags, ",") {
				t.Errorf("decoded %+v, want %+v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Rejects unknown keys
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "known keys", data: []byte("title: x\nversion: 1")},
		{name: "unknown key", data: []byte("title: x\ncolour: red"), wantErr: errors.New("yamlutil:")},
		{name: "empty data", data: nil, wantErr: yamlutil.ErrNilData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var m testMeta
			assertErr(t, yamlutil.UnmarshalStrict(tt.data, &m), tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalMeta - Blank blocks are valid
// ---------------------------------------------------------------------------

func TestUnmarshalMeta(t *testing.T) {
	t.Parallel()

	t.Run("blank input leaves destination untouched", func(t *testing.T) {
		t.Parallel()

		m := testMeta{Title: "keep"}
		for _, data := range [][]byte{nil, {}, []byte("  \n\t\n")} {
			if err := yamlutil.UnmarshalMeta(data, &m); err != nil {
				t.Fatalf("UnmarshalMeta(%q) unexpected error: %v", data, err)
			}
		}
		if m.Title != "keep" {
			t.Errorf("Title = %q, want %q", m.Title, "keep")
		}
	})

	t.Run("decodes content", func(t *testing.T) {
		t.Parallel()

		var m testMeta
		if err := yamlutil.UnmarshalMeta([]byte("title: Notes"), &m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Title != "Notes" {
			t.Errorf("Title = %q, want %q", m.Title, "Notes")
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()
		assertErr(t, yamlutil.UnmarshalMeta([]byte("title: x"), nil), yamlutil.ErrNilDestination)
	})

	t.Run("malformed YAML", func(t *testing.T) {
		t.Parallel()
		var m testMeta
		assertErr(t, yamlutil.UnmarshalMeta([]byte("title: [unclosed"), &m), errors.New("yamlutil:"))
	})
}

// ---------------------------------------------------------------------------
// TestMarshal
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	data, err := yamlutil.Marshal(testMeta{Title: "Guide", Version: 2, Tags: []string{"x"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(data)
	for _, want := range []string{"title: Guide", "version: 2", "tags:", "- x"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q, got:\n%s", want, s)
		}
	}

	var back testMeta
	if err := yamlutil.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal(Marshal()) unexpected error: %v", err)
	}
	if back.Title != "Guide" || back.Version != 2 {
		t.Errorf("decoded %+v", back)
	}
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - MaxInputSize enforcement
// ---------------------------------------------------------------------------

func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })

	yamlutil.MaxInputSize = 50
	data := []byte("title: " + strings.Repeat("x", 93))

	decoders := map[string]func([]byte, any) error{
		"Unmarshal":       yamlutil.Unmarshal,
		"UnmarshalStrict": yamlutil.UnmarshalStrict,
		"UnmarshalMeta":   yamlutil.UnmarshalMeta,
	}
	for name, fn := range decoders {
		var m testMeta
		err := fn(data, &m)
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("%s: errors.Is(err, ErrInputTooLarge) = false, got: %v", name, err)
			continue
		}
		if !strings.Contains(err.Error(), "100 bytes") || !strings.Contains(err.Error(), "max 50") {
			t.Errorf("%s: error should report sizes, got: %s", name, err)
		}
	}
}
