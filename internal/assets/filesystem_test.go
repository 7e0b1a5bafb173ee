package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTheme(t *testing.T, base, name, content string) {
	t.Helper()

	dir := filepath.Join(base, "themes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid directory", t.TempDir(), false},
		{"empty path", "", true},
		{"missing directory", filepath.Join(t.TempDir(), "missing"), true},
		{"file instead of directory", file, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewFilesystemLoader(tt.path)
			if tt.wantErr && !errors.Is(err, ErrInvalidBasePath) {
				t.Errorf("error = %v, want ErrInvalidBasePath", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestFilesystemLoader_LoadTheme(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeTheme(t, base, "brand", "colors:\n  accent: \"#C0392B\"\n")
	writeTheme(t, base, "broken", "colors: [\n")

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("custom theme", func(t *testing.T) {
		t.Parallel()
		th, err := loader.LoadTheme("brand")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if th.Colors.Accent != "#C0392B" || th.Name != "brand" {
			t.Errorf("theme = %+v", th)
		}
		if th.Fonts.Body != "Calibri" {
			t.Errorf("Body font = %q, want Calibri from classic", th.Fonts.Body)
		}
	})

	t.Run("missing theme", func(t *testing.T) {
		t.Parallel()
		if _, err := loader.LoadTheme("absent"); !errors.Is(err, ErrThemeNotFound) {
			t.Errorf("error = %v, want ErrThemeNotFound", err)
		}
	})

	t.Run("malformed theme", func(t *testing.T) {
		t.Parallel()
		if _, err := loader.LoadTheme("broken"); !errors.Is(err, ErrInvalidTheme) {
			t.Errorf("error = %v, want ErrInvalidTheme", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()
		if _, err := loader.LoadTheme("../brand"); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("error = %v, want ErrInvalidAssetName", err)
		}
	})
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	outside := t.TempDir()
	writeTheme(t, outside, "secret", "name: secret\n")

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "themes"), 0o755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(base, "themes", "escape.yaml")
	if err := os.Symlink(filepath.Join(outside, "themes", "secret.yaml"), link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := loader.LoadTheme("escape"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("error = %v, want ErrPathTraversal", err)
	}
}
