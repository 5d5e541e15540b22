package dirflat

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDir(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name    string
		arg     string
		wantErr bool
	}{
		{
			name:    "existing directory",
			arg:     tempDir,
			wantErr: false,
		},
		{
			name:    "current directory",
			arg:     ".",
			wantErr: false,
		},
		{
			name:    "missing path",
			arg:     filepath.Join(tempDir, "does-not-exist"),
			wantErr: true,
		},
	}

	r, err := NewPathResolver()
	if err != nil {
		t.Fatalf("NewPathResolver() error = %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.ResolveDir(tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Error("ResolveDir() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveDir() error = %v", err)
			}
			if !filepath.IsAbs(result) {
				t.Errorf("ResolveDir() = %q, want absolute path", result)
			}
		})
	}
}

func TestResolveDir_File(t *testing.T) {
	tempDir := t.TempDir()
	tempFile := filepath.Join(tempDir, "testfile.txt")
	if err := os.WriteFile(tempFile, []byte("test"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	r, err := NewPathResolver()
	if err != nil {
		t.Fatalf("NewPathResolver() error = %v", err)
	}

	_, err = r.ResolveDir(tempFile)
	if !errors.Is(err, ErrNotDirectory) {
		t.Errorf("ResolveDir() error = %v, want ErrNotDirectory", err)
	}
}

func TestResolve(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	r := &PathResolver{wd: wd}

	if got := r.Resolve("sub/file"); got != filepath.Join(wd, "sub", "file") {
		t.Errorf("Resolve(relative) = %q", got)
	}
	if got := r.Resolve("/abs/./path"); got != filepath.Clean("/abs/path") {
		t.Errorf("Resolve(absolute) = %q", got)
	}
}
