package subtitle

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	lines := []Line{
		{Seconds: 26*60 + 23, Separator: ':', Text: "I'm a liar, a hypocrite."},
		{Seconds: 26*60 + 26, Separator: '=', Text: "I'm afraid of everything."},
	}

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.txt")

	if err := WriteFile(path, lines); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	want := "00:26:23:I'm a liar, a hypocrite.\n" +
		"00:26:26=I'm afraid of everything.\n"
	if string(content) != want {
		t.Errorf("output: got %q, want %q", string(content), want)
	}
}

func TestWriteFileEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.txt")

	if err := WriteFile(path, nil); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if len(content) != 0 {
		t.Errorf("expected empty file, got %q", string(content))
	}
}

func TestWriteFileRefusesOverwrite(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.txt")

	original := "00:00:10:do not touch\n"
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatalf("failed to write existing file: %v", err)
	}

	err := WriteFile(path, []Line{{Seconds: 0, Separator: ':', Text: "new"}})
	if err == nil {
		t.Fatal("expected error when output file exists")
	}
	if !errors.Is(err, ErrOutputExists) {
		t.Errorf("expected ErrOutputExists, got %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read existing file: %v", err)
	}
	if string(content) != original {
		t.Errorf("existing file was modified: got %q", string(content))
	}
}
