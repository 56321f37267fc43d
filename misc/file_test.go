package misc

import (
	"path/filepath"
	"testing"
)

func TestWriteReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	n, err := WriteFile(path, []byte(`{"RunName":"test"}`))
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if n != 18 {
		t.Errorf("bytes written: got %d, want 18", n)
	}

	contents, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(contents) != `{"RunName":"test"}` {
		t.Errorf("contents: got %q", contents)
	}
}

func TestReadFile_Errors(t *testing.T) {
	if _, err := ReadFile(""); err == nil {
		t.Error("ReadFile should reject an empty name")
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ReadFile should fail for a missing file")
	}
	if _, err := WriteFile("", nil); err == nil {
		t.Error("WriteFile should reject an empty name")
	}
}
