package osstorage

import (
	"path/filepath"
	"testing"
)

func TestStorage_WriteAndReadFile(t *testing.T) {
	s := New()
	path := filepath.Join(t.TempDir(), "state.yaml")

	if err := s.WriteFile(path, []byte("used: 5")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := s.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "used: 5" {
		t.Errorf("expected %q, got %q", "used: 5", data)
	}
}

func TestStorage_WriteFileCreatesParentDirs(t *testing.T) {
	s := New()
	path := filepath.Join(t.TempDir(), "out", "maps", "demo.png")

	if err := s.WriteFile(path, []byte{0x89, 'P', 'N', 'G'}); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	exists, err := s.Exists(path)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected file to exist")
	}
}

func TestStorage_ExistsMissing(t *testing.T) {
	s := New()

	exists, err := s.Exists(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected missing file to not exist")
	}
}

func TestStorage_ReadFileMissing(t *testing.T) {
	s := New()

	if _, err := s.ReadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error reading a missing file")
	}
}
