package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDirSize(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a"), make([]byte, 100), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "b"), make([]byte, 50), 0644); err != nil {
		t.Fatal(err)
	}

	size, err := DirSize(dir)
	if err != nil {
		t.Fatalf("dirsize failed: %v", err)
	}
	if size != 150 {
		t.Errorf("expected 150 bytes, got %d", size)
	}
}

func TestFindOldestFile(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old")
	recent := filepath.Join(dir, "recent")
	if err := os.WriteFile(old, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(recent, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}

	oldest, err := FindOldestFile(dir)
	if err != nil {
		t.Fatalf("findoldestfile failed: %v", err)
	}
	if oldest.Name() != "old" {
		t.Errorf("expected 'old', got %q", oldest.Name())
	}
}

func TestFindOldestFileEmptyDirectory(t *testing.T) {
	if _, err := FindOldestFile(t.TempDir()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory was not created: %v", err)
	}
	// Idempotent on an existing directory.
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("second create failed: %v", err)
	}
}
