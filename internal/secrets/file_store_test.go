package secrets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreSetGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "secrets.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}

	got, err := s.Get(KeyGeminiAPIKey)
	if err != nil {
		t.Fatalf("get on empty store: %v", err)
	}
	if got != "" {
		t.Fatalf("expected absent key to read as empty, got %q", got)
	}

	if err := s.Set(KeyGeminiAPIKey, "k1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err = s.Get(KeyGeminiAPIKey)
	if err != nil || got != "k1" {
		t.Fatalf("get after set: %q, %v", got, err)
	}

	// Overwrite
	if err := s.Set(KeyGeminiAPIKey, "k2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = s.Get(KeyGeminiAPIKey)
	if got != "k2" {
		t.Fatalf("expected overwritten value, got %q", got)
	}

	// Values survive a reopen
	s2, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, _ = s2.Get(KeyGeminiAPIKey)
	if got != "k2" {
		t.Fatalf("value lost across reopen: %q", got)
	}
}

func TestFileStoreMalformedFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	got, err := s.Get("anything")
	if err != nil || got != "" {
		t.Fatalf("malformed file should read as empty: %q, %v", got, err)
	}
}
