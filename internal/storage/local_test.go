package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLocalStoreSaveOpen(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStore(dir)
	ctx := context.Background()

	key := "2026-08-28/abc123.wav"
	data := []byte("RIFFxxxxWAVE")
	if err := s.Save(ctx, key, data, "audio/wav"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !s.Exists(ctx, key) {
		t.Error("Exists = false after Save")
	}

	rc, err := s.Open(ctx, key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("round trip = %q, want %q", got, data)
	}

	// No temp files left behind
	entries, _ := os.ReadDir(filepath.Join(dir, "2026-08-28"))
	for _, e := range entries {
		if e.Name() != "abc123.wav" {
			t.Errorf("stray file %q in store dir", e.Name())
		}
	}
}

func TestLocalStoreMissingKey(t *testing.T) {
	s := NewLocalStore(t.TempDir())
	ctx := context.Background()

	if s.Exists(ctx, "2026-08-28/missing.wav") {
		t.Error("Exists = true for missing key")
	}
	if _, err := s.Open(ctx, "2026-08-28/missing.wav"); err == nil {
		t.Error("Open succeeded for missing key")
	}
}

func TestRetentionPrunerRemovesOldFiles(t *testing.T) {
	dir := t.TempDir()
	dateDir := filepath.Join(dir, "2026-01-01")
	if err := os.MkdirAll(dateDir, 0o755); err != nil {
		t.Fatal(err)
	}

	oldFile := filepath.Join(dateDir, "old.wav")
	if err := os.WriteFile(oldFile, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(oldFile, past, past); err != nil {
		t.Fatal(err)
	}

	freshFile := filepath.Join(dateDir, "fresh.wav")
	if err := os.WriteFile(freshFile, []byte("y"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewRetentionPruner(dir, 24*time.Hour, zerolog.Nop())
	p.prune()

	if _, err := os.Stat(oldFile); !os.IsNotExist(err) {
		t.Error("old file survived prune")
	}
	if _, err := os.Stat(freshFile); err != nil {
		t.Errorf("fresh file removed: %v", err)
	}
}

func TestRetentionPrunerRemovesEmptyDateDirs(t *testing.T) {
	dir := t.TempDir()
	dateDir := filepath.Join(dir, "2026-01-01")
	if err := os.MkdirAll(dateDir, 0o755); err != nil {
		t.Fatal(err)
	}
	f := filepath.Join(dateDir, "only.wav")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-48 * time.Hour)
	os.Chtimes(f, past, past)

	p := NewRetentionPruner(dir, 24*time.Hour, zerolog.Nop())
	p.prune()

	if _, err := os.Stat(dateDir); !os.IsNotExist(err) {
		t.Error("empty date dir survived prune")
	}
}
