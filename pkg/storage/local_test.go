package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndRemove(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	rel, err := store.Save(context.Background(), filepath.Join("uploads", "recipe"), "png", []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(rel, ".png") {
		t.Fatalf("expected .png suffix, got %q", rel)
	}
	if !strings.HasPrefix(rel, filepath.Join("uploads", "recipe")) {
		t.Fatalf("expected uploads/recipe prefix, got %q", rel)
	}

	data, err := os.ReadFile(filepath.Join(store.BaseDir(), rel))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if len(data) != 3 {
		t.Fatalf("stored bytes mismatch: %v", data)
	}

	if err := store.Remove(context.Background(), rel); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := store.Remove(context.Background(), rel); err != nil {
		t.Fatalf("Remove should tolerate missing files: %v", err)
	}
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	first, err := store.Save(context.Background(), "x", ".jpg", nil)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := store.Save(context.Background(), "x", ".jpg", nil)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if first == second {
		t.Fatalf("expected unique filenames, got %q twice", first)
	}
}

func TestNewLocalStoreRequiresDir(t *testing.T) {
	if _, err := NewLocalStore("  "); err == nil {
		t.Fatalf("expected error for blank base dir")
	}
}
