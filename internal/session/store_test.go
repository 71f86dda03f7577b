package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	if _, ok := store.Get(); ok {
		t.Error("Get() reported a token before any Save")
	}

	if err := store.Save("tok-1"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	token, ok := store.Get()
	if !ok || token != "tok-1" {
		t.Errorf("Get() = %q, %v; want tok-1, true", token, ok)
	}

	// Re-login overwrites the previous credential.
	if err := store.Save("tok-2"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	token, _ = store.Get()
	if token != "tok-2" {
		t.Errorf("Get() after overwrite = %q, want tok-2", token)
	}
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	store := NewFileStore(t.TempDir())
	store.Save("tok")

	if err := store.Clear(); err != nil {
		t.Fatalf("first Clear() error = %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear() error = %v", err)
	}
	if _, ok := store.Get(); ok {
		t.Error("Get() reported a token after Clear")
	}
}

func TestFileStore_FileMode(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	if err := store.Save("tok"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, credentialsFileName))
	if err != nil {
		t.Fatalf("stat credentials: %v", err)
	}
	if got := info.Mode().Perm(); got != 0600 {
		t.Errorf("credentials mode = %o, want 0600", got)
	}
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()

	if _, ok := store.Get(); ok {
		t.Error("empty store reported a token")
	}
	store.Save("tok")
	if token, ok := store.Get(); !ok || token != "tok" {
		t.Errorf("Get() = %q, %v; want tok, true", token, ok)
	}
	store.Clear()
	store.Clear()
	if _, ok := store.Get(); ok {
		t.Error("Get() reported a token after double Clear")
	}
}
