package state

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory failed: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestInitSchema_Idempotent(t *testing.T) {
	m := openTestManager(t)

	if err := InitSchema(m.DB()); err != nil {
		t.Fatalf("second InitSchema failed: %v", err)
	}

	var version int
	if err := m.DB().QueryRow(`SELECT version FROM schema_version`).Scan(&version); err != nil {
		t.Fatalf("query version: %v", err)
	}
	if version != currentSchemaVersion {
		t.Errorf("version = %d, want %d", version, currentSchemaVersion)
	}
}

func TestSettings_GetSet(t *testing.T) {
	m := openTestManager(t)

	if _, ok, err := m.Get(KeyRoot); err != nil || ok {
		t.Fatalf("Get on empty db = ok %v, err %v; want false, nil", ok, err)
	}

	if err := m.Set(KeyRoot, "/music"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := m.Set(KeyRoot, "/srv/music"); err != nil {
		t.Fatalf("Set (overwrite) failed: %v", err)
	}

	got, ok, err := m.Get(KeyRoot)
	if err != nil || !ok {
		t.Fatalf("Get = ok %v, err %v", ok, err)
	}
	if got != "/srv/music" {
		t.Errorf("Get(%q) = %q, want %q", KeyRoot, got, "/srv/music")
	}
}

func TestSettings_Float(t *testing.T) {
	m := openTestManager(t)

	if err := m.SetFloat(KeyVolume, -4.5); err != nil {
		t.Fatalf("SetFloat failed: %v", err)
	}
	got, ok, err := m.GetFloat(KeyVolume)
	if err != nil || !ok {
		t.Fatalf("GetFloat = ok %v, err %v", ok, err)
	}
	if got != -4.5 {
		t.Errorf("GetFloat() = %v, want -4.5", got)
	}

	if err := m.Set(KeyVolume, "loud"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, _, err := m.GetFloat(KeyVolume); err == nil {
		t.Error("GetFloat on a non-number should fail")
	}
}

func TestOpen_Locked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelf.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}

	if _, err := Open(path); !errors.Is(err, ErrLocked) {
		t.Errorf("second Open error = %v, want ErrLocked", err)
	}

	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	again, err := Open(path)
	if err != nil {
		t.Fatalf("Open after Close failed: %v", err)
	}
	again.Close()
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shelf.db")

	m, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := m.SetFloat(KeyVolume, -3); err != nil {
		t.Fatalf("SetFloat failed: %v", err)
	}
	m.Close()

	m, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer m.Close()

	got, ok, err := m.GetFloat(KeyVolume)
	if err != nil || !ok || got != -3 {
		t.Errorf("GetFloat after reopen = %v, %v, %v; want -3, true, nil", got, ok, err)
	}
}

func TestMock(t *testing.T) {
	m := NewMock()

	if err := m.SetFloat(KeyVolume, -1.5); err != nil {
		t.Fatalf("SetFloat failed: %v", err)
	}
	got, ok, _ := m.GetFloat(KeyVolume)
	if !ok || got != -1.5 {
		t.Errorf("GetFloat() = %v, %v; want -1.5, true", got, ok)
	}

	m.SetErr = errors.New("disk full")
	if err := m.Set(KeyRoot, "/x"); err == nil {
		t.Error("Set should return SetErr")
	}

	m.Close()
	if !m.Closed() {
		t.Error("Closed() = false after Close")
	}
}
