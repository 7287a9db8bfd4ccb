package player

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// These tests stay away from the speaker so they run without an audio device.

func TestPlayer_LoadUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.aiff")
	if err := os.WriteFile(path, []byte("FORM"), 0o600); err != nil {
		t.Fatal(err)
	}

	p := New()
	err := p.Load(path)

	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Load = %v, want ErrUnsupportedFormat", err)
	}
	if p.State() != Stopped {
		t.Errorf("state = %v, want Stopped", p.State())
	}
}

func TestPlayer_LoadCorruptOgg(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.ogg")
	if err := os.WriteFile(path, []byte("OggS"), 0o600); err != nil {
		t.Fatal(err)
	}

	p := New()
	err := p.Load(path)

	if err == nil || errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Load = %v, want a decode error", err)
	}
	if p.State() != Stopped {
		t.Errorf("state = %v, want Stopped", p.State())
	}
}

func TestPlayer_LoadMissingFile(t *testing.T) {
	p := New()
	if err := p.Load(filepath.Join(t.TempDir(), "missing.mp3")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPlayer_Unloaded(t *testing.T) {
	p := New()

	p.Play()
	p.Pause()

	if p.State() != Stopped {
		t.Errorf("state = %v, want Stopped", p.State())
	}
	if p.Position() != 0 || p.Duration() != 0 {
		t.Errorf("Position/Duration = %v/%v, want 0/0", p.Position(), p.Duration())
	}
	if err := p.SeekTo(0); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("SeekTo = %v, want ErrNotLoaded", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestPlayer_VolumeKeptWithoutFile(t *testing.T) {
	p := New()

	p.SetVolumeDB(-12)
	if got := p.VolumeDB(); got != -12 {
		t.Errorf("VolumeDB = %v, want -12", got)
	}

	p.SetVolumeDB(10)
	if got := p.VolumeDB(); got != MaxVolumeDB {
		t.Errorf("VolumeDB = %v, want %v", got, MaxVolumeDB)
	}
}
