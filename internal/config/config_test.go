package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_OverridesDefaultsSelectively(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cutplan.yaml")
	data := `
project_name: My Cut
frame_rate: 24
videos:
  - /media/a.mp4
  - /media/b.mp4
silence_noise_db: -40
stills: false
`
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	s, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.ProjectName != "My Cut" || s.FrameRate != 24 {
		t.Fatalf("overrides not applied: %+v", s)
	}
	if len(s.Videos) != 2 || s.Videos[1] != "/media/b.mp4" {
		t.Fatalf("videos = %v", s.Videos)
	}
	if s.SilenceNoiseDB != -40 {
		t.Fatalf("silence_noise_db = %v", s.SilenceNoiseDB)
	}
	if s.Stills {
		t.Fatalf("stills should be disabled")
	}
	// Untouched keys keep their defaults.
	if s.SceneSensitivity != 0.1 || s.ReducedPause != 1.0 || s.OutDir != "out" {
		t.Fatalf("defaults lost: %+v", s)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(p, []byte("frame_rate: [not a number"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(p); err == nil {
		t.Fatalf("expected parse error")
	}
}
