package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"paperwire/internal/app"
)

func TestConfig_Params_Defaults(t *testing.T) {
	p, err := app.DefaultConfig().Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if p.Width != 60 || p.GroupSize != 10 || p.ParityTag != 'P' {
		t.Fatalf("unexpected defaults: %+v", p)
	}
}

func TestConfig_Params_Rejects(t *testing.T) {
	bad := []app.Config{
		{Width: 0, GroupSize: 10, ParityTag: "P"},
		{Width: 60, GroupSize: 0, ParityTag: "P"},
		{Width: 60, GroupSize: 10, ParityTag: ""},
		{Width: 60, GroupSize: 10, ParityTag: "PQ"},
		{Width: 60, GroupSize: 10, ParityTag: "5"}, // digits collide with data tags
	}
	for _, c := range bad {
		if _, err := c.Params(); err == nil {
			t.Errorf("config %+v accepted", c)
		}
	}
}

func TestLoadProfile_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	body := "width: 40\ngroup_size: 5\ncompress: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	prof, err := app.LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}

	cfg := app.DefaultConfig()
	cfg.Apply(prof)
	if cfg.Width != 40 || cfg.GroupSize != 5 || !cfg.Compress {
		t.Fatalf("overlay missed fields: %+v", cfg)
	}
	// parity_tag was absent from the profile and keeps its default.
	if cfg.ParityTag != "P" {
		t.Fatalf("parity tag = %q, want P", cfg.ParityTag)
	}
}

func TestNewWire(t *testing.T) {
	w, err := app.NewWire(app.DefaultConfig())
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if w.Transfer == nil || w.Logger == nil {
		t.Fatal("wire is missing services")
	}
	if w.Params.Width != 60 {
		t.Fatalf("params not resolved: %+v", w.Params)
	}
}
