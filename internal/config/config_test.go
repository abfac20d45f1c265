package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Company.Name != "AZOTH AGENCE" {
		t.Errorf("unexpected company name %q", cfg.Company.Name)
	}
	if cfg.Company.Siren != "928520014" {
		t.Errorf("unexpected siren %q", cfg.Company.Siren)
	}
	if cfg.Output.Dir == "" || cfg.Output.LogoPath == "" {
		t.Error("expected output paths to have defaults")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Company.Name != DefaultConfig().Company.Name {
		t.Error("expected defaults for missing file")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Company.Name = "AUTRE AGENCE"
	cfg.Output.Dir = "/tmp/docs"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Company.Name != "AUTRE AGENCE" {
		t.Errorf("expected saved name, got %q", loaded.Company.Name)
	}
	if loaded.Output.Dir != "/tmp/docs" {
		t.Errorf("expected saved output dir, got %q", loaded.Output.Dir)
	}

	// Fields absent from the file keep their defaults
	if loaded.Company.Siren != "928520014" {
		t.Errorf("expected default siren, got %q", loaded.Company.Siren)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("company: [not a mapping"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}
