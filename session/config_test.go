package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	content := `
image = "game.gblorb"
heap_limit = 1048576
seed = 42
clock_fallback = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ImagePath != "game.gblorb" {
		t.Errorf("ImagePath = %q", cfg.ImagePath)
	}
	if cfg.HeapLimit != 1<<20 {
		t.Errorf("HeapLimit = %d", cfg.HeapLimit)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d", cfg.Seed)
	}
	if !cfg.ClockFallback {
		t.Error("ClockFallback not parsed")
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("missing config should fail")
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("image = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed config should fail")
	}
}
