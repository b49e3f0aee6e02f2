package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wgdzlh/irisprep/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, exists, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if cfg.Paths.ImagesRoot != "spot/images" {
		t.Fatalf("unexpected images_root: %q", cfg.Paths.ImagesRoot)
	}
	if cfg.Scenes.MaskName != "f_1dpwseg.tif" {
		t.Fatalf("unexpected mask_name: %q", cfg.Scenes.MaskName)
	}
	if !cfg.Scenes.OverwriteJSON {
		t.Fatal("overwrite_json should default to true")
	}
}

func TestLoadLayersFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "irisprep.toml")
	body := `
[paths]
images_root = "/data/in"
project_root = "/data/out"

[scenes]
ids = ["A", "B"]
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Paths.ImagesRoot != "/data/in" || cfg.Paths.ProjectRoot != "/data/out" {
		t.Fatalf("paths not applied: %+v", cfg.Paths)
	}
	if cfg.Paths.Template != "base.json" {
		t.Fatalf("default template lost: %q", cfg.Paths.Template)
	}
	if len(cfg.Scenes.IDs) != 2 || cfg.Scenes.IDs[0] != "A" {
		t.Fatalf("ids not applied: %v", cfg.Scenes.IDs)
	}
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	cfg.Paths.Template = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty template must not validate")
	}
}
