package irisprep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wgdzlh/irisprep/config"
)

func TestHarvestCopiesAndCountsMisses(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.ProjectRoot = t.TempDir()
	cfg.Paths.HarvestDir = filepath.Join(t.TempDir(), "save_mask")

	// only scene A has a finished preview
	segDir := filepath.Join(cfg.Paths.ProjectRoot, "A", "A"+IRIS_DIR_EXT, SEGMENTATION_DIR, "A")
	if err := os.MkdirAll(segDir, os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(segDir, MASK_PNG_NAME), []byte("png-bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	reports, err := NewHarvester(&cfg).Harvest([]string{"MISSING", "A"})
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 2 {
		t.Fatalf("reports = %d", len(reports))
	}
	if reports[0].Found {
		t.Fatal("missing preview reported as found")
	}
	if !reports[1].Found {
		t.Fatal("a miss must not abort the rest of the batch")
	}
	got, err := os.ReadFile(filepath.Join(cfg.Paths.HarvestDir, "A"+FILE_EXT_PNG))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "png-bytes" {
		t.Fatalf("harvested content = %q", got)
	}
}

func TestHarvestOverwritesExisting(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.ProjectRoot = t.TempDir()
	cfg.Paths.HarvestDir = t.TempDir()

	segDir := filepath.Join(cfg.Paths.ProjectRoot, "A", "A"+IRIS_DIR_EXT, SEGMENTATION_DIR, "A")
	if err := os.MkdirAll(segDir, os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(segDir, MASK_PNG_NAME), []byte("fresh"), 0644); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(cfg.Paths.HarvestDir, "A"+FILE_EXT_PNG)
	if err := os.WriteFile(dst, []byte("stale-longer-content"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewHarvester(&cfg).Harvest([]string{"A"}); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "fresh" {
		t.Fatalf("dst = %q", got)
	}
}
