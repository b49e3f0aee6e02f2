package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHarvestCommandCopiesPreviews(t *testing.T) {
	projectRoot := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "save_mask")

	segDir := filepath.Join(projectRoot, "SCENE_1", "SCENE_1.iris", "segmentation", "SCENE_1")
	if err := os.MkdirAll(segDir, os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(segDir, "mask.png"), []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"harvest", "--project-root", projectRoot, "-o", outputDir, "SCENE_1", "SCENE_2"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("harvest: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outputDir, "SCENE_1.png")); err != nil {
		t.Fatalf("harvested preview missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "SCENE_2.png")); !os.IsNotExist(err) {
		t.Fatal("miss must not produce an output file")
	}
	if !strings.Contains(out.String(), "1/2") {
		t.Fatalf("summary missing hit count: %q", out.String())
	}
}

func TestHarvestCommandNeedsIDs(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"harvest", "--project-root", t.TempDir()})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error without scene IDs")
	}
}

func TestPrepareCommandMissingTemplateAborts(t *testing.T) {
	tmp := t.TempDir()
	cmd := newRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{
		"prepare",
		"--images-root", filepath.Join(tmp, "images"),
		"--project-root", filepath.Join(tmp, "spot"),
		"--template", filepath.Join(tmp, "base.json"),
	})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("missing template must abort the run")
	}
	if !strings.Contains(err.Error(), "template") {
		t.Fatalf("err = %v", err)
	}
}
