package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureRealDirReplacesSymlink(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	if err := os.Mkdir(src, os.ModePerm); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(tmp, "dst")
	if err := os.Symlink(src, dst); err != nil {
		t.Skipf("symlink not supported: %v", err)
	}
	if err := EnsureRealDir(dst); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Lstat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode()&os.ModeSymlink != 0 {
		t.Fatal("dst is still a symlink")
	}
	if !fi.IsDir() {
		t.Fatal("dst is not a directory")
	}
	// writing under dst must not touch src
	if err = os.WriteFile(filepath.Join(dst, "a"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err = os.Stat(filepath.Join(src, "a")); !os.IsNotExist(err) {
		t.Fatal("write leaked into source dir")
	}
}

func TestRemoveAnyFile(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "f")
	if err := RemoveAnyFile(p); err != nil {
		t.Fatalf("missing path should not err: %v", err)
	}
	if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := RemoveAnyFile(p); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatal("file not removed")
	}
	ln := filepath.Join(tmp, "ln")
	if err := os.Symlink(filepath.Join(tmp, "void"), ln); err != nil {
		t.Skipf("symlink not supported: %v", err)
	}
	if err := RemoveAnyFile(ln); err != nil {
		t.Fatalf("dangling symlink: %v", err)
	}
	if _, err := os.Lstat(ln); !os.IsNotExist(err) {
		t.Fatal("symlink not removed")
	}
}

func TestCopyFileOverwrites(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src.png")
	dst := filepath.Join(tmp, "dst.png")
	if err := os.WriteFile(src, []byte("new"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, []byte("old-and-longer"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := CopyFile(src, dst); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Fatalf("dst content = %q", got)
	}
}
