package utils

import (
	"io"
	"os"
)

// RemoveAnyFile unlinks path whether it is a regular file or a symlink.
// A missing path is not an error.
func RemoveAnyFile(path string) error {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return os.Remove(path)
}

// EnsureRealDir makes path a real directory. A symlink left at path by an
// older run is unlinked first, so the destination tree never aliases the
// source tree.
func EnsureRealDir(path string) error {
	if fi, err := os.Lstat(path); err == nil && fi.Mode()&os.ModeSymlink != 0 {
		if err = os.Remove(path); err != nil {
			return err
		}
	}
	return os.MkdirAll(path, os.ModePerm)
}

// CopyFile copies src to dst, overwriting dst if it exists.
func CopyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return
	}
	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return
	}
	err = out.Close()
	return
}
