package testutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempDir creates a unique temporary directory and returns its path. It
// removes the directory during cleanup. It panics if the directory cannot be
// created.
//
// It resolves symlinks in the path of the directory, so that on macOS (where
// os.TempDir returns a path under /var, which is a symlink to /private/var)
// the return value is the definitive path.
func TempDir(c Cleanuper) string {
	dir, err := os.MkdirTemp("", "sdb-test")
	if err != nil {
		panic(fmt.Sprintf("create temp dir: %v", err))
	}
	dir, err = filepath.EvalSymlinks(dir)
	if err != nil {
		panic(fmt.Sprintf("resolve symlinks in temp dir: %v", err))
	}
	c.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// Chdir changes into a directory, and restores the original working directory
// during cleanup.
func Chdir(c Cleanuper, dir string) {
	oldWd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
	c.Cleanup(func() {
		if err := os.Chdir(oldWd); err != nil {
			panic(err)
		}
	})
}

// InTempDir is like TempDir, but also changes into the temporary directory,
// restoring the original working directory during cleanup.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	Chdir(c, dir)
	return dir
}
