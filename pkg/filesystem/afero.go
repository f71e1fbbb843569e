package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// NewOS returns the OS-backed filesystem used outside of tests
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// IsRegularFile reports whether path exists and is not a directory
func IsRegularFile(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// EnsureDir creates dir and any missing parents. It succeeds when the
// directory already exists.
func EnsureDir(fsys afero.Fs, dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return fsys.MkdirAll(dir, dirPerm)
}

// WriteFile writes data to path, creating parent directories as needed
func WriteFile(fsys afero.Fs, path string, data []byte) error {
	if err := EnsureDir(fsys, filepath.Dir(path)); err != nil {
		return err
	}
	return afero.WriteFile(fsys, path, data, filePerm)
}

// ReadFile reads the whole file at path
func ReadFile(fsys afero.Fs, path string) ([]byte, error) {
	return afero.ReadFile(fsys, path)
}
