// Package fsutil wraps the filesystem operations used while scaffolding.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tacogips/vitesetup/internal/debug"
)

// FS is the filesystem surface used by the injection engine, the structure
// materializer and the starter writer.
type FS interface {
	// ReadFile reads the whole file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes content atomically, creating parent directories.
	WriteFile(path string, content []byte, mode os.FileMode) error

	// CreateDir creates a directory and its parents.
	// created is false when the directory already existed.
	CreateDir(path string) (created bool, err error)

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool

	// IsFile reports whether path exists and is a regular file.
	IsFile(path string) bool

	// IsEmptyDir reports whether path is missing or an empty directory.
	IsEmptyDir(path string) (bool, error)
}

// OSFS implements FS on the real filesystem.
type OSFS struct{}

// NewOSFS creates a new OSFS.
func NewOSFS() FS {
	return OSFS{}
}

// ReadFile reads the whole file.
func (OSFS) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(OpRead, path, err)
	}
	return data, nil
}

// WriteFile writes content to a temporary file in the same directory and
// renames it over path. An existing file keeps its permission bits.
func (o OSFS) WriteFile(path string, content []byte, mode os.FileMode) error {
	debug.Debug("[fsutil] Writing file: %s (size: %d bytes)", path, len(content))

	dir := filepath.Dir(path)
	if _, err := o.CreateDir(dir); err != nil {
		return err
	}

	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if mode == 0 {
		mode = 0644
	}

	tmp, err := os.CreateTemp(dir, ".vitesetup-tmp-*")
	if err != nil {
		return newError(OpWrite, path, err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	_, err = tmp.Write(content)
	closeErr := tmp.Close()
	if err != nil {
		return newError(OpWrite, path, err)
	}
	if closeErr != nil {
		return newError(OpWrite, path, closeErr)
	}

	if err := os.Chmod(tmpPath, mode); err != nil {
		return newError(OpWrite, path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return newError(OpWrite, path, err)
	}

	success = true
	return nil
}

// CreateDir creates a directory and any necessary parent directories.
// Uses 0755 permissions for created directories.
func (OSFS) CreateDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return false, newError(OpMkdir, path, fs.ErrExist)
		}
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, newError(OpMkdir, path, err)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return false, newError(OpMkdir, path, err)
	}
	debug.Debug("[fsutil] Directory created: %s", path)
	return true, nil
}

// Exists checks if a file or directory exists at the given path.
func (OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile reports whether path is an existing regular file.
func (OSFS) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsEmptyDir reports whether path is missing or an empty directory.
func (OSFS) IsEmptyDir(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, newError(OpReadDir, path, err)
	}
	return len(entries) == 0, nil
}
