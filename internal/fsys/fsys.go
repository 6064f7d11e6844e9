// Package fsys is the filesystem access layer shared by internal/config
// and internal/resolver.
//
// Etymology: "solum" - ground, floor, base. Grounded on
// fons/norma-go/hal/solum/solum.go, trimmed to the operations a module
// loader and config reader actually need (read, list, exists, path
// join) and renamed to plain Go idiom rather than kept Latin, since this
// package is infrastructure rather than surface grammar.
package fsys

import (
	"os"
	"path/filepath"
)

// ReadText reads an entire file as a string.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// List lists the entries of a directory by name.
func List(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	return names, nil
}

// Join joins path segments.
func Join(parts ...string) string {
	return filepath.Join(parts...)
}

// Abs resolves a path to an absolute one.
func Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// Dir returns the directory portion of a path.
func Dir(path string) string {
	return filepath.Dir(path)
}

// Ext returns the file extension, dot included.
func Ext(path string) string {
	return filepath.Ext(path)
}

// WithoutExt strips the extension from a path, if any.
func WithoutExt(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return path
	}
	return path[:len(path)-len(ext)]
}
