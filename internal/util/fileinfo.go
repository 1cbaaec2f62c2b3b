package util

import (
	"os"
	"path/filepath"
	"strings"
)

// FileInfo is the subset of stat data used to detect snapshot changes
type FileInfo struct {
	ModTime int64 // UnixNano, editors can save twice within a second
	Size    int64
}

// GetFileInfo stats a file
func GetFileInfo(path string) (*FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return &FileInfo{
		ModTime: stat.ModTime().UnixNano(),
		Size:    stat.Size(),
	}, nil
}

// ExpandPath resolves a leading "~/" and makes the path absolute
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

// EnsureDir creates a directory and its parents
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
