package utils

import (
	"os"
	"path/filepath"
	"time"
)

// DirSize returns the total size in bytes of all regular files below path.
func DirSize(path string) (int64, error) {
	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return err
	})
	return size, err
}

// FindOldestFile returns the regular file with the oldest modification
// time in dir, or os.ErrNotExist when the directory holds no files.
func FindOldestFile(dir string) (oldestFile os.FileInfo, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	oldestTime := time.Now()
	for _, entry := range entries {
		info, ierr := entry.Info()
		if ierr != nil {
			continue
		}
		if info.Mode().IsRegular() && info.ModTime().Before(oldestTime) {
			oldestFile = info
			oldestTime = info.ModTime()
		}
	}

	if oldestFile == nil {
		err = os.ErrNotExist
	}
	return
}

// CreateDirectoryIfNotExists makes sure the given directory (and parents)
// exist before anything is written into it.
func CreateDirectoryIfNotExists(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}
