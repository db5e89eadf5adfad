package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// SaveImageBlob writes one uploaded blob under baseDir/subdir and returns
// the path relative to baseDir, with forward slashes so it can be stored in
// the DB and served from the static uploads mount.
func SaveImageBlob(baseDir, subdir string, data []byte, ext string, seq int) (string, error) {
	if ext == "" {
		ext = ".jpg"
	}

	dir := filepath.Join(baseDir, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := fmt.Sprintf("%d_%d%s", time.Now().UnixNano(), seq, ext)
	fullpath := filepath.Join(dir, filename)

	if err := os.WriteFile(fullpath, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subdir, filename)), nil
}

// RemoveImageBlob deletes a stored blob. Best-effort: a missing file only
// logs, the DB row is the source of truth.
func RemoveImageBlob(baseDir, relPath string) {
	if relPath == "" {
		return
	}
	full := filepath.Join(baseDir, filepath.FromSlash(relPath))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: failed to remove image file %s: %v", full, err)
	}
}
