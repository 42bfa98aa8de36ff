package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// Manager handles the on-disk layout: one folder per category under a base
// directory, image files named <category>_<NNN>.<ext> with a monotonic,
// zero-padded index.
type Manager struct {
	baseDir string
}

// indexPattern extracts the numeric index from a stored image filename
var indexPattern = regexp.MustCompile(`_(\d+)\.[A-Za-z]+$`)

// NewManager creates a storage manager rooted at baseDir, creating the
// directory if needed.
func NewManager(baseDir string) (*Manager, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	return &Manager{baseDir: baseDir}, nil
}

// BaseDir returns the root output directory
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// CategoryDir returns the folder path for a category without creating it
func (m *Manager) CategoryDir(category string) string {
	return filepath.Join(m.baseDir, category)
}

// EnsureCategoryDir creates the folder for a category. The folder exists
// even when a category ends up with zero images.
func (m *Manager) EnsureCategoryDir(category string) (string, error) {
	dir := m.CategoryDir(category)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create category directory: %w", err)
	}
	return dir, nil
}

// NextIndex returns the next free 1-based index for a category by scanning
// existing files. Re-runs continue numbering past earlier downloads instead
// of overwriting them.
func (m *Manager) NextIndex(category string) (int, error) {
	entries, err := os.ReadDir(m.CategoryDir(category))
	if err != nil {
		if os.IsNotExist(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to read category directory: %w", err)
	}

	max := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matches := indexPattern.FindStringSubmatch(entry.Name())
		if matches == nil {
			continue
		}
		if idx, err := strconv.Atoi(matches[1]); err == nil && idx > max {
			max = idx
		}
	}

	return max + 1, nil
}

// SaveImage writes image bytes to <category>/<category>_<NNN><ext>. The
// write goes through a temporary file and an atomic rename so a failed
// download never leaves a partial image behind. An existing file at the
// target index is an error, never overwritten.
func (m *Manager) SaveImage(r io.Reader, category string, index int, ext string) (string, error) {
	dir, err := m.EnsureCategoryDir(category)
	if err != nil {
		return "", err
	}

	filename := filepath.Join(dir, fmt.Sprintf("%s_%03d%s", category, index, ext))
	if _, err := os.Stat(filename); err == nil {
		return "", fmt.Errorf("file already exists: %s", filename)
	}

	tempFile := filename + ".tmp"
	out, err := os.Create(tempFile)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}

	_, err = io.Copy(out, r)
	closeErr := out.Close()

	if err != nil {
		os.Remove(tempFile)
		return "", fmt.Errorf("failed to save image data: %w", err)
	}
	if closeErr != nil {
		os.Remove(tempFile)
		return "", fmt.Errorf("failed to close file: %w", closeErr)
	}

	if err := os.Rename(tempFile, filename); err != nil {
		os.Remove(tempFile)
		return "", fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return filename, nil
}

// CountImages returns the number of stored images for a category
func (m *Manager) CountImages(category string) (int, error) {
	entries, err := os.ReadDir(m.CategoryDir(category))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read category directory: %w", err)
	}

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && indexPattern.MatchString(entry.Name()) {
			count++
		}
	}

	return count, nil
}
