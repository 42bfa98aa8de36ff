package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestManager(t *testing.T) {
	tempDir := t.TempDir()

	manager, err := NewManager(tempDir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	// Base directory must exist after construction
	if _, err := os.Stat(tempDir); err != nil {
		t.Fatalf("Expected base directory to exist: %v", err)
	}

	// Category folder creation
	dir, err := manager.EnsureCategoryDir("mohinga")
	if err != nil {
		t.Fatalf("Failed to create category dir: %v", err)
	}
	if dir != filepath.Join(tempDir, "mohinga") {
		t.Errorf("Unexpected category dir: %s", dir)
	}

	// Empty category counts zero
	count, err := manager.CountImages("mohinga")
	if err != nil || count != 0 {
		t.Errorf("Expected zero images in fresh category, got %d (err %v)", count, err)
	}

	// SaveImage writes the expected file
	testData := []byte("test image data")
	saved, err := manager.SaveImage(bytes.NewReader(testData), "mohinga", 1, ".jpg")
	if err != nil {
		t.Fatalf("Failed to save image: %v", err)
	}

	expectedPath := filepath.Join(tempDir, "mohinga", "mohinga_001.jpg")
	if saved != expectedPath {
		t.Errorf("Expected path %s, got %s", expectedPath, saved)
	}

	content, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if !bytes.Equal(content, testData) {
		t.Error("File content does not match saved data")
	}

	// No stray temp file
	if _, err := os.Stat(expectedPath + ".tmp"); !os.IsNotExist(err) {
		t.Error("Expected temporary file to be gone after save")
	}

	count, err = manager.CountImages("mohinga")
	if err != nil || count != 1 {
		t.Errorf("Expected 1 image, got %d (err %v)", count, err)
	}
}

func TestSaveImageNeverOverwrites(t *testing.T) {
	manager, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	if _, err := manager.SaveImage(bytes.NewReader([]byte("first")), "faluda", 1, ".jpg"); err != nil {
		t.Fatalf("First save failed: %v", err)
	}

	if _, err := manager.SaveImage(bytes.NewReader([]byte("second")), "faluda", 1, ".jpg"); err == nil {
		t.Fatal("Expected saving over an existing index to fail")
	}

	// Original content untouched
	content, err := os.ReadFile(filepath.Join(manager.BaseDir(), "faluda", "faluda_001.jpg"))
	if err != nil {
		t.Fatalf("Failed to read original file: %v", err)
	}
	if string(content) != "first" {
		t.Error("Expected original content to be preserved")
	}
}

func TestNextIndexResumesPastExistingFiles(t *testing.T) {
	tempDir := t.TempDir()
	manager, err := NewManager(tempDir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	// Fresh category starts at 1
	idx, err := manager.NextIndex("shan noodles")
	if err != nil || idx != 1 {
		t.Errorf("Expected next index 1 for fresh category, got %d (err %v)", idx, err)
	}

	// Seed files from a previous run, mixed extensions and padding
	dir, _ := manager.EnsureCategoryDir("shan noodles")
	for _, name := range []string{
		"shan noodles_001.jpg",
		"shan noodles_002.png",
		"shan noodles_007.webp",
		"notes.txt", // ignored
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to seed file: %v", err)
		}
	}

	idx, err = manager.NextIndex("shan noodles")
	if err != nil {
		t.Fatalf("NextIndex failed: %v", err)
	}
	if idx != 8 {
		t.Errorf("Expected next index 8 after highest existing index 7, got %d", idx)
	}

	count, err := manager.CountImages("shan noodles")
	if err != nil || count != 3 {
		t.Errorf("Expected 3 indexed images counted, got %d (err %v)", count, err)
	}
}
