package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if downloadsDir == "" {
		t.Fatal("Downloads directory is empty")
	}

	if !IsAndroid() && filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "favicon.ico")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_EmptyPath(t *testing.T) {
	err := OpenFileWithDefaultApp("")
	if err == nil || !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Expected 'file does not exist' error, got: %v", err)
	}
}

func TestReserveFilePath(t *testing.T) {
	dir := t.TempDir()

	path, err := ReserveFilePath(dir, "favicon32.png")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if path != filepath.Join(dir, "favicon32.png") {
		t.Errorf("Expected free name to be used as is, got %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected placeholder file, got %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "favicon32 (1).png"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	path, err = ReserveFilePath(dir, "favicon32.png")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if path != filepath.Join(dir, "favicon32 (2).png") {
		t.Errorf("Expected favicon32 (2).png, got %s", path)
	}

	data, err := os.ReadFile(filepath.Join(dir, "favicon32 (1).png"))
	if err != nil || string(data) != "x" {
		t.Errorf("Existing file must be left alone, got %q, %v", data, err)
	}
}
