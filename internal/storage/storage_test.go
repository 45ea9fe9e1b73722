package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tembo-pages/tembo/internal/errors"
	"github.com/tembo-pages/tembo/internal/models"
)

func TestSavePageCreatesParentDirectories(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "tembo-storage-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	page := models.Page{
		Path:    filepath.Join(tmpDir, "meetings", "March_24", "kickoff.md"),
		Content: "# Kickoff\n",
	}

	success, err := New().SavePage(page)
	if err != nil {
		t.Fatalf("Failed to save page: %v", err)
	}
	if success.Message != page.Path {
		t.Errorf("Expected success message to carry the path, got %q", success.Message)
	}

	data, err := os.ReadFile(page.Path)
	if err != nil {
		t.Fatalf("Failed to read saved page: %v", err)
	}
	if string(data) != "# Kickoff\n" {
		t.Errorf("Unexpected content %q", string(data))
	}
}

func TestSavePageEmptyContent(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "tembo-storage-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	page := models.Page{Path: filepath.Join(tmpDir, "empty.md")}
	if _, err := New().SavePage(page); err != nil {
		t.Fatalf("Failed to save empty page: %v", err)
	}

	info, err := os.Stat(page.Path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("Expected an empty file, got %d bytes", info.Size())
	}
}

// Saving is not idempotent by design: the second save must fail and must
// leave the original file untouched.
func TestSavePageRefusesOverwrite(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "tembo-storage-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	store := New()
	page := models.Page{
		Path:    filepath.Join(tmpDir, "notes", "todo.md"),
		Content: "original\n",
	}
	if _, err := store.SavePage(page); err != nil {
		t.Fatal(err)
	}

	page.Content = "overwritten\n"
	_, err = store.SavePage(page)
	if err == nil {
		t.Fatal("Expected an already-exists error on second save, got nil")
	}
	appErr := errors.GetAppError(err)
	if appErr.Code != errors.CodePageExists {
		t.Errorf("Expected code %s, got %s", errors.CodePageExists, appErr.Code)
	}
	if appErr.Path != page.Path {
		t.Errorf("Expected error to name the path, got %q", appErr.Path)
	}

	data, err := os.ReadFile(page.Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "original\n" {
		t.Errorf("Expected original content preserved after failed save, got %q", string(data))
	}
}
