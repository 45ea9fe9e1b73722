package renderer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tembo-pages/tembo/internal/errors"
)

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRenderPlainTemplate(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "tembo-renderer-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	writeTemplate(t, tmpDir, "meeting.md.tpl", "# Meeting\n\n- {input0}\n")

	out, err := New(tmpDir).Render("meeting.md.tpl")
	if err != nil {
		t.Fatalf("Failed to render template: %v", err)
	}
	if out != "# Meeting\n\n- {input0}\n" {
		t.Errorf("Expected tokens to pass through the engine untouched, got %q", out)
	}
}

func TestRenderTemplateExpressions(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "tembo-renderer-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	writeTemplate(t, tmpDir, "note.tpl", "{% if true %}rendered{% endif %}")

	out, err := New(tmpDir).Render("note.tpl")
	if err != nil {
		t.Fatalf("Failed to render template: %v", err)
	}
	if out != "rendered" {
		t.Errorf("Expected template expression to render, got %q", out)
	}
}

func TestRenderMissingTemplate(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "tembo-renderer-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	_, err = New(tmpDir).Render("absent.tpl")
	if err == nil {
		t.Fatal("Expected a template-missing error, got nil")
	}

	appErr := errors.GetAppError(err)
	if appErr.Code != errors.CodeTemplateMissing {
		t.Errorf("Expected code %s, got %s", errors.CodeTemplateMissing, appErr.Code)
	}
	wantPath := filepath.Join(tmpDir, "absent.tpl")
	if appErr.Path != wantPath {
		t.Errorf("Expected resolved path %s in error, got %s", wantPath, appErr.Path)
	}
}

func TestRenderMissingTemplateDirectory(t *testing.T) {
	_, err := New("/nonexistent/templates").Render("note.tpl")
	if err == nil {
		t.Fatal("Expected a template-missing error, got nil")
	}
	if !errors.IsCode(err, errors.CodeTemplateMissing) {
		t.Errorf("Expected a template-missing error, got %v", err)
	}
}
