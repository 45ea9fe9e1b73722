// Package renderer loads template files and renders them through pongo2.
// Tembo treats the rendered output as an opaque string: token substitution
// happens afterwards, in a separate pass, and single-brace tokens like
// {input0} pass through the engine untouched.
package renderer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flosch/pongo2/v6"

	"github.com/tembo-pages/tembo/internal/errors"
)

// Renderer renders template files from a single template directory.
type Renderer struct {
	dir string
}

// New creates a renderer for the given template directory.
func New(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// Dir returns the template directory the renderer reads from.
func (r *Renderer) Dir() string {
	return r.dir
}

// Render loads name from the template directory and renders it with an empty
// context. A missing file fails with a template-missing error naming the
// resolved full path; template syntax errors propagate as-is.
func (r *Renderer) Render(name string) (string, error) {
	fullPath := filepath.Join(r.dir, name)
	if _, err := os.Stat(fullPath); err != nil {
		return "", errors.TemplateMissing(fullPath)
	}

	loader, err := pongo2.NewLocalFileSystemLoader(r.dir)
	if err != nil {
		return "", fmt.Errorf("template directory %s: %w", r.dir, err)
	}
	tpl, err := pongo2.NewSet("tembo", loader).FromFile(name)
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", fullPath, err)
	}
	out, err := tpl.Execute(pongo2.Context{})
	if err != nil {
		return "", fmt.Errorf("render template %s: %w", fullPath, err)
	}
	return out, nil
}
