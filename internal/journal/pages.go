// Package journal creates tembo pages: it turns a scope definition plus user
// input into an in-memory page with a deterministic destination path and
// rendered, token-substituted content.
package journal

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tembo-pages/tembo/internal/errors"
	"github.com/tembo-pages/tembo/internal/logging"
	"github.com/tembo-pages/tembo/internal/models"
	"github.com/tembo-pages/tembo/internal/pathutil"
	"github.com/tembo-pages/tembo/internal/renderer"
	"github.com/tembo-pages/tembo/internal/tokens"
)

// PageCreator builds an in-memory page. There is one concrete creator today;
// the interface keeps room for other page kinds.
type PageCreator interface {
	CreatePage() (models.Page, error)
}

// ScopedPageCreator creates pages for a named scope.
//
// Resolver is exported so callers can pin its clock for deterministic date
// tokens in tests.
type ScopedPageCreator struct {
	Resolver *tokens.Resolver

	opts     models.ScopeOptions
	renderer *renderer.Renderer
	log      zerolog.Logger
}

// NewScopedPageCreator creates a page creator for the given scope options.
func NewScopedPageCreator(opts models.ScopeOptions) *ScopedPageCreator {
	templateDir := pathutil.ExpandUser(opts.TemplatePath)
	if templateDir == "" {
		templateDir = filepath.Join(pathutil.ExpandUser(opts.BasePath), ".templates")
	}
	return &ScopedPageCreator{
		Resolver: tokens.NewResolver(opts.Name, opts.UserInput),
		opts:     opts,
		renderer: renderer.New(templateDir),
		log:      logging.GetLogger("journal"),
	}
}

// Options returns the scope options the creator was built with.
func (c *ScopedPageCreator) Options() models.ScopeOptions {
	return c.opts
}

// CreatePage builds the page. In order it checks the base path exists, builds
// the raw destination path, loads and renders the template if one is
// configured, validates the input token count across path and template, and
// substitutes tokens. The destination path is always substituted; content
// substitution only runs when a template is configured, so an unconfigured
// template yields an empty content string.
//
// Failure order is part of the contract: base-path-missing precedes
// template-missing, which precedes token-count-mismatch.
func (c *ScopedPageCreator) CreatePage() (models.Page, error) {
	if err := c.checkBasePath(); err != nil {
		return models.Page{}, err
	}

	rawPath := c.rawPath()
	rendered, err := c.loadTemplate()
	if err != nil {
		return models.Page{}, err
	}

	toks := tokens.Collect(rawPath, rendered)
	if err := tokens.Validate(toks, c.opts.UserInput); err != nil {
		return models.Page{}, err
	}

	path := c.Resolver.Substitute(rawPath, toks)
	content := ""
	if c.opts.TemplateFilename != "" {
		content = c.Resolver.Substitute(rendered, toks)
	}

	c.log.Debug().Str("path", path).Str("scope", c.opts.Name).Msg("page created")
	return models.Page{Path: path, Content: content}, nil
}

// RequiredInputs returns the distinct input tokens the scope expects, in
// substitution order, without needing any user input. The interactive mode
// uses this to build one form field per token.
func (c *ScopedPageCreator) RequiredInputs() ([]string, error) {
	if err := c.checkBasePath(); err != nil {
		return nil, err
	}
	rendered, err := c.loadTemplate()
	if err != nil {
		return nil, err
	}
	return tokens.Collect(c.rawPath(), rendered), nil
}

func (c *ScopedPageCreator) checkBasePath() error {
	if !pathutil.Exists(pathutil.ExpandUser(c.opts.BasePath)) {
		return errors.BasePathMissing(c.opts.BasePath)
	}
	return nil
}

// rawPath joins base path, page path, and filename with spaces replaced by
// underscores, and applies the normalized extension as the file suffix. A
// suffix already present on the filename pattern is replaced, not appended to.
func (c *ScopedPageCreator) rawPath() string {
	pagePath := strings.ReplaceAll(c.opts.PagePath, " ", "_")
	filename := strings.ReplaceAll(c.opts.Filename, " ", "_")
	if ext := filepath.Ext(filename); ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}
	extension := strings.TrimPrefix(c.opts.Extension, ".")

	path := filepath.Join(
		pathutil.ExpandUser(c.opts.BasePath),
		pathutil.ExpandUser(pagePath),
		filename,
	)
	return path + "." + extension
}

// loadTemplate renders the configured template, or returns an empty string
// when no template_filename is set.
func (c *ScopedPageCreator) loadTemplate() (string, error) {
	if c.opts.TemplateFilename == "" {
		return "", nil
	}
	return c.renderer.Render(c.opts.TemplateFilename)
}
