// Package service is the facade the CLI and interactive UI call. It wires the
// configuration, page creation, and persistence together.
package service

import (
	"github.com/rs/zerolog"
	"github.com/sahilm/fuzzy"

	"github.com/tembo-pages/tembo/internal/config"
	"github.com/tembo-pages/tembo/internal/journal"
	"github.com/tembo-pages/tembo/internal/logging"
	"github.com/tembo-pages/tembo/internal/models"
	"github.com/tembo-pages/tembo/internal/storage"
)

// Service provides the operations of the tool over a loaded configuration.
type Service struct {
	cfg   *config.Config
	store *storage.Storage
	log   zerolog.Logger
}

// New creates a service over the given configuration.
func New(cfg *config.Config) *Service {
	return &Service{
		cfg:   cfg,
		store: storage.New(),
		log:   logging.GetLogger("service"),
	}
}

// ListScopes returns the scope names defined in the config, in config order.
func (s *Service) ListScopes() []string {
	return s.cfg.ScopeNames()
}

// Scope resolves a scope definition by name.
func (s *Service) Scope(name string) (models.Scope, error) {
	return s.cfg.Scope(name)
}

// Example returns the example command for a scope, empty if none configured.
func (s *Service) Example(name string) (string, error) {
	scope, err := s.cfg.Scope(name)
	if err != nil {
		return "", err
	}
	return scope.Example, nil
}

// CreatePage builds the in-memory page for a scope and the given user input.
// Nothing touches disk here; call SavePage to persist the result.
func (s *Service) CreatePage(scopeName string, inputs []string) (models.Page, error) {
	scope, err := s.cfg.Scope(scopeName)
	if err != nil {
		return models.Page{}, err
	}
	return journal.NewScopedPageCreator(s.options(scope, inputs)).CreatePage()
}

// RequiredInputs returns the input tokens a scope expects, in substitution
// order.
func (s *Service) RequiredInputs(scopeName string) ([]string, error) {
	scope, err := s.cfg.Scope(scopeName)
	if err != nil {
		return nil, err
	}
	return journal.NewScopedPageCreator(s.options(scope, nil)).RequiredInputs()
}

// SavePage persists a page to disk.
func (s *Service) SavePage(page models.Page) (models.Success, error) {
	return s.store.SavePage(page)
}

// SuggestScopes returns config scope names fuzzy-matching the given name,
// best match first. Used for "did you mean" hints on unknown scopes.
func (s *Service) SuggestScopes(name string) []string {
	matches := fuzzy.Find(name, s.cfg.ScopeNames())
	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}

func (s *Service) options(scope models.Scope, inputs []string) models.ScopeOptions {
	return models.ScopeOptions{
		BasePath:         s.cfg.BasePath,
		PagePath:         scope.Path,
		Filename:         scope.Filename,
		Extension:        scope.Extension,
		Name:             scope.Name,
		UserInput:        inputs,
		Example:          scope.Example,
		TemplatePath:     s.cfg.TemplatePath,
		TemplateFilename: scope.TemplateFilename,
	}
}
