package models

// Scope is a named page configuration from the user's config.yml. It describes
// how to build one kind of page: where it lives relative to the base path, how
// the file is named, and which template (if any) seeds its content.
type Scope struct {
	Name             string `yaml:"name"`
	Path             string `yaml:"path"`
	Filename         string `yaml:"filename"`
	Extension        string `yaml:"extension"`
	Example          string `yaml:"example,omitempty"`
	TemplateFilename string `yaml:"template_filename,omitempty"`
}

// ScopeOptions carries everything a page creator needs to build a page:
// the resolved scope fields plus the user-supplied input token values.
type ScopeOptions struct {
	BasePath  string
	PagePath  string
	Filename  string
	Extension string
	Name      string

	// UserInput holds the positional input token values. nil means no input
	// was supplied, which is distinct from an empty slice only in intent;
	// both fail validation the same way when tokens are present.
	UserInput []string

	Example string

	// TemplatePath is the directory containing templates. Empty means
	// <BasePath>/.templates.
	TemplatePath string

	// TemplateFilename is the template file relative to TemplatePath.
	// Empty means the page starts with no content.
	TemplateFilename string
}
