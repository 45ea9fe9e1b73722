// Package cli implements the headless command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tembo-pages/tembo/internal/errors"
	"github.com/tembo-pages/tembo/internal/service"
)

// CLI dispatches commands against the service. Expected outcomes (including
// a page that already exists) exit 0; failures exit 1.
type CLI struct {
	svc *service.Service
	out io.Writer
}

// New creates a CLI over the given service, printing to stdout.
func New(svc *service.Service) *CLI {
	return &CLI{svc: svc, out: os.Stdout}
}

// NewWithOutput creates a CLI printing to the given writer. Used by tests.
func NewWithOutput(svc *service.Service, out io.Writer) *CLI {
	return &CLI{svc: svc, out: out}
}

// Execute runs a command and returns the process exit code.
func (c *CLI) Execute(args []string) int {
	if len(args) == 0 {
		c.printUsage()
		return 1
	}

	switch args[0] {
	case "new":
		return c.newPage(args[1:])
	case "list", "ls":
		return c.listScopes()
	case "example":
		return c.showExample(args[1:])
	case "help", "--help", "-h":
		c.printUsage()
		return 0
	default:
		c.message(fmt.Sprintf("Unknown command '%s'", args[0]))
		c.printUsage()
		return 1
	}
}

// newPage creates a new page: `tembo new <scope> [inputs...] [--dry-run] [--example]`.
func (c *CLI) newPage(args []string) int {
	var scopeName string
	var inputs []string
	var dryRun, example bool

	for _, arg := range args {
		switch arg {
		case "--dry-run":
			dryRun = true
		case "--example":
			example = true
		default:
			if scopeName == "" {
				scopeName = arg
			} else {
				inputs = append(inputs, arg)
			}
		}
	}
	if scopeName == "" {
		c.message("Usage: tembo new <scope> [inputs...] [--dry-run] [--example]")
		return 1
	}

	scope, err := c.svc.Scope(scopeName)
	if err != nil {
		appErr := errors.GetAppError(err)
		c.message(appErr.Error())
		if appErr.Code == errors.CodeScopeNotFound {
			if suggestions := c.svc.SuggestScopes(scopeName); len(suggestions) > 0 {
				c.message(fmt.Sprintf("Did you mean '%s'?", suggestions[0]))
			}
		}
		return 1
	}

	if example {
		if scope.Example != "" {
			c.message(fmt.Sprintf("Example for %s: %s", scope.Name, scope.Example))
		} else {
			c.message("No example in config.yml")
		}
		return 0
	}

	page, err := c.svc.CreatePage(scopeName, inputs)
	if err != nil {
		return c.reportCreateError(err, scope.Example)
	}

	if dryRun {
		c.message(fmt.Sprintf("%s will be created", page.Path))
		return 0
	}

	success, err := c.svc.SavePage(page)
	if err != nil {
		appErr := errors.GetAppError(err)
		if appErr.Code == errors.CodePageExists {
			// An existing page is a handled outcome, not a failure.
			c.message(fmt.Sprintf("File %s", appErr.Error()))
			return 0
		}
		c.message(appErr.Error())
		return 1
	}

	c.message(fmt.Sprintf("Saved %s to disk", success.Message))
	return 0
}

// reportCreateError phrases page-creation failures, appending the scope's
// example to token-count mismatches when one is configured.
func (c *CLI) reportCreateError(err error, example string) int {
	appErr := errors.GetAppError(err)
	if appErr.Code != errors.CodeTokenMismatch {
		c.message(appErr.Error())
		return 1
	}

	msg := fmt.Sprintf("Your tembo config.yml/template specifies %d input tokens, you gave %d",
		appErr.Expected, appErr.Given)
	if example != "" {
		msg += fmt.Sprintf(". Example: %s", example)
	}
	c.message(msg)
	return 1
}

// listScopes prints the scope names defined in the config.yml.
func (c *CLI) listScopes() int {
	names := c.svc.ListScopes()
	joined := strings.Join(names, "', '")
	c.message(fmt.Sprintf("%d names found in config.yml: '%s'", len(names), joined))
	return 0
}

// showExample prints the example command of a scope.
func (c *CLI) showExample(args []string) int {
	if len(args) == 0 {
		c.message("Usage: tembo example <scope>")
		return 1
	}
	example, err := c.svc.Example(args[0])
	if err != nil {
		c.message(errors.GetAppError(err).Error())
		return 1
	}
	if example == "" {
		c.message("No example in config.yml")
		return 0
	}
	c.message(fmt.Sprintf("Example for %s: %s", args[0], example))
	return 0
}

func (c *CLI) printUsage() {
	fmt.Fprintln(c.out, `Tembo - an organiser for work notes.

Usage:
  tembo                                  interactive mode
  tembo new <scope> [inputs...]          create a new page
      --dry-run    show the page path without saving it
      --example    show the scope's example command
  tembo list                             list scopes in the config.yml
  tembo example <scope>                  show a scope's example command

Flags:
  -v, --version    print the version
  --verbose        enable debug logging`)
}

func (c *CLI) message(msg string) {
	fmt.Fprintf(c.out, "[TEMBO] %s 🐘\n", msg)
}
