package models

import "fmt"

// Page is the in-memory result of page creation: the fully substituted
// destination path and content. Immutable once built; persisting it is a
// separate step.
type Page struct {
	Path    string
	Content string
}

func (p Page) String() string {
	return fmt.Sprintf("Page(%q)", p.Path)
}

// Success is returned from operations that complete with a user-facing
// outcome, such as saving a page to disk. Message carries the final path.
type Success struct {
	Message string
}
