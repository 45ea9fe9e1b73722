// Package tokens finds and substitutes the placeholder tokens tembo supports
// in paths and page content: positional input tokens ({input0}, {input1}, ...),
// the scope name token ({name}), and strftime date tokens ({d:%d-%m-%Y}).
package tokens

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/tembo-pages/tembo/internal/errors"
)

var (
	inputTokenRe = regexp.MustCompile(`\{input\d*\}`)
	dateTokenRe  = regexp.MustCompile(`\{d:[^}]*\}`)
)

const nameToken = "{name}"

// Collect returns the distinct input tokens found across the given strings,
// sorted as plain strings.
//
// The sort is lexicographic over the literal token text, not numeric over the
// embedded index: {input10} orders before {input2}. Substitution pairs the
// user input positionally against this order, so callers supply values in
// sorted-token order, not index order.
func Collect(strs ...string) []string {
	seen := make(map[string]bool)
	var toks []string
	for _, s := range strs {
		for _, tok := range inputTokenRe.FindAllString(s, -1) {
			if !seen[tok] {
				seen[tok] = true
				toks = append(toks, tok)
			}
		}
	}
	sort.Strings(toks)
	return toks
}

// Validate checks the distinct token count against the supplied user input.
// Zero tokens with no input is valid. Tokens with absent input, or counts
// that differ, fail with a token-count mismatch carrying both counts.
func Validate(toks []string, userInput []string) error {
	if len(toks) > 0 && userInput == nil {
		return errors.TokenMismatch(len(toks), 0)
	}
	if userInput == nil {
		return nil
	}
	if len(toks) != len(userInput) {
		return errors.TokenMismatch(len(toks), len(userInput))
	}
	return nil
}

// Resolver substitutes tokens in a string. Now is the clock used for date
// tokens and defaults to time.Now; tests replace it to pin the instant.
type Resolver struct {
	Name      string
	UserInput []string
	Now       func() time.Time
}

// NewResolver creates a resolver for the given scope name and user input.
func NewResolver(name string, userInput []string) *Resolver {
	return &Resolver{Name: name, UserInput: userInput, Now: time.Now}
}

// Substitute runs the input, name, and date token passes over s, in that
// order. toks is the sorted distinct token list from Collect; each user input
// value is paired with the token at the same position. All three passes run
// unconditionally and are no-ops when the string has no tokens of that kind.
// Token-like text with no matching kind is left untouched.
func (r *Resolver) Substitute(s string, toks []string) string {
	s = r.substituteInput(s, toks)
	s = r.substituteName(s)
	s = r.substituteDate(s)
	return s
}

// substituteInput replaces each collected token with its positional user
// input value, spaces replaced with underscores. Validation guarantees equal
// lengths before this runs; the shorter side wins otherwise.
func (r *Resolver) substituteInput(s string, toks []string) string {
	n := len(toks)
	if len(r.UserInput) < n {
		n = len(r.UserInput)
	}
	for i := 0; i < n; i++ {
		value := strings.ReplaceAll(r.UserInput[i], " ", "_")
		s = strings.ReplaceAll(s, toks[i], value)
	}
	return s
}

// substituteName replaces every {name} occurrence with the scope name,
// unmodified.
func (r *Resolver) substituteName(s string) string {
	return strings.ReplaceAll(s, nameToken, r.Name)
}

// substituteDate replaces every {d:<format>} occurrence with the current
// date/time rendered through the strftime-style format.
func (r *Resolver) substituteDate(s string) string {
	if !strings.Contains(s, "{d:") {
		return s
	}
	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}
	return dateTokenRe.ReplaceAllStringFunc(s, func(tok string) string {
		format := tok[len("{d:") : len(tok)-1]
		return strftime.Format(format, now)
	})
}
