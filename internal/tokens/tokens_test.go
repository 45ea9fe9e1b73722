package tokens

import (
	"reflect"
	"testing"
	"time"

	"github.com/tembo-pages/tembo/internal/errors"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 5, 14, 30, 0, 0, time.Local)
}

func TestCollectSortsAndDeduplicates(t *testing.T) {
	toks := Collect("meetings/{input3}/{input0}", "agenda for {input0}")

	want := []string{"{input0}", "{input3}"}
	if !reflect.DeepEqual(toks, want) {
		t.Errorf("Expected tokens %v, got %v", want, toks)
	}
}

// The token order is a string sort of the literal token text, not a numeric
// sort of the embedded index. {input10} must order before {input2}; changing
// this to a numeric sort silently reorders substitution for 10+ tokens.
func TestCollectOrdersTokensAsStrings(t *testing.T) {
	toks := Collect("{input2}/{input10}", "")

	want := []string{"{input10}", "{input2}"}
	if !reflect.DeepEqual(toks, want) {
		t.Errorf("Expected string-sorted tokens %v, got %v", want, toks)
	}
}

func TestCollectSpansPathAndTemplate(t *testing.T) {
	toks := Collect("notes/{input0}", "body with {input1} and {input2}")

	if len(toks) != 3 {
		t.Errorf("Expected 3 tokens across path and template, got %d", len(toks))
	}
}

func TestCollectIgnoresOtherTokenKinds(t *testing.T) {
	toks := Collect("notes/{name}/{d:%Y}/{inpu}", "")

	if len(toks) != 0 {
		t.Errorf("Expected no input tokens, got %v", toks)
	}
}

func TestValidate(t *testing.T) {
	three := []string{"{input0}", "{input1}", "{input2}"}

	tests := []struct {
		name     string
		toks     []string
		input    []string
		expected int
		given    int
	}{
		{"tokens with no input", three, nil, 3, 0},
		{"too few inputs", three, []string{"a", "b"}, 3, 2},
		{"too many inputs", three, []string{"a", "b", "c", "d"}, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.toks, tt.input)
			if err == nil {
				t.Fatal("Expected a token mismatch error, got nil")
			}
			appErr := errors.GetAppError(err)
			if appErr.Code != errors.CodeTokenMismatch {
				t.Errorf("Expected code %s, got %s", errors.CodeTokenMismatch, appErr.Code)
			}
			if appErr.Expected != tt.expected || appErr.Given != tt.given {
				t.Errorf("Expected counts (%d, %d), got (%d, %d)",
					tt.expected, tt.given, appErr.Expected, appErr.Given)
			}
		})
	}
}

func TestValidateZeroTokensNoInput(t *testing.T) {
	if err := Validate(nil, nil); err != nil {
		t.Errorf("Expected zero tokens with no input to validate, got %v", err)
	}
}

func TestValidateMatchingCounts(t *testing.T) {
	if err := Validate([]string{"{input0}"}, []string{"kickoff"}); err != nil {
		t.Errorf("Expected matching counts to validate, got %v", err)
	}
}

func TestSubstituteInputTokens(t *testing.T) {
	r := NewResolver("meeting", []string{"monthly meeting"})
	toks := Collect("/meetings/{input0}/")

	got := r.Substitute("/meetings/{input0}/", toks)
	if got != "/meetings/monthly_meeting/" {
		t.Errorf("Expected spaces in input values to become underscores, got %q", got)
	}
}

func TestSubstituteInputTokensInSortedOrder(t *testing.T) {
	// Inputs pair positionally with the string-sorted token list, so the
	// first value lands in {input10}, not {input2}.
	r := NewResolver("x", []string{"first", "second"})
	toks := Collect("{input2}-{input10}")

	got := r.Substitute("{input2}-{input10}", toks)
	if got != "second-first" {
		t.Errorf("Expected sorted-order pairing 'second-first', got %q", got)
	}
}

func TestSubstituteNameTokens(t *testing.T) {
	r := NewResolver("project-x", nil)

	got := r.Substitute("notes/{name}/log.md", nil)
	if got != "notes/project-x/log.md" {
		t.Errorf("Expected name substitution to alter nothing else, got %q", got)
	}
}

func TestSubstituteNameTokenRepeats(t *testing.T) {
	r := NewResolver("standup", nil)

	got := r.Substitute("{name}/{name}/{name}", nil)
	if got != "standup/standup/standup" {
		t.Errorf("Expected every {name} occurrence replaced, got %q", got)
	}
}

func TestSubstituteNameKeepsSpaces(t *testing.T) {
	// Only input values get the space-to-underscore treatment.
	r := NewResolver("my scope", nil)

	got := r.Substitute("{name}", nil)
	if got != "my scope" {
		t.Errorf("Expected name to substitute unmodified, got %q", got)
	}
}

func TestSubstituteDateTokens(t *testing.T) {
	r := NewResolver("x", nil)
	r.Now = fixedClock

	got := r.Substitute("journal/{d:%d-%m-%Y}.md", nil)
	if got != "journal/05-03-2024.md" {
		t.Errorf("Expected strftime-formatted date, got %q", got)
	}
}

func TestSubstituteMultipleDateTokens(t *testing.T) {
	r := NewResolver("x", nil)
	r.Now = fixedClock

	got := r.Substitute("{d:%Y}/{d:%B}", nil)
	if got != "2024/March" {
		t.Errorf("Expected both date tokens replaced, got %q", got)
	}
}

func TestSubstituteLeavesMalformedTokens(t *testing.T) {
	r := NewResolver("x", []string{"v"})

	got := r.Substitute("{inpu}/{date:%Y}/{input0}", []string{"{input0}"})
	if got != "{inpu}/{date:%Y}/v" {
		t.Errorf("Expected unknown token syntax left untouched, got %q", got)
	}
}

func TestSubstituteAllPassesRun(t *testing.T) {
	r := NewResolver("standup", []string{"kickoff"})
	r.Now = fixedClock
	toks := Collect("meetings/{d:%B_%y}/{name}-{input0}")

	got := r.Substitute("meetings/{d:%B_%y}/{name}-{input0}", toks)
	if got != "meetings/March_24/standup-kickoff" {
		t.Errorf("Expected all three token kinds substituted, got %q", got)
	}
}
