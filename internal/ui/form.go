package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputForm collects one value per required input token of a scope.
type InputForm struct {
	labels    []string
	inputs    []textinput.Model
	focused   int
	submitted bool
}

// NewInputForm creates a form with one text field per token, in substitution
// order. The first field starts focused.
func NewInputForm(tokens []string) *InputForm {
	inputs := make([]textinput.Model, len(tokens))
	for i := range tokens {
		ti := textinput.New()
		ti.Placeholder = "value"
		ti.CharLimit = 200
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
	}
	return &InputForm{labels: tokens, inputs: inputs}
}

// Update handles key events. Enter on the last field submits; tab and
// shift+tab move focus.
func (f *InputForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if f.focused == len(f.inputs)-1 {
				f.submitted = true
				return nil
			}
			f.focusField(f.focused + 1)
			return nil
		case "tab", "down":
			f.focusField((f.focused + 1) % len(f.inputs))
			return nil
		case "shift+tab", "up":
			f.focusField((f.focused - 1 + len(f.inputs)) % len(f.inputs))
			return nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return cmd
}

func (f *InputForm) focusField(i int) {
	f.inputs[f.focused].Blur()
	f.focused = i
	f.inputs[f.focused].Focus()
}

// Submitted reports whether the form has been completed.
func (f *InputForm) Submitted() bool {
	return f.submitted
}

// Values returns the entered values in field order.
func (f *InputForm) Values() []string {
	values := make([]string, len(f.inputs))
	for i, input := range f.inputs {
		values[i] = input.Value()
	}
	return values
}

// View renders the form fields with their token labels.
func (f *InputForm) View() string {
	var b strings.Builder
	for i, input := range f.inputs {
		b.WriteString(labelStyle.Render(f.labels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}
	return b.String()
}
