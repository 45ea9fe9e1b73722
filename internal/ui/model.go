// Package ui implements the interactive mode: pick a scope, fill in its
// input tokens, preview the page, and create it.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/sahilm/fuzzy"

	"github.com/tembo-pages/tembo/internal/models"
	"github.com/tembo-pages/tembo/internal/service"
)

type state int

const (
	statePick state = iota
	stateForm
	statePreview
	stateResult
)

// Model is the bubbletea model for the interactive mode.
type Model struct {
	svc *service.Service

	state   state
	filter  textinput.Model
	scopes  []string
	visible []string
	cursor  int

	scopeName string
	form      *InputForm
	page      models.Page
	preview   string

	result string
	err    error

	width int
}

// NewModel creates the interactive model over the given service.
func NewModel(svc *service.Service) Model {
	filter := textinput.New()
	filter.Placeholder = "type to filter scopes"
	filter.Prompt = "> "
	filter.Focus()

	scopes := svc.ListScopes()
	return Model{
		svc:     svc,
		filter:  filter,
		scopes:  scopes,
		visible: scopes,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.state {
	case statePick:
		return m.updatePick(msg)
	case stateForm:
		return m.updateForm(msg)
	case statePreview:
		return m.updatePreview(msg)
	default:
		return m.updateResult(msg)
	}
}

func (m Model) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if m.cursor < len(m.visible) {
				return m.selectScope(m.visible[m.cursor])
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter narrows the visible scopes with a fuzzy match on the filter
// text.
func (m *Model) applyFilter() {
	query := m.filter.Value()
	if query == "" {
		m.visible = m.scopes
	} else {
		matches := fuzzy.Find(query, m.scopes)
		visible := make([]string, 0, len(matches))
		for _, match := range matches {
			visible = append(visible, match.Str)
		}
		m.visible = visible
	}
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}

// selectScope moves to the input form, or straight to the preview when the
// scope needs no input.
func (m Model) selectScope(name string) (tea.Model, tea.Cmd) {
	m.scopeName = name

	tokens, err := m.svc.RequiredInputs(name)
	if err != nil {
		m.err = err
		m.state = stateResult
		return m, nil
	}
	if len(tokens) == 0 {
		return m.buildPreview(nil)
	}
	m.form = NewInputForm(tokens)
	m.state = stateForm
	return m, textinput.Blink
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.state = statePick
		m.form = nil
		return m, nil
	}

	cmd := m.form.Update(msg)
	if m.form.Submitted() {
		return m.buildPreview(m.form.Values())
	}
	return m, cmd
}

// buildPreview creates the in-memory page and renders the preview.
func (m Model) buildPreview(inputs []string) (tea.Model, tea.Cmd) {
	page, err := m.svc.CreatePage(m.scopeName, inputs)
	if err != nil {
		m.err = err
		m.state = stateResult
		return m, nil
	}
	m.page = page

	if page.Content != "" {
		m.preview = page.Content
		wrap := m.width
		if wrap <= 0 || wrap > 100 {
			wrap = 80
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
		if err == nil {
			if rendered, err := renderer.Render(page.Content); err == nil {
				m.preview = rendered
			}
		}
	}
	m.state = statePreview
	return m, nil
}

func (m Model) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "y":
			success, err := m.svc.SavePage(m.page)
			if err != nil {
				m.err = err
			} else {
				m.result = fmt.Sprintf("Saved %s to disk", success.Message)
			}
			m.state = stateResult
			return m, nil
		case "esc", "n":
			m.state = statePick
			m.form = nil
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.state = statePick
			m.form = nil
			m.err = nil
			m.result = ""
			return m, nil
		case "enter", "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch m.state {
	case statePick:
		return m.viewPick()
	case stateForm:
		return m.viewForm()
	case statePreview:
		return m.viewPreview()
	default:
		return m.viewResult()
	}
}

func (m Model) viewPick() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tembo 🐘"))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(itemStyle.Render("no scopes match"))
		b.WriteString("\n")
	}
	for i, name := range m.visible {
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("▸ " + name))
		} else {
			b.WriteString(itemStyle.Render(name))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ select · enter choose · esc quit"))
	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New " + m.scopeName + " page"))
	b.WriteString("\n")
	b.WriteString(m.form.View())
	b.WriteString(helpStyle.Render("enter next/submit · tab move · esc back"))
	return b.String()
}

func (m Model) viewPreview() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Preview"))
	b.WriteString("\n")
	b.WriteString(pathStyle.Render(m.page.Path))
	b.WriteString("\n")
	if m.preview != "" {
		b.WriteString(m.preview)
	} else {
		b.WriteString(itemStyle.Render("(empty page)"))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter create · esc back"))
	return b.String()
}

func (m Model) viewResult() string {
	var b strings.Builder
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
	} else {
		b.WriteString(successStyle.Render(m.result))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter quit · esc back"))
	return b.String()
}
