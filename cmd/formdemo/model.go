package main

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrymomot/fieldguard/pkg/logger"
	"github.com/dmitrymomot/fieldguard/pkg/validator"
)

type input struct {
	spec  fieldSpec
	model textinput.Model
}

// formModel is the Bubble Tea model for the demo screen. Submitting runs the
// form's fail-fast validation; the first failing field is highlighted, gets
// focus and shows its rule's message.
type formModel struct {
	form   *validator.Form
	log    *slog.Logger
	inputs []input
	focus  int

	invalid string
	errMsg  string
	success bool
}

func newFormModel(form *validator.Form, specs []fieldSpec, log *slog.Logger) *formModel {
	if log == nil {
		log = logger.Discard()
	}

	inputs := make([]input, len(specs))
	for i, spec := range specs {
		ti := textinput.New()
		ti.Placeholder = spec.placeholder
		ti.Width = 40
		if spec.secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '*'
		}
		inputs[i] = input{spec: spec, model: ti}
	}
	if len(inputs) > 0 {
		inputs[0].model.Focus()
	}

	return &formModel{
		form:   form,
		log:    log,
		inputs: inputs,
	}
}

// Init implements [tea.Model].
func (m *formModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys:
//   - esc, ctrl+c: quit.
//   - tab, down: next input.
//   - shift+tab, up: previous input.
//   - enter: next input, or submit on the last one.
//   - ctrl+s: submit from anywhere.
//
// All other key events go to the focused input and clear the result line.
func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "down":
			m.focusOn(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.focusOn(m.focus - 1)
			return m, nil
		case "enter":
			if m.focus < len(m.inputs)-1 {
				m.focusOn(m.focus + 1)
				return m, nil
			}
			m.submit()
			return m, nil
		case "ctrl+s":
			m.submit()
			return m, nil
		}
		m.success = false
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus].model, cmd = m.inputs[m.focus].model.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *formModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("VALIDATIONS DEMO"))
	b.WriteString("\n\n")

	for _, in := range m.inputs {
		label := labelStyle.Render(in.spec.label)
		if in.spec.name == m.invalid {
			label = invalidStyle.Render(in.spec.label)
		}
		b.WriteString(label)
		b.WriteString(in.model.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	case m.success:
		b.WriteString(successStyle.Render("Success"))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab/↓ next │ shift+tab/↑ prev │ enter next/submit │ ctrl+s submit │ esc quit"))

	return appStyle.Render(b.String())
}

func (m *formModel) values() validator.Values {
	values := make(validator.Values, len(m.inputs))
	for _, in := range m.inputs {
		values[in.spec.name] = in.model.Value()
	}
	return values
}

func (m *formModel) submit() {
	m.invalid, m.errMsg, m.success = "", "", false

	err := m.form.Validate(m.values())
	if err == nil {
		m.success = true
		m.log.Info("form submitted")
		return
	}

	ve := validator.ExtractValidationError(err)
	if ve == nil {
		m.errMsg = err.Error()
		m.log.Error("form validation error", logger.Error(err))
		return
	}

	m.invalid, m.errMsg = ve.Field, ve.Message
	m.log.Debug("form rejected", logger.Field(ve.Field), slog.String("message", ve.Message))
	for i, in := range m.inputs {
		if in.spec.name == ve.Field {
			m.focusOn(i)
			break
		}
	}
}

func (m *formModel) focusOn(i int) {
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].model.Blur()
	m.focus = (i%len(m.inputs) + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].model.Focus()
}
