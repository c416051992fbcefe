package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField struct {
	label string
	input textinput.Model
}

// form is an ordered set of labelled text inputs with a single focused field.
type form struct {
	fields []formField
	focus  int
}

type fieldSpec struct {
	label       string
	placeholder string
	limit       int
	secret      bool
}

func newForm(specs ...fieldSpec) *form {
	f := &form{fields: make([]formField, 0, len(specs))}
	for _, spec := range specs {
		in := textinput.New()
		in.Placeholder = spec.placeholder
		in.CharLimit = spec.limit
		in.Width = 40
		if spec.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		f.fields = append(f.fields, formField{label: spec.label, input: in})
	}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}

	return f
}

func newLoginForm() *form {
	return newForm(
		fieldSpec{label: "Username", placeholder: "username", limit: 64},
		fieldSpec{label: "Password", placeholder: "password", limit: 256, secret: true},
	)
}

func newRegisterForm() *form {
	return newForm(
		fieldSpec{label: "Username", placeholder: "username", limit: 64},
		fieldSpec{label: "Password", placeholder: "password", limit: 256, secret: true},
		fieldSpec{label: "Email", placeholder: "name@example.com", limit: 254},
		fieldSpec{label: "First name", placeholder: "first name", limit: 100},
		fieldSpec{label: "Last name", placeholder: "last name", limit: 100},
		fieldSpec{label: "Phone", placeholder: "+1 555 0100", limit: 32},
	)
}

func newCreateForm() *form {
	return newForm(
		fieldSpec{label: "Theme", placeholder: "what the piece is about", limit: 200},
		fieldSpec{label: "Era", placeholder: "optional", limit: 100},
		fieldSpec{label: "Description", placeholder: "optional", limit: 2000},
	)
}

func (f *form) focusNext() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + 1) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *form) focusPrev() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *form) value(i int) string {
	return f.fields[i].input.Value()
}

func (f *form) setValue(i int, v string) {
	f.fields[i].input.SetValue(v)
}

func (f *form) clear(i int) {
	f.fields[i].input.Reset()
}

// reset empties every field and returns focus to the first one.
func (f *form) reset() {
	for i := range f.fields {
		f.fields[i].input.Reset()
		f.fields[i].input.Blur()
	}
	f.focus = 0
	f.fields[0].input.Focus()
}

func (f *form) view() string {
	width := 0
	for _, field := range f.fields {
		width = max(width, len(field.label))
	}

	var b strings.Builder
	for _, field := range f.fields {
		b.WriteString(field.label)
		b.WriteString(strings.Repeat(" ", width-len(field.label)))
		b.WriteString(" │ [")
		b.WriteString(field.input.View())
		b.WriteString("]\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
