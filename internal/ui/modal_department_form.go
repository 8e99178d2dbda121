package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"deptdash/internal/store"
)

// DepartmentFormModal is the single-field department form. The name is
// required: Enter with an empty field shows a hint instead of submitting.
type DepartmentFormModal struct {
	input    textinput.Model
	editMode bool
	required bool // set after an empty submit

	// Status of the pending create or update, refreshed by the screen before
	// each render.
	status  store.ResultState
	spinner string
}

// Ensure DepartmentFormModal implements View.
var _ View = (*DepartmentFormModal)(nil)

// NewDepartmentFormModal creates the form pre-filled with name.
func NewDepartmentFormModal(name string, editMode bool) *DepartmentFormModal {
	ti := textinput.New()
	ti.Placeholder = "Enter department name"
	ti.CharLimit = 100
	ti.Width = 40
	ti.SetValue(name)
	ti.Focus()
	return &DepartmentFormModal{input: ti, editMode: editMode}
}

// Value returns the current name.
func (m *DepartmentFormModal) Value() string {
	return m.input.Value()
}

// EditMode reports whether this form edits an existing department.
func (m *DepartmentFormModal) EditMode() bool {
	return m.editMode
}

// Title returns the modal heading.
func (m *DepartmentFormModal) Title() string {
	if m.editMode {
		return "Edit Department"
	}
	return "Add Department"
}

// SetStatus records the create/update result to show inside the form.
func (m *DepartmentFormModal) SetStatus(status store.ResultState, sp spinner.Model) {
	m.status = status
	m.spinner = sp.View()
}

// Init implements View.
func (m *DepartmentFormModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *DepartmentFormModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			if m.status.Loading {
				return m, nil
			}
			if m.input.Value() == "" {
				m.required = true
				return m, nil
			}
			m.required = false
			return m, func() tea.Msg { return SubmitFormMsg{} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *DepartmentFormModal) View() string {
	content := Styles.Title.Render(m.Title()) + "\n\n"
	switch {
	case m.status.Loading:
		content += m.spinner + " Saving…\n\n"
	case m.status.Error != "":
		content += Styles.Danger.Render(m.status.Error) + "\n\n"
	}
	content += Styles.Label.Render("Department Name") + "\n"
	content += m.input.View() + "\n"
	if m.required {
		content += Styles.Details.Render("Please fill out this field.") + "\n"
	}
	content += "\n" + Styles.Hint.Render("Enter: submit  Esc: close")
	return Styles.Box.Render(content)
}
