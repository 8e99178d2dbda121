package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the root model: it owns the key bindings and hosts the
// department screen.
type AppModel struct {
	Screen     *DepartmentScreen
	KeyHandler *KeyHandler
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Screen.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// Open modals take every key, so typing in the form never triggers bindings.
		if !a.Screen.HasOverlay() && a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
	}

	_, cmd := a.Screen.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	admin := a.Screen.IsAdmin()
	base := a.Screen.View()
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		return base + RenderKeybindHelp(a.KeyHandler, admin)
	}
	if !a.Screen.HasOverlay() && a.KeyHandler != nil {
		base += "\n" + RenderFooter(a.KeyHandler.Registry, admin)
	}
	return base
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// NewKeybindings returns the dashboard's key registry.
func NewKeybindings() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	reg.BindWithDesc("n", msgCmd(ShowRegisterMsg{}), "register")
	reg.BindWithDesc("e", msgCmd(ShowEditMsg{}), "edit")
	reg.Bind("enter", msgCmd(ShowEditMsg{}))
	reg.BindAdmin("d", msgCmd(ShowDeleteMsg{}), "delete")
	reg.BindWithDesc("r", msgCmd(RefreshMsg{}), "refresh")
	reg.BindWithDesc("h", msgCmd(PrevPageMsg{}), "prev page")
	reg.BindWithDesc("l", msgCmd(NextPageMsg{}), "next page")
	reg.Bind("left", msgCmd(PrevPageMsg{}))
	reg.Bind("right", msgCmd(NextPageMsg{}))
	for p := 1; p <= 9; p++ {
		reg.Bind(strconv.Itoa(p), msgCmd(GotoPageMsg{Page: p}))
	}

	reg.BindWithDesc("SPC d n", msgCmd(ShowRegisterMsg{}), "Register department")
	reg.BindWithDesc("SPC d e", msgCmd(ShowEditMsg{}), "Edit department")
	reg.BindAdmin("SPC d d", msgCmd(ShowDeleteMsg{}), "Delete department")
	reg.BindWithDesc("SPC d r", msgCmd(RefreshMsg{}), "Refresh list")
	reg.BindWithDesc("SPC p n", msgCmd(NextPageMsg{}), "Next page")
	reg.BindWithDesc("SPC p p", msgCmd(PrevPageMsg{}), "Previous page")
	return reg
}

// NewAppModel creates the root model over st.
func NewAppModel(st DepartmentStore) *AppModel {
	return &AppModel{
		Screen:     NewDepartmentScreen(st),
		KeyHandler: NewKeyHandler(NewKeybindings()),
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
