package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"deptdash/internal/session"
	"deptdash/internal/store"
)

func newTestApp(admin bool, rows int) (*AppModel, *appModelAdapter, *recordingStore) {
	st := &recordingStore{}
	st.Apply(store.LoggedIn{User: &session.UserInfo{ID: "u1", Name: "Ann", IsAdmin: admin}})
	a := NewAppModel(st)
	adapter := a.AsTeaModel().(*appModelAdapter)
	adapter.Init()
	adapter.Update(store.ListSucceeded{Departments: makeDepartments(rows)})
	return a, adapter, st
}

// send delivers a key and then the message its command produces.
func send(t *testing.T, m tea.Model, key string) tea.Msg {
	t.Helper()
	_, cmd := m.Update(keyMsg(key))
	if cmd == nil {
		t.Fatalf("key %q produced no command", key)
	}
	msg := cmd()
	m.Update(msg)
	return msg
}

func TestAppModel_RegisterKeyOpensForm(t *testing.T) {
	a, adapter, _ := newTestApp(false, 2)

	msg := send(t, adapter, "n")
	if _, ok := msg.(ShowRegisterMsg); !ok {
		t.Fatalf("n produced %T", msg)
	}
	if a.Screen.Modal != ModalCreate || !a.Screen.HasOverlay() {
		t.Errorf("expected create form open, modal=%v", a.Screen.Modal)
	}
}

func TestAppModel_KeysTypeIntoOpenForm(t *testing.T) {
	a, adapter, _ := newTestApp(false, 2)
	send(t, adapter, "n")

	// q is a binding, but the form owns the keyboard while open.
	adapter.Update(keyMsg("q"))
	if a.Screen.Form.Name != "q" {
		t.Errorf("form name = %q, want q", a.Screen.Form.Name)
	}
}

func TestAppModel_CtrlCQuitsEvenWithModal(t *testing.T) {
	_, adapter, _ := newTestApp(false, 2)
	send(t, adapter, "n")

	_, cmd := adapter.Update(keyMsg("ctrl+c"))
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestAppModel_DeleteKeyIgnoredForNonAdmin(t *testing.T) {
	a, adapter, st := newTestApp(false, 2)

	send(t, adapter, "d")
	if a.Screen.HasOverlay() {
		t.Error("non-admin should not get the delete confirmation")
	}
	if len(st.deletes) != 0 {
		t.Errorf("unexpected deletes: %v", st.deletes)
	}
}

func TestAppModel_AdminDeleteFlow(t *testing.T) {
	a, adapter, st := newTestApp(true, 2)

	send(t, adapter, "d")
	if !a.Screen.HasOverlay() {
		t.Fatal("expected confirmation modal")
	}
	send(t, adapter, "y")
	if len(st.deletes) != 1 || st.deletes[0] != "id-1" {
		t.Errorf("deletes = %v, want [id-1]", st.deletes)
	}
}

func TestAppModel_LeaderHelpAndPaging(t *testing.T) {
	a, adapter, _ := newTestApp(false, 7)

	adapter.Update(keyMsg(" "))
	if !strings.Contains(adapter.View(), "Page") {
		t.Error("leader help should list the Page submenu")
	}
	adapter.Update(keyMsg("p"))
	send(t, adapter, "n")
	if a.Screen.Pager.Page != 2 {
		t.Errorf("page = %d after SPC p n, want 2", a.Screen.Pager.Page)
	}

	send(t, adapter, "1")
	if a.Screen.Pager.Page != 1 {
		t.Errorf("page = %d after 1, want 1", a.Screen.Pager.Page)
	}
}

func TestAppModel_FooterHidesDeleteForNonAdmin(t *testing.T) {
	_, adapter, _ := newTestApp(false, 1)
	if strings.Contains(adapter.View(), "delete") {
		t.Error("non-admin footer shows delete")
	}

	_, adminAdapter, _ := newTestApp(true, 1)
	if !strings.Contains(adminAdapter.View(), "delete") {
		t.Error("admin footer should show delete")
	}
}
