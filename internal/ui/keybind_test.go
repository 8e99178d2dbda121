package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q") == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Press space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "))
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	// Press x -> execute SPC x
	consumed, cmd = h.Handle(keyMsg("x"))
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd != nil {
		cmd()
		if !executed {
			t.Error("expected command to execute")
		}
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"))
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"))
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestKeybindRegistry_HintsHideAdminOnly(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("e", tea.Quit, "edit")
	reg.BindAdmin("d", tea.Quit, "delete")
	reg.Bind("enter", tea.Quit)
	reg.BindWithDesc("SPC d e", tea.Quit, "Edit department")

	user := reg.Hints(false)
	if _, ok := user["d"]; ok {
		t.Error("delete hint shown to non-admin")
	}
	if user["e"] != "edit" {
		t.Errorf("e hint = %q", user["e"])
	}
	if _, ok := user["enter"]; ok {
		t.Error("undescribed binding should not be hinted")
	}
	if _, ok := user["SPC d e"]; ok {
		t.Error("leader bindings belong to the leader help")
	}

	admin := reg.Hints(true)
	if admin["d"] != "delete" {
		t.Errorf("admin d hint = %q", admin["d"])
	}
}

func TestKeybindRegistry_LeaderHints(t *testing.T) {
	reg := NewKeybindings()

	top := reg.LeaderHints("", false)
	if top["d"] != "Department" || top["p"] != "Page" || top["q"] != "Quit" {
		t.Errorf("first level hints = %v", top)
	}

	sub := reg.LeaderHints("SPC d", false)
	if _, ok := sub["d"]; ok {
		t.Error("SPC d d shown to non-admin")
	}
	if sub["n"] != "Register department" {
		t.Errorf("SPC d n hint = %q", sub["n"])
	}
	if reg.LeaderHints("SPC d", true)["d"] != "Delete department" {
		t.Error("SPC d d hidden from admin")
	}
}

func TestKeyHandler_NestedLeaderSequence(t *testing.T) {
	reg := NewKeybindings()
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("d"))
	if !consumed || cmd != nil || !h.LeaderWaiting {
		t.Fatalf("SPC d should wait for more keys: consumed=%v waiting=%v", consumed, h.LeaderWaiting)
	}
	consumed, cmd = h.Handle(keyMsg("n"))
	if !consumed || cmd == nil {
		t.Fatalf("SPC d n: consumed=%v cmd=%v", consumed, cmd)
	}
	if _, ok := cmd().(ShowRegisterMsg); !ok {
		t.Error("SPC d n should open the register form")
	}
}

func TestRenderFooter_Order(t *testing.T) {
	reg := NewKeybindings()
	out := RenderFooter(reg, true)
	for _, want := range []string{"register", "edit", "delete", "refresh", "quit", "SPC"} {
		if !strings.Contains(out, want) {
			t.Errorf("footer missing %q: %s", want, out)
		}
	}
	if strings.Index(out, "register") > strings.Index(out, "quit") {
		t.Error("register should precede quit")
	}
	if strings.Contains(RenderFooter(reg, false), "delete") {
		t.Error("non-admin footer shows delete")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "q":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	case "x":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	case "j":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
