package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	return h
}

// RenderKeybindHelp produces the transient help view shown after SPC.
// When the handler has a buffer (e.g. "SPC d"), shows next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler, admin bool) string {
	if keyHandler == nil {
		return ""
	}
	km := NewKeyMap(keyHandler.Registry, keyHandler, admin)
	bindings := km.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}
	helpContent := newHelpModel().ShortHelpView(bindings)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)

	prefix := "SPC"
	if len(keyHandler.Buffer) > 0 {
		prefix = strings.Join(keyHandler.Buffer, " ")
	}
	return boxStyle.Render(Styles.Hint.Render(prefix) + " " + helpContent)
}

// footerOrder fixes the footer's key order; unknown keys sort after these.
var footerOrder = []string{"n", "e", "d", "r", "h", "l", "q"}

// RenderFooter renders the always-visible single-key help line.
func RenderFooter(reg *KeybindRegistry, admin bool) string {
	if reg == nil {
		return ""
	}
	hints := reg.Hints(admin)
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	rank := func(k string) int {
		for i, o := range footerOrder {
			if o == k {
				return i
			}
		}
		return len(footerOrder)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := rank(keys[i]), rank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	bindings = append(bindings, key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "commands")))
	return newHelpModel().ShortHelpView(bindings)
}
