package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, highlights
	ColorHighlight = "205" // Magenta - selected row, borders
	ColorDanger    = "196" // Red - error banners, delete
	ColorSuccess   = "42"  // Green - success banners
	ColorMuted     = "241" // Gray - hints, disabled pager items
	ColorText      = "252" // Light gray - normal text
	ColorWarning   = "208" // Orange - confirmation details
)

// Styles contains shared style definitions used across the screen and modals.
var Styles = struct {
	Title        lipgloss.Style // Bold accent color - screen and modal titles
	TitleWarning lipgloss.Style // Bold danger color - destructive prompts

	Box       lipgloss.Style // Form modal box
	BoxDanger lipgloss.Style // Confirmation modal box

	Header   lipgloss.Style // Table column headers
	Selected lipgloss.Style // Row under the cursor
	Normal   lipgloss.Style // Other rows
	Muted    lipgloss.Style // Dimmed text
	Hint     lipgloss.Style // Help/hint text
	Empty    lipgloss.Style // "No data found!"
	Label    lipgloss.Style // Modal label/content
	Details  lipgloss.Style // Confirmation details
	Action   lipgloss.Style // Row action hint ("e Edit")
	Delete   lipgloss.Style // Row delete hint (admins only)

	Success lipgloss.Style // Success banner
	Danger  lipgloss.Style // Error banner

	PageActive   lipgloss.Style // Selected page number
	PageItem     lipgloss.Style // Other page numbers, previous/next
	PageDisabled lipgloss.Style // Previous/next at the ends
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorMuted)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Italic(true),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Action: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Delete: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Success: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorSuccess)).
		PaddingLeft(1),
	Danger: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorDanger)).
		PaddingLeft(1),
	PageActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Underline(true),
	PageItem: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	PageDisabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
