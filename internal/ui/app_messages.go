package ui

// ShowRegisterMsg opens the form for a new department (n, SPC d n).
type ShowRegisterMsg struct{}

// ShowEditMsg opens the form pre-filled from the selected row (e, enter).
type ShowEditMsg struct{}

// ShowDeleteMsg asks for confirmation before deleting the selected row (d).
// Ignored unless the session user is an admin.
type ShowDeleteMsg struct{}

// SubmitFormMsg is sent by the form modal when a non-empty name is submitted.
type SubmitFormMsg struct{}

// ConfirmDeleteMsg is sent when the user confirms deleting a department.
type ConfirmDeleteMsg struct {
	ID string
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// RefreshMsg re-fetches the department list (r).
type RefreshMsg struct{}

// NextPageMsg and PrevPageMsg move the pager (l/h, right/left).
type NextPageMsg struct{}

type PrevPageMsg struct{}

// GotoPageMsg selects a page by number (1-9).
type GotoPageMsg struct {
	Page int
}
