package ui

// ModalState is which form, if any, the department screen has open.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalCreate
	ModalEdit
)

func (m ModalState) String() string {
	switch m {
	case ModalClosed:
		return "Closed"
	case ModalCreate:
		return "Create"
	case ModalEdit:
		return "Edit"
	default:
		return "Unknown"
	}
}

// FormState is the screen-local department form.
type FormState struct {
	ID       string // empty when creating
	Name     string
	EditMode bool
}
