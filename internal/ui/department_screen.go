package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"deptdash/internal/department"
	"deptdash/internal/paginate"
	"deptdash/internal/store"
)

// DepartmentStore is what the screen needs from the application store: read
// the state, fold in result actions, and dispatch the four remote operations.
type DepartmentStore interface {
	State() store.State
	Apply(store.Action)
	ListDepartment() tea.Cmd
	CreateDepartment(name string) tea.Cmd
	UpdateDepartment(id, name string) tea.Cmd
	DeleteDepartment(id string) tea.Cmd
}

// DepartmentScreen lists departments a page at a time and hosts the
// create/edit form and the delete confirmation.
type DepartmentScreen struct {
	store DepartmentStore

	Modal    ModalState
	Form     FormState
	Pager    paginate.Pager
	Cursor   int // row index within the current page
	Overlays OverlayStack

	spinner spinner.Model
	width   int
}

// Ensure DepartmentScreen implements View.
var _ View = (*DepartmentScreen)(nil)

// NewDepartmentScreen creates the screen on page 1 with the form closed.
func NewDepartmentScreen(st DepartmentStore) *DepartmentScreen {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &DepartmentScreen{
		store:   st,
		Pager:   paginate.NewPager(),
		spinner: s,
	}
}

// Init implements View. Mounting resets the form and fetches the list.
func (s *DepartmentScreen) Init() tea.Cmd {
	s.resetForm()
	return tea.Batch(s.store.ListDepartment(), s.spinner.Tick)
}

// HasOverlay reports whether a modal currently takes keyboard input.
func (s *DepartmentScreen) HasOverlay() bool {
	return s.Overlays.Len() > 0
}

// IsAdmin reports whether the session user may see the delete control.
func (s *DepartmentScreen) IsAdmin() bool {
	return s.store.State().IsAdmin()
}

// Departments returns the full list from the store.
func (s *DepartmentScreen) Departments() []department.Department {
	return s.store.State().DepartmentList.Departments
}

// PageItems returns the rows on the current page.
func (s *DepartmentScreen) PageItems() []department.Department {
	return paginate.Slice(s.Departments(), s.Pager.Page, s.Pager.Size)
}

// SelectedDepartment returns the row under the cursor, if any.
func (s *DepartmentScreen) SelectedDepartment() (department.Department, bool) {
	items := s.PageItems()
	if s.Cursor < 0 || s.Cursor >= len(items) {
		return department.Department{}, false
	}
	return items[s.Cursor], true
}

// Update implements View. After every message the open form is given the
// status of its pending create or update.
func (s *DepartmentScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	cmd := s.update(msg)
	s.syncFormStatus()
	return s, cmd
}

func (s *DepartmentScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case store.Action:
		return s.handleAction(msg)
	case spinner.TickMsg:
		if !s.anyLoading() {
			return nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd
	case tea.WindowSizeMsg:
		s.width = msg.Width
		return nil
	case ShowRegisterMsg:
		return s.openCreate()
	case ShowEditMsg:
		return s.openEdit()
	case ShowDeleteMsg:
		s.openDeleteConfirm()
		return nil
	case SubmitFormMsg:
		return s.submit()
	case ConfirmDeleteMsg:
		s.Overlays.Pop()
		return s.dispatch(s.store.DeleteDepartment(msg.ID))
	case DismissModalMsg:
		s.dismiss()
		return nil
	case RefreshMsg:
		return s.dispatch(s.store.ListDepartment())
	case NextPageMsg:
		s.Pager.Next(len(s.Departments()))
		s.Cursor = 0
		return nil
	case PrevPageMsg:
		s.Pager.Prev()
		s.Cursor = 0
		return nil
	case GotoPageMsg:
		if s.Pager.Goto(msg.Page, len(s.Departments())) {
			s.Cursor = 0
		}
		return nil
	}

	if s.HasOverlay() {
		cmd, _ := s.Overlays.UpdateTop(msg)
		if form, ok := s.form(); ok {
			s.Form.Name = form.Value()
		}
		return cmd
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "j", "down":
			if s.Cursor < len(s.PageItems())-1 {
				s.Cursor++
			}
		case "k", "up":
			if s.Cursor > 0 {
				s.Cursor--
			}
		case "g", "home":
			s.Cursor = 0
		case "G", "end":
			s.Cursor = max(len(s.PageItems())-1, 0)
		}
	}
	return nil
}

// handleAction folds a store result into the state. A create or update
// success flag flipping to true closes and resets the form once; any
// mutation success re-fetches the list.
func (s *DepartmentScreen) handleAction(a store.Action) tea.Cmd {
	prev := s.store.State()
	s.store.Apply(a)
	next := s.store.State()

	tr := store.SuccessTransitions(prev, next)
	if tr.Created || tr.Updated {
		s.closeForm()
	}
	s.clampCursor()
	if tr.Any() {
		return s.dispatch(s.store.ListDepartment())
	}
	return nil
}

// dispatch pairs a store command with a spinner tick so the loader animates.
func (s *DepartmentScreen) dispatch(cmd tea.Cmd) tea.Cmd {
	return tea.Batch(cmd, s.spinner.Tick)
}

func (s *DepartmentScreen) openCreate() tea.Cmd {
	if s.HasOverlay() {
		return nil
	}
	s.clearMutationResults()
	s.Form = FormState{}
	s.Modal = ModalCreate
	modal := NewDepartmentFormModal("", false)
	s.Overlays.Push(Overlay{View: modal})
	return modal.Init()
}

func (s *DepartmentScreen) openEdit() tea.Cmd {
	if s.HasOverlay() {
		return nil
	}
	d, ok := s.SelectedDepartment()
	if !ok {
		return nil
	}
	s.clearMutationResults()
	s.Form = FormState{ID: d.ID, Name: d.Name, EditMode: true}
	s.Modal = ModalEdit
	modal := NewDepartmentFormModal(d.Name, true)
	s.Overlays.Push(Overlay{View: modal})
	return modal.Init()
}

// openDeleteConfirm shows the confirmation for the selected row. Nothing is
// dispatched until the user confirms.
func (s *DepartmentScreen) openDeleteConfirm() {
	if s.HasOverlay() || !s.IsAdmin() {
		return
	}
	d, ok := s.SelectedDepartment()
	if !ok {
		return
	}
	s.Overlays.Push(Overlay{View: NewDeleteDepartmentConfirmModal(d)})
}

// submit sends the name exactly as typed; the backend validates it.
func (s *DepartmentScreen) submit() tea.Cmd {
	if s.Modal == ModalClosed || s.Form.Name == "" {
		return nil
	}
	if s.Form.EditMode {
		return s.dispatch(s.store.UpdateDepartment(s.Form.ID, s.Form.Name))
	}
	return s.dispatch(s.store.CreateDepartment(s.Form.Name))
}

// dismiss pops the top modal. Closing the form resets it without dispatching.
func (s *DepartmentScreen) dismiss() {
	if _, ok := s.form(); ok {
		s.closeForm()
		return
	}
	s.Overlays.Pop()
}

func (s *DepartmentScreen) closeForm() {
	s.Overlays.PopIf(func(v View) bool {
		_, ok := v.(*DepartmentFormModal)
		return ok
	})
	s.resetForm()
}

func (s *DepartmentScreen) resetForm() {
	s.Form = FormState{}
	s.Modal = ModalClosed
}

// clearMutationResults drops stale create/update banners before the form opens.
func (s *DepartmentScreen) clearMutationResults() {
	st := s.store.State()
	if !st.DepartmentCreate.Loading {
		s.store.Apply(store.CreateReset{})
	}
	if !st.DepartmentUpdate.Loading {
		s.store.Apply(store.UpdateReset{})
	}
}

// syncFormStatus copies the create or update slice into the open form, which
// shows it and refuses Enter while the request is in flight.
func (s *DepartmentScreen) syncFormStatus() {
	form, ok := s.form()
	if !ok {
		return
	}
	st := s.store.State()
	status := st.DepartmentCreate
	if form.EditMode() {
		status = st.DepartmentUpdate
	}
	form.SetStatus(status, s.spinner)
}

func (s *DepartmentScreen) form() (*DepartmentFormModal, bool) {
	top, ok := s.Overlays.Peek()
	if !ok {
		return nil, false
	}
	f, ok := top.View.(*DepartmentFormModal)
	return f, ok
}

// clampCursor keeps the cursor on a row of the current page. The page itself
// is left alone, so a page emptied by a delete stays selected and empty.
func (s *DepartmentScreen) clampCursor() {
	n := len(s.PageItems())
	if s.Cursor >= n {
		s.Cursor = max(n-1, 0)
	}
}

func (s *DepartmentScreen) anyLoading() bool {
	st := s.store.State()
	return st.DepartmentList.Loading ||
		st.DepartmentCreate.Loading ||
		st.DepartmentUpdate.Loading ||
		st.DepartmentDelete.Loading
}
