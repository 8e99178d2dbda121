// Package store holds the dashboard's application state and the typed actions
// that change it. State is passed explicitly to the screen; it is mutated only
// by folding actions through Reduce on the Bubble Tea update goroutine.
package store

import (
	"deptdash/internal/department"
	"deptdash/internal/session"
)

// ListState is the result of fetching the department list.
type ListState struct {
	Departments []department.Department
	Loading     bool
	Error       string
}

// ResultState is the tri-state result of a create, update or delete.
type ResultState struct {
	Loading bool
	Error   string
	Success bool
}

// UserLoginState holds the signed-in user, nil when nobody is signed in.
type UserLoginState struct {
	UserInfo *session.UserInfo
}

// State is every slice the department screen reads.
type State struct {
	DepartmentList   ListState
	DepartmentCreate ResultState
	DepartmentUpdate ResultState
	DepartmentDelete ResultState
	UserLogin        UserLoginState
}

// IsAdmin reports whether the signed-in user carries the admin flag.
func (s State) IsAdmin() bool {
	return s.UserLogin.UserInfo != nil && s.UserLogin.UserInfo.IsAdmin
}

// Transitions reports which mutation success flags flipped from false to true
// between prev and next.
type Transitions struct {
	Created bool
	Updated bool
	Deleted bool
}

// Any reports whether any success flag flipped.
func (t Transitions) Any() bool {
	return t.Created || t.Updated || t.Deleted
}

// SuccessTransitions compares two states.
func SuccessTransitions(prev, next State) Transitions {
	return Transitions{
		Created: !prev.DepartmentCreate.Success && next.DepartmentCreate.Success,
		Updated: !prev.DepartmentUpdate.Success && next.DepartmentUpdate.Success,
		Deleted: !prev.DepartmentDelete.Success && next.DepartmentDelete.Success,
	}
}
