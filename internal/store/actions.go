package store

import (
	"deptdash/internal/department"
	"deptdash/internal/session"
)

// Action is a typed state change. Actions double as Bubble Tea messages.
type Action interface {
	action()
}

type (
	ListRequested struct{}
	ListSucceeded struct{ Departments []department.Department }
	ListFailed    struct{ Err string }

	CreateRequested struct{ Name string }
	CreateSucceeded struct{ Department department.Department }
	CreateFailed    struct{ Err string }
	CreateReset     struct{}

	UpdateRequested struct{ ID, Name string }
	UpdateSucceeded struct{ Department department.Department }
	UpdateFailed    struct{ Err string }
	UpdateReset     struct{}

	DeleteRequested struct{ ID string }
	DeleteSucceeded struct{ ID string }
	DeleteFailed    struct{ Err string }
	DeleteReset     struct{}

	LoggedIn  struct{ User *session.UserInfo }
	LoggedOut struct{}
)

func (ListRequested) action()   {}
func (ListSucceeded) action()   {}
func (ListFailed) action()      {}
func (CreateRequested) action() {}
func (CreateSucceeded) action() {}
func (CreateFailed) action()    {}
func (CreateReset) action()     {}
func (UpdateRequested) action() {}
func (UpdateSucceeded) action() {}
func (UpdateFailed) action()    {}
func (UpdateReset) action()     {}
func (DeleteRequested) action() {}
func (DeleteSucceeded) action() {}
func (DeleteFailed) action()    {}
func (DeleteReset) action()     {}
func (LoggedIn) action()        {}
func (LoggedOut) action()       {}

// Reduce returns the state after applying a. It never mutates s in place.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case ListRequested:
		s.DepartmentList = ListState{Departments: s.DepartmentList.Departments, Loading: true}
	case ListSucceeded:
		s.DepartmentList = ListState{Departments: a.Departments}
	case ListFailed:
		s.DepartmentList = ListState{Departments: s.DepartmentList.Departments, Error: a.Err}

	case CreateRequested:
		s.DepartmentCreate = ResultState{Loading: true}
	case CreateSucceeded:
		s.DepartmentCreate = ResultState{Success: true}
	case CreateFailed:
		s.DepartmentCreate = ResultState{Error: a.Err}
	case CreateReset:
		s.DepartmentCreate = ResultState{}

	case UpdateRequested:
		s.DepartmentUpdate = ResultState{Loading: true}
	case UpdateSucceeded:
		s.DepartmentUpdate = ResultState{Success: true}
	case UpdateFailed:
		s.DepartmentUpdate = ResultState{Error: a.Err}
	case UpdateReset:
		s.DepartmentUpdate = ResultState{}

	case DeleteRequested:
		s.DepartmentDelete = ResultState{Loading: true}
	case DeleteSucceeded:
		s.DepartmentDelete = ResultState{Success: true}
	case DeleteFailed:
		s.DepartmentDelete = ResultState{Error: a.Err}
	case DeleteReset:
		s.DepartmentDelete = ResultState{}

	case LoggedIn:
		s.UserLogin = UserLoginState{UserInfo: a.User}
	case LoggedOut:
		s.UserLogin = UserLoginState{}
	}
	return s
}
