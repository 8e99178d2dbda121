package store

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"deptdash/internal/apiclient"
	"deptdash/internal/department"
)

// Store owns State and turns dispatches into remote calls. It is not safe for
// concurrent use; every method is called from the Bubble Tea update loop and
// the returned commands only read their captured arguments.
type Store struct {
	ctx    context.Context
	client department.Client
	logger *zap.Logger
	state  State
}

// New creates a store. ctx bounds every remote call; cancel it on shutdown.
func New(ctx context.Context, client department.Client, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{ctx: ctx, client: client, logger: logger}
}

// State returns the current state.
func (s *Store) State() State {
	return s.state
}

// Apply folds a into the state.
func (s *Store) Apply(a Action) {
	s.state = Reduce(s.state, a)
}

// ListDepartment marks the list loading and returns the fetch command.
func (s *Store) ListDepartment() tea.Cmd {
	s.Apply(ListRequested{})
	s.logger.Debug("dispatch", zap.String("action", "listDepartment"))
	ctx, client, logger := s.ctx, s.client, s.logger
	return func() tea.Msg {
		deps, err := client.List(ctx)
		if err != nil {
			logger.Warn("listDepartment failed", zap.Error(err))
			return ListFailed{Err: apiclient.ErrorMessage(err)}
		}
		logger.Debug("listDepartment done", zap.Int("count", len(deps)))
		return ListSucceeded{Departments: deps}
	}
}

// CreateDepartment marks create loading and returns the create command.
func (s *Store) CreateDepartment(name string) tea.Cmd {
	s.Apply(CreateRequested{Name: name})
	s.logger.Debug("dispatch", zap.String("action", "createDepartment"), zap.String("name", name))
	ctx, client, logger := s.ctx, s.client, s.logger
	return func() tea.Msg {
		d, err := client.Create(ctx, name)
		if err != nil {
			logger.Warn("createDepartment failed", zap.Error(err))
			return CreateFailed{Err: apiclient.ErrorMessage(err)}
		}
		return CreateSucceeded{Department: d}
	}
}

// UpdateDepartment marks update loading and returns the update command.
func (s *Store) UpdateDepartment(id, name string) tea.Cmd {
	s.Apply(UpdateRequested{ID: id, Name: name})
	s.logger.Debug("dispatch", zap.String("action", "updateDepartment"), zap.String("id", id), zap.String("name", name))
	ctx, client, logger := s.ctx, s.client, s.logger
	return func() tea.Msg {
		d, err := client.Update(ctx, id, name)
		if err != nil {
			logger.Warn("updateDepartment failed", zap.String("id", id), zap.Error(err))
			return UpdateFailed{Err: apiclient.ErrorMessage(err)}
		}
		return UpdateSucceeded{Department: d}
	}
}

// DeleteDepartment marks delete loading and returns the delete command.
func (s *Store) DeleteDepartment(id string) tea.Cmd {
	s.Apply(DeleteRequested{ID: id})
	s.logger.Debug("dispatch", zap.String("action", "deleteDepartment"), zap.String("id", id))
	ctx, client, logger := s.ctx, s.client, s.logger
	return func() tea.Msg {
		if err := client.Delete(ctx, id); err != nil {
			logger.Warn("deleteDepartment failed", zap.String("id", id), zap.Error(err))
			return DeleteFailed{Err: apiclient.ErrorMessage(err)}
		}
		return DeleteSucceeded{ID: id}
	}
}
