package apiserver

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"deptdash/internal/department"
)

// Repository stores departments in memory.
type Repository struct {
	mu    sync.RWMutex
	items map[string]department.Department
	now   func() time.Time
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{
		items: make(map[string]department.Department),
		now:   time.Now,
	}
}

// List returns all departments ordered by creation time.
func (r *Repository) List() []department.Department {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]department.Department, 0, len(r.items))
	for _, d := range r.items {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Create adds a department. Names are unique, ignoring case.
func (r *Repository) Create(name string) (department.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nameTakenLocked(name, "") {
		return department.Department{}, ErrConflict
	}
	d := department.Department{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: r.now().UTC(),
	}
	r.items[d.ID] = d
	return d, nil
}

// Update renames department id.
func (r *Repository) Update(id, name string) (department.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.items[id]
	if !ok {
		return department.Department{}, ErrNotFound
	}
	if r.nameTakenLocked(name, id) {
		return department.Department{}, ErrConflict
	}
	d.Name = name
	r.items[id] = d
	return d, nil
}

// Delete removes department id.
func (r *Repository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *Repository) nameTakenLocked(name, exceptID string) bool {
	for id, d := range r.items {
		if id != exceptID && strings.EqualFold(d.Name, name) {
			return true
		}
	}
	return false
}
