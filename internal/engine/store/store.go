// Package store implements the task collection, its mutation API and the
// single-slot delete/undo recovery window.
package store

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/pace/internal/core/domain"
)

// Store owns the ordered task collection. It is the single writer context:
// consumers read computed views (ranked derived tasks, metrics) and never
// mutate the raw collection directly.
//
// Every exported operation runs atomically under the store mutex, so no
// interleaving of two mutations is observable.
type Store struct {
	mu     sync.Mutex
	tasks  []domain.Task
	cell   holdingCell
	grades domain.GradeTable

	// rev identifies the current collection state. Derived views are
	// memoized per revision; recomputation stays observably equivalent
	// to a full pure recomputation.
	rev  uint64
	view viewCache

	closed  bool
	loading bool
	loadErr string

	now func() time.Time
}

type viewCache struct {
	rev     uint64
	valid   bool
	ranked  []domain.DerivedTask
	metrics domain.Metrics
}

// New creates an empty store grading against the given table.
func New(grades domain.GradeTable) *Store {
	return &Store{
		grades: grades,
		now:    time.Now,
	}
}

// WithClock overrides the store's time source. Used for testing.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// TaskInput is the caller-supplied portion of a new task. Every field is
// optional; Add coerces whatever it gets to valid defaults.
type TaskInput struct {
	ID        string
	Title     string
	Revenue   float64
	TimeTaken float64
	Priority  domain.Priority
	Status    domain.Status
	Notes     string
}

// Patch is a partial update merged onto an existing task. Nil fields are
// left untouched.
type Patch struct {
	Title     *string
	Revenue   *float64
	TimeTaken *float64
	Priority  *domain.Priority
	Status    *domain.Status
	Notes     *string
}

// Add appends a new task to the end of the collection. There are no error
// conditions: invalid numeric fields are coerced, a missing id gets a fresh
// unique one, and completedAt is set only when the initial status is Done.
func (s *Store) Add(input TaskInput) domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	t := domain.Task{
		ID:        input.ID,
		Title:     input.Title,
		Revenue:   domain.SanitizeRevenue(input.Revenue),
		TimeTaken: domain.ClampTimeTaken(input.TimeTaken),
		Priority:  input.Priority,
		Status:    input.Status,
		Notes:     input.Notes,
		CreatedAt: now,
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Title == "" {
		t.Title = domain.DefaultTitle
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if t.Status == "" {
		t.Status = domain.StatusTodo
	}
	if t.Status == domain.StatusDone {
		done := now
		t.CompletedAt = &done
	}

	s.tasks = append(s.tasks, t)
	s.rev++
	return t
}

// Update merges the patch onto the task with the given id. An unknown id is
// silently ignored. When the status transitions into Done, completedAt is
// stamped; a transition away from Done leaves completedAt unchanged.
func (s *Store) Update(id string, patch Patch) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Task{}, false
	}

	t := &s.tasks[idx]
	wasDone := t.Status == domain.StatusDone

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Revenue != nil {
		t.Revenue = domain.SanitizeRevenue(*patch.Revenue)
	}
	if patch.TimeTaken != nil {
		t.TimeTaken = *patch.TimeTaken
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Notes != nil {
		t.Notes = *patch.Notes
	}

	// Re-clamp after the merge so the timeTaken invariant survives any patch.
	t.TimeTaken = domain.ClampTimeTaken(t.TimeTaken)

	if !wasDone && t.Status == domain.StatusDone {
		done := s.now()
		t.CompletedAt = &done
	}
	// Done -> not-Done intentionally leaves completedAt as it was.

	s.rev++
	return *t, true
}

// Delete removes the task with the given id and captures it in the holding
// cell, opening the undo window. Deleting an unknown id is not an error: the
// cell still gets overwritten (with nothing held, returning the machine to
// Idle), so a previously pending deletion becomes unrecoverable either way.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.cell.capture(nil)
		return
	}

	removed := s.tasks[idx]
	s.tasks = slices.Delete(s.tasks, idx, idx+1)
	s.cell.capture(&removed)
	s.rev++
}

// Undo restores the held task, appending it to the end of the collection
// (insertion order, not its original index), and closes the undo window.
// It reports whether a restore happened; calling it with nothing held is a
// silent no-op.
func (s *Store) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	held, ok := s.cell.take()
	if !ok {
		return false
	}
	s.tasks = append(s.tasks, *held)
	s.rev++
	return true
}

// ClearUndo discards the held task permanently without restoring it.
func (s *Store) ClearUndo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cell.clear()
}

// UndoState reports the current state of the delete/undo machine.
func (s *Store) UndoState() UndoState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cell.state()
}

// Held returns a copy of the task currently in the holding cell, if any.
func (s *Store) Held() (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cell.held == nil {
		return domain.Task{}, false
	}
	return *s.cell.held, true
}

// Tasks returns a snapshot copy of the collection in its current order.
func (s *Store) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks in the collection.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Ranked returns the derived view ordered by ROI descending.
func (s *Store) Ranked() []domain.DerivedTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshViews()
	return slices.Clone(s.view.ranked)
}

// Metrics returns the aggregate snapshot for the current collection.
func (s *Store) Metrics() domain.Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshViews()
	return s.view.metrics
}

// refreshViews recomputes the memoized derived views when the collection
// revision moved. Caller must hold the mutex.
func (s *Store) refreshViews() {
	if s.view.valid && s.view.rev == s.rev {
		return
	}
	s.view = viewCache{
		rev:     s.rev,
		valid:   true,
		ranked:  domain.SortDerived(domain.DeriveAll(s.tasks)),
		metrics: domain.ComputeMetrics(s.tasks, s.grades),
	}
}

// indexOf returns the position of the task with the given id, or -1.
// Caller must hold the mutex.
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t domain.Task) bool {
		return t.ID == id
	})
}
