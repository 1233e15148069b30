package store_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pace/internal/core/domain"
	"go.trai.ch/pace/internal/engine/store"
)

func ptr[T any](v T) *T { return &v }

func newStore() *store.Store {
	return store.New(domain.DefaultGradeTable())
}

func TestStore_Add_Defaults(t *testing.T) {
	s := newStore()

	before := time.Now()
	task := s.Add(store.TaskInput{})

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, domain.DefaultTitle, task.Title)
	assert.Equal(t, 0.0, task.Revenue)
	assert.Equal(t, domain.MinTimeTaken, task.TimeTaken)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Equal(t, domain.StatusTodo, task.Status)
	assert.Nil(t, task.CompletedAt)
	assert.False(t, task.CreatedAt.Before(before))

	require.Equal(t, 1, s.Len())
}

func TestStore_Add_CoercesInvalidNumbers(t *testing.T) {
	s := newStore()

	tests := []struct {
		name          string
		input         store.TaskInput
		wantRevenue   float64
		wantTimeTaken float64
	}{
		{name: "negative revenue", input: store.TaskInput{Revenue: -5, TimeTaken: 2}, wantRevenue: 0, wantTimeTaken: 2},
		{name: "NaN revenue", input: store.TaskInput{Revenue: math.NaN(), TimeTaken: 2}, wantRevenue: 0, wantTimeTaken: 2},
		{name: "zero timeTaken", input: store.TaskInput{Revenue: 10, TimeTaken: 0}, wantRevenue: 10, wantTimeTaken: 1},
		{name: "negative timeTaken", input: store.TaskInput{Revenue: 10, TimeTaken: -1}, wantRevenue: 10, wantTimeTaken: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := s.Add(tt.input)
			assert.Equal(t, tt.wantRevenue, task.Revenue)
			assert.Equal(t, tt.wantTimeTaken, task.TimeTaken)
		})
	}

	// The invariant holds for every task in the collection.
	for _, task := range s.Tasks() {
		assert.Greater(t, task.TimeTaken, 0.0)
		assert.GreaterOrEqual(t, task.Revenue, 0.0)
	}
}

func TestStore_Add_DoneGetsCompletedAt(t *testing.T) {
	s := newStore()

	task := s.Add(store.TaskInput{Title: "closed on arrival", Status: domain.StatusDone})
	require.NotNil(t, task.CompletedAt)
	assert.False(t, task.CompletedAt.Before(task.CreatedAt))
}

func TestStore_Add_AppendsInOrder(t *testing.T) {
	s := newStore()

	s.Add(store.TaskInput{Title: "first"})
	s.Add(store.TaskInput{Title: "second"})
	s.Add(store.TaskInput{Title: "third"})

	tasks := s.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "third", tasks[2].Title)
}

func TestStore_Update_MergesPatch(t *testing.T) {
	s := newStore()
	task := s.Add(store.TaskInput{Title: "initial", Revenue: 100, TimeTaken: 2})

	updated, ok := s.Update(task.ID, store.Patch{
		Title:   ptr("renamed"),
		Revenue: ptr(250.0),
	})

	require.True(t, ok)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, 250.0, updated.Revenue)
	// Untouched fields survive the merge.
	assert.Equal(t, 2.0, updated.TimeTaken)
	assert.Equal(t, domain.PriorityMedium, updated.Priority)
}

func TestStore_Update_UnknownIDIsSilentNoop(t *testing.T) {
	s := newStore()
	s.Add(store.TaskInput{Title: "only"})

	_, ok := s.Update("no-such-id", store.Patch{Title: ptr("ghost")})

	assert.False(t, ok)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "only", s.Tasks()[0].Title)
}

func TestStore_Update_ReclampsTimeTaken(t *testing.T) {
	s := newStore()
	task := s.Add(store.TaskInput{TimeTaken: 5})

	updated, ok := s.Update(task.ID, store.Patch{TimeTaken: ptr(-2.0)})

	require.True(t, ok)
	assert.Equal(t, domain.MinTimeTaken, updated.TimeTaken)
}

func TestStore_Update_CompletedAtTransitions(t *testing.T) {
	s := newStore()
	task := s.Add(store.TaskInput{Title: "deal"})
	require.Nil(t, task.CompletedAt)

	// Todo -> Done stamps completedAt at or after creation.
	updated, ok := s.Update(task.ID, store.Patch{Status: ptr(domain.StatusDone)})
	require.True(t, ok)
	require.NotNil(t, updated.CompletedAt)
	assert.False(t, updated.CompletedAt.Before(updated.CreatedAt))
	stamped := *updated.CompletedAt

	// Done -> Todo leaves completedAt untouched. This mirrors the source
	// system's behavior and is deliberately not "fixed".
	reverted, ok := s.Update(task.ID, store.Patch{Status: ptr(domain.StatusTodo)})
	require.True(t, ok)
	require.NotNil(t, reverted.CompletedAt)
	assert.True(t, reverted.CompletedAt.Equal(stamped))

	// Re-completing stamps a fresh timestamp.
	again, ok := s.Update(task.ID, store.Patch{Status: ptr(domain.StatusDone)})
	require.True(t, ok)
	require.NotNil(t, again.CompletedAt)
	assert.False(t, again.CompletedAt.Before(stamped))
}

func TestStore_Update_DoneToDoneKeepsTimestamp(t *testing.T) {
	s := newStore()
	task := s.Add(store.TaskInput{Status: domain.StatusDone})
	require.NotNil(t, task.CompletedAt)
	stamped := *task.CompletedAt

	updated, ok := s.Update(task.ID, store.Patch{
		Status: ptr(domain.StatusDone),
		Notes:  ptr("still done"),
	})

	require.True(t, ok)
	require.NotNil(t, updated.CompletedAt)
	assert.True(t, updated.CompletedAt.Equal(stamped))
}

func TestStore_DeleteUndo_RestoresAtEnd(t *testing.T) {
	s := newStore()
	a := s.Add(store.TaskInput{Title: "a"})
	b := s.Add(store.TaskInput{Title: "b"})
	c := s.Add(store.TaskInput{Title: "c"})

	s.Delete(b.ID)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, store.UndoPending, s.UndoState())

	held, ok := s.Held()
	require.True(t, ok)
	assert.Equal(t, b.ID, held.ID)

	restored := s.Undo()
	require.True(t, restored)

	// Restored position is insertion order, not the original index.
	tasks := s.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, a.ID, tasks[0].ID)
	assert.Equal(t, c.ID, tasks[1].ID)
	assert.Equal(t, b.ID, tasks[2].ID)

	assert.Equal(t, store.UndoIdle, s.UndoState())
	_, ok = s.Held()
	assert.False(t, ok)
}

func TestStore_DoubleDelete_FirstIsLost(t *testing.T) {
	s := newStore()
	a := s.Add(store.TaskInput{Title: "a"})
	b := s.Add(store.TaskInput{Title: "b"})

	s.Delete(a.ID)
	s.Delete(b.ID)

	// Only the second deletion is recoverable.
	require.True(t, s.Undo())
	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, b.ID, tasks[0].ID)

	// The first is permanently gone.
	assert.False(t, s.Undo())
	assert.Equal(t, 1, s.Len())
}

func TestStore_ClearUndo_DiscardsPermanently(t *testing.T) {
	s := newStore()
	task := s.Add(store.TaskInput{Title: "doomed"})

	s.Delete(task.ID)
	s.ClearUndo()

	assert.Equal(t, store.UndoIdle, s.UndoState())
	_, ok := s.Held()
	assert.False(t, ok)

	// Undo after clear is a no-op: the collection is unchanged.
	assert.False(t, s.Undo())
	assert.Equal(t, 0, s.Len())
	_, ok = s.Held()
	assert.False(t, ok)
}

func TestStore_UndoWhenIdle_IsNoop(t *testing.T) {
	s := newStore()
	s.Add(store.TaskInput{Title: "stays"})

	assert.False(t, s.Undo())
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, store.UndoIdle, s.UndoState())
}

func TestStore_DeleteUnknownID_OverwritesHeld(t *testing.T) {
	s := newStore()
	task := s.Add(store.TaskInput{Title: "was recoverable"})

	s.Delete(task.ID)
	_, ok := s.Held()
	require.True(t, ok)

	// Deleting a missing id must not panic, and it still overwrites the
	// holding cell: the pending deletion becomes unrecoverable and the
	// machine returns to Idle.
	s.Delete("no-such-id")
	_, ok = s.Held()
	assert.False(t, ok)
	assert.Equal(t, store.UndoIdle, s.UndoState())
	assert.False(t, s.Undo())
	assert.Equal(t, store.UndoIdle, s.UndoState())
	assert.Equal(t, 0, s.Len())
}

func TestStore_Ranked_RecomputesAfterMutation(t *testing.T) {
	s := newStore()
	low := s.Add(store.TaskInput{Title: "low", Revenue: 10, TimeTaken: 1})
	s.Add(store.TaskInput{Title: "high", Revenue: 100, TimeTaken: 1})

	ranked := s.Ranked()
	require.Len(t, ranked, 2)
	assert.Equal(t, "high", ranked[0].Title)

	// Memoization is an optimization only: a mutation is immediately
	// visible in the next computed view.
	_, ok := s.Update(low.ID, store.Patch{Revenue: ptr(1000.0)})
	require.True(t, ok)

	ranked = s.Ranked()
	assert.Equal(t, "low", ranked[0].Title)
	assert.InDelta(t, 1000, ranked[0].ROI, 1e-9)
}

func TestStore_Metrics_TracksCollection(t *testing.T) {
	s := newStore()
	assert.Equal(t, domain.ZeroMetrics(), s.Metrics())

	a := s.Add(store.TaskInput{Revenue: 100, TimeTaken: 2})
	s.Add(store.TaskInput{Revenue: 300, TimeTaken: 3})

	m := s.Metrics()
	assert.InDelta(t, 75, m.AverageROI, 1e-9)
	assert.InDelta(t, 80, m.RevenuePerHour, 1e-9)

	s.Delete(a.ID)
	m = s.Metrics()
	assert.InDelta(t, 100, m.AverageROI, 1e-9)

	// Undo restores the previous aggregate exactly.
	require.True(t, s.Undo())
	assert.Equal(t, 75.0, s.Metrics().AverageROI)
}

func TestStore_WithClock(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s := newStore().WithClock(func() time.Time { return fixed })

	task := s.Add(store.TaskInput{Status: domain.StatusDone})
	assert.True(t, task.CreatedAt.Equal(fixed))
	require.NotNil(t, task.CompletedAt)
	assert.True(t, task.CompletedAt.Equal(fixed))
}
