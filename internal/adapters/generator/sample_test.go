package generator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pace/internal/core/domain"
)

func TestSample_Generate_Count(t *testing.T) {
	g := New()

	assert.Len(t, g.Generate(1), 1)
	assert.Len(t, g.Generate(8), 8)
	assert.Len(t, g.Generate(20), 20)
	assert.Nil(t, g.Generate(0))
	assert.Nil(t, g.Generate(-3))
}

func TestSample_Generate_TasksAreValid(t *testing.T) {
	tasks := New().Generate(12)

	for i, task := range tasks {
		assert.NotEmpty(t, task.ID, "task %d", i)
		assert.NotEmpty(t, task.Title, "task %d", i)
		assert.Greater(t, task.TimeTaken, 0.0, "task %d", i)
		assert.GreaterOrEqual(t, task.Revenue, 0.0, "task %d", i)
		assert.False(t, math.IsNaN(task.Revenue) || math.IsInf(task.Revenue, 0), "task %d", i)

		if task.Status == domain.StatusDone {
			require.NotNil(t, task.CompletedAt, "task %d", i)
			assert.False(t, task.CompletedAt.Before(task.CreatedAt), "task %d", i)
		} else {
			assert.Nil(t, task.CompletedAt, "task %d", i)
		}
	}
}

func TestSample_Generate_DeterministicFigures(t *testing.T) {
	fixed := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time { return fixed }

	first := New().WithClock(clock).Generate(8)
	second := New().WithClock(clock).Generate(8)
	require.Len(t, second, len(first))

	for i := range first {
		// Everything except the random id is reproducible.
		assert.Equal(t, first[i].Title, second[i].Title)
		assert.Equal(t, first[i].Revenue, second[i].Revenue)
		assert.Equal(t, first[i].TimeTaken, second[i].TimeTaken)
		assert.Equal(t, first[i].Status, second[i].Status)
		assert.Equal(t, first[i].Priority, second[i].Priority)
		assert.True(t, first[i].CreatedAt.Equal(second[i].CreatedAt))
		assert.NotEqual(t, first[i].ID, second[i].ID)
	}
}

func TestSample_Generate_ChronologicalOrder(t *testing.T) {
	fixed := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	tasks := New().WithClock(func() time.Time { return fixed }).Generate(5)

	for i := 1; i < len(tasks); i++ {
		assert.True(t, tasks[i-1].CreatedAt.Before(tasks[i].CreatedAt))
	}
	for _, task := range tasks {
		assert.True(t, task.CreatedAt.Before(fixed))
	}
}

func TestSample_Generate_MixedStatuses(t *testing.T) {
	tasks := New().Generate(8)

	counts := map[domain.Status]int{}
	for _, task := range tasks {
		counts[task.Status]++
	}

	// The cycle guarantees demo data exercises every status.
	assert.Equal(t, 4, counts[domain.StatusDone])
	assert.Equal(t, 2, counts[domain.StatusInProgress])
	assert.Equal(t, 2, counts[domain.StatusTodo])
}
