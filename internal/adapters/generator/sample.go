// Package generator produces synthetic demo tasks for the ingestion fallback.
package generator

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.trai.ch/pace/internal/core/domain"
)

// Sample titles cycle through typical sales activities.
var sampleTitles = []string{
	"Renewal call with key account",
	"Prepare quarterly pricing proposal",
	"Demo for inbound lead",
	"Follow up on stalled deal",
	"Upsell conversation with existing client",
	"Cold outreach batch",
	"Contract negotiation session",
	"Post-sale onboarding check-in",
}

// Sample implements ports.TaskGenerator. Revenue and effort values are
// seeded per index with xxhash, so the same n always yields the same
// figures; only the timestamps are relative to the generation time.
type Sample struct {
	now func() time.Time
}

// New creates a Sample generator.
func New() *Sample {
	return &Sample{now: time.Now}
}

// WithClock overrides the generator's time source. Used for testing.
func (g *Sample) WithClock(now func() time.Time) *Sample {
	g.now = now
	return g
}

// Generate returns n valid tasks, back-dated one day apart so the oldest
// comes first.
func (g *Sample) Generate(n int) []domain.Task {
	if n <= 0 {
		return nil
	}

	now := g.now()
	tasks := make([]domain.Task, 0, n)
	for i := range n {
		seed := xxhash.Sum64String(fmt.Sprintf("pace-sample-%d", i))

		revenue := float64(200 + seed%2300)
		timeTaken := float64(1 + seed>>8%7)
		status := []domain.Status{
			domain.StatusDone,
			domain.StatusDone,
			domain.StatusInProgress,
			domain.StatusTodo,
		}[i%4]
		priority := []domain.Priority{
			domain.PriorityHigh,
			domain.PriorityMedium,
			domain.PriorityLow,
		}[seed%3]

		createdAt := now.Add(-time.Duration(n-i) * 24 * time.Hour)
		t := domain.Task{
			ID:        uuid.NewString(),
			Title:     sampleTitles[i%len(sampleTitles)],
			Revenue:   revenue,
			TimeTaken: timeTaken,
			Priority:  priority,
			Status:    status,
			CreatedAt: createdAt,
		}
		if status == domain.StatusDone {
			done := createdAt.Add(time.Duration(timeTaken * float64(time.Hour)))
			t.CompletedAt = &done
		}
		tasks = append(tasks, t)
	}
	return tasks
}
