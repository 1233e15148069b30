package domain

import (
	"time"

	"github.com/google/uuid"
)

// backdateStep is the deterministic offset applied to records ingested
// without a creation timestamp. Record i is back-dated by (i+1) steps so
// chronological ordering stays plausible for demo data.
const backdateStep = 6 * time.Hour

// TaskRecord is a loosely-typed task as delivered by an external source.
// Every field is optional; Normalize applies the default and coercion rules.
type TaskRecord struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Revenue     *float64   `json:"revenue" yaml:"revenue"`
	TimeTaken   *float64   `json:"timeTaken" yaml:"timeTaken"`
	Priority    string     `json:"priority" yaml:"priority"`
	Status      string     `json:"status" yaml:"status"`
	Notes       string     `json:"notes" yaml:"notes"`
	CreatedAt   *time.Time `json:"createdAt" yaml:"createdAt"`
	CompletedAt *time.Time `json:"completedAt" yaml:"completedAt"`
}

// Normalize converts an untrusted record into a valid Task.
// idx is the record's position in the ingested sequence and now the load
// time; both feed the deterministic back-dating of missing timestamps.
//
// After Normalize the task satisfies every collection invariant:
// timeTaken > 0, revenue finite and >= 0, completedAt present iff Done.
func (r TaskRecord) Normalize(idx int, now time.Time) Task {
	t := Task{
		ID:       r.ID,
		Title:    r.Title,
		Priority: ParsePriority(r.Priority),
		Status:   ParseStatus(r.Status),
		Notes:    r.Notes,
	}

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Title == "" {
		t.Title = DefaultTitle
	}

	if r.Revenue != nil {
		t.Revenue = SanitizeRevenue(*r.Revenue)
	}
	if r.TimeTaken != nil {
		t.TimeTaken = ClampTimeTaken(*r.TimeTaken)
	} else {
		t.TimeTaken = MinTimeTaken
	}

	if r.CreatedAt != nil {
		t.CreatedAt = *r.CreatedAt
	} else {
		t.CreatedAt = now.Add(-time.Duration(idx+1) * backdateStep)
	}

	if t.Status == StatusDone {
		if r.CompletedAt != nil {
			t.CompletedAt = r.CompletedAt
		} else {
			done := t.CreatedAt.Add(time.Duration(t.TimeTaken * float64(time.Hour)))
			t.CompletedAt = &done
		}
	}

	return t
}

// NormalizeAll normalizes a whole ingested sequence in order.
func NormalizeAll(records []TaskRecord, now time.Time) []Task {
	tasks := make([]Task, 0, len(records))
	for i, r := range records {
		tasks = append(tasks, r.Normalize(i, now))
	}
	return tasks
}
