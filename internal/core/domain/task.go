// Package domain contains the core entities and pure computations for pace.
package domain

import (
	"math"
	"strings"
	"time"
)

// DefaultTitle is used for tasks ingested without a title.
const DefaultTitle = "Untitled task"

// MinTimeTaken is the floor applied to timeTaken on every write path.
// The invariant timeTaken > 0 must hold for every task in the collection.
const MinTimeTaken = 1.0

// Priority classifies how important a task is.
type Priority string

const (
	// PriorityLow marks low-importance tasks.
	PriorityLow Priority = "Low"
	// PriorityMedium is the default priority.
	PriorityMedium Priority = "Medium"
	// PriorityHigh marks high-importance tasks.
	PriorityHigh Priority = "High"
)

// Status tracks the lifecycle of a task.
type Status string

const (
	// StatusTodo is the default status for new tasks.
	StatusTodo Status = "Todo"
	// StatusInProgress marks tasks currently being worked on.
	StatusInProgress Status = "InProgress"
	// StatusDone marks completed tasks.
	StatusDone Status = "Done"
)

// Task is a single sales work item. The collection owned by the store is the
// source of truth for all derived computation.
type Task struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Revenue     float64    `json:"revenue" yaml:"revenue"`
	TimeTaken   float64    `json:"timeTaken" yaml:"timeTaken"`
	Priority    Priority   `json:"priority" yaml:"priority"`
	Status      Status     `json:"status" yaml:"status"`
	Notes       string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
}

// ParsePriority parses a priority value leniently. Unknown or empty input
// coerces to PriorityMedium.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow
	case "high":
		return PriorityHigh
	case "medium":
		return PriorityMedium
	default:
		return PriorityMedium
	}
}

// ParseStatus parses a status value leniently. Unknown or empty input
// coerces to StatusTodo.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "")) {
	case "inprogress", "in_progress", "in-progress":
		return StatusInProgress
	case "done", "completed":
		return StatusDone
	case "todo":
		return StatusTodo
	default:
		return StatusTodo
	}
}

// SanitizeRevenue coerces revenue to a non-negative finite number.
// NaN, infinities and negative values all become 0.
func SanitizeRevenue(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ClampTimeTaken coerces timeTaken to a strictly positive number of hours.
// NaN, infinities and values <= 0 become MinTimeTaken. Positive fractional
// values pass through unchanged.
func ClampTimeTaken(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return MinTimeTaken
	}
	return v
}
