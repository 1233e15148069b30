// Package ports defines the interfaces between the core and its adapters.
package ports

import (
	"context"

	"go.trai.ch/pace/internal/core/domain"
)

// TaskSource delivers the one-time bulk load of task records from an
// external, untrusted source.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type TaskSource interface {
	// Fetch returns the raw record sequence. A reachable source with no
	// records returns an empty slice and a nil error; that is a success,
	// not a failure.
	Fetch(ctx context.Context) ([]domain.TaskRecord, error)
}
