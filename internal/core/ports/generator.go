package ports

import "go.trai.ch/pace/internal/core/domain"

// TaskGenerator produces synthetic demo tasks. It backs the ingestion
// fallback: invoked only when the external source succeeds with an empty
// result, never when the source fails.
//
//go:generate mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks
type TaskGenerator interface {
	// Generate returns n valid tasks. Every returned task satisfies the
	// collection invariants without further normalization.
	Generate(n int) []domain.Task
}
