package ports

import "go.trai.ch/pace/internal/core/domain"

// Report is the computed output handed to a renderer: the aggregate
// snapshot plus the ROI-ordered task view. These are the only values the
// core exposes outward.
type Report struct {
	Metrics domain.Metrics
	Ranked  []domain.DerivedTask

	// LoadError carries the ingestion failure message, if any. It is
	// informational and does not block rendering.
	LoadError string
}

// Renderer presents a computed report.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render writes the report to the renderer's output.
	Render(report Report) error
}
