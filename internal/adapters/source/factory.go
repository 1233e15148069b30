package source

import (
	"context"

	"go.trai.ch/pace/internal/core/domain"
	"go.trai.ch/pace/internal/core/ports"
)

// noneSource is used when no external source is configured. It reports an
// empty successful fetch, which routes the load through the synthetic
// fallback generator.
type noneSource struct{}

func (noneSource) Fetch(_ context.Context) ([]domain.TaskRecord, error) {
	return []domain.TaskRecord{}, nil
}

// ForSettings picks the task source matching the resolved configuration:
// HTTP endpoint first, then local file, otherwise the empty source that
// triggers synthetic demo data.
func ForSettings(settings domain.Settings) ports.TaskSource {
	switch {
	case settings.SourceURL != "":
		return NewHTTPSource(settings.SourceURL)
	case settings.SourceFile != "":
		return NewFileSource(settings.SourceFile)
	default:
		return noneSource{}
	}
}
