package store

import (
	"context"

	"go.trai.ch/pace/internal/core/domain"
	"go.trai.ch/pace/internal/core/ports"
	"go.trai.ch/zerr"
)

// Load performs the one-time bulk load of the collection from the external
// source. It is asynchronous with respect to teardown: the result is
// discarded when the store was closed before the load settled, regardless
// of success or failure.
//
// The fallback asymmetry is deliberate and preserved exactly:
//   - reachable source, empty result  -> the generator supplies a non-empty
//     synthetic set
//   - unreachable source or malformed -> the failure is recorded as a
//     user-visible message, the collection stays at its prior value and the
//     generator is NOT invoked
func (s *Store) Load(ctx context.Context, source ports.TaskSource, gen ports.TaskGenerator, sampleCount int) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrStoreClosed
	}
	if s.loading {
		s.mu.Unlock()
		return domain.ErrLoadInProgress
	}
	s.loading = true
	s.mu.Unlock()

	records, err := source.Fetch(ctx)
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.loading = false
		if s.closed {
			return domain.ErrStoreClosed
		}
		s.loadErr = err.Error()
		return zerr.Wrap(err, "bulk load failed")
	}

	tasks := domain.NormalizeAll(records, s.now())
	if len(tasks) == 0 {
		if sampleCount <= 0 {
			sampleCount = domain.DefaultSampleCount
		}
		tasks = gen.Generate(sampleCount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if s.closed {
		// The consuming context is gone; skip applying the result.
		return domain.ErrStoreClosed
	}
	s.tasks = tasks
	s.loadErr = ""
	s.rev++
	return nil
}

// Close tears the store down. Any in-flight load settles as a discard.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Loading reports whether a bulk load is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LoadError returns the recorded ingestion failure message, empty when the
// last load succeeded or none ran yet.
func (s *Store) LoadError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// Report assembles the computed output exposed outward from the core: the
// aggregate metrics, the ROI-ranked derived view and the ingestion error
// message, if any.
func (s *Store) Report() ports.Report {
	return ports.Report{
		Metrics:   s.Metrics(),
		Ranked:    s.Ranked(),
		LoadError: s.LoadError(),
	}
}
