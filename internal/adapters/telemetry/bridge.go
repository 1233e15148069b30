// Package telemetry wires OpenTelemetry spans to the application logger.
package telemetry

import (
	"context"
	"fmt"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/pace/internal/core/ports"
)

// Bridge is a SpanProcessor that reports span durations through the logger.
// It keeps phase timing visible without an external collector.
type Bridge struct {
	logger ports.Logger
}

// NewBridge creates a Bridge forwarding to the given logger.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart implements sdktrace.SpanProcessor.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the finished span's name and duration.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	elapsed := s.EndTime().Sub(s.StartTime())
	b.logger.Info(fmt.Sprintf("%s took %s", s.Name(), elapsed.Round(time.Microsecond)))
}

// Shutdown implements sdktrace.SpanProcessor.
func (b *Bridge) Shutdown(_ context.Context) error { return nil }

// ForceFlush implements sdktrace.SpanProcessor.
func (b *Bridge) ForceFlush(_ context.Context) error { return nil }
