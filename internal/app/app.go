// Package app implements the application layer for pace.
package app

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.trai.ch/pace/internal/adapters/detector"
	"go.trai.ch/pace/internal/adapters/report"
	"go.trai.ch/pace/internal/adapters/source"
	"go.trai.ch/pace/internal/adapters/telemetry"
	"go.trai.ch/pace/internal/core/domain"
	"go.trai.ch/pace/internal/core/ports"
	"go.trai.ch/pace/internal/engine/store"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	generator    ports.TaskGenerator
	logger       ports.Logger

	out           io.Writer
	sourceFactory func(domain.Settings) ports.TaskSource
	renderer      ports.Renderer
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, gen ports.TaskGenerator, log ports.Logger) *App {
	return &App{
		configLoader:  loader,
		generator:     gen,
		logger:        log,
		out:           os.Stdout,
		sourceFactory: source.ForSettings,
	}
}

// WithOutput redirects report output. Used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithSourceFactory overrides how the task source is built from settings.
// Used for testing.
func (a *App) WithSourceFactory(f func(domain.Settings) ports.TaskSource) *App {
	a.sourceFactory = f
	return a
}

// WithRenderer overrides the report renderer. Used for testing.
func (a *App) WithRenderer(r ports.Renderer) *App {
	a.renderer = r
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// SourceURL overrides the configured HTTP source.
	SourceURL string
	// Sample forces synthetic demo data regardless of configured sources.
	Sample bool
	// Top overrides the ranked table row limit.
	Top int
	// OutputMode is one of auto, color, plain or ci.
	OutputMode string
}

// Run performs the one-time bulk load and renders the computed report.
//
// The load runs asynchronously; when the surrounding context is torn down
// before it settles, the store is closed and the load's result is discarded
// rather than applied.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	settings, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if opts.SourceURL != "" {
		settings.SourceURL = opts.SourceURL
		settings.SourceFile = ""
	}
	if opts.Sample {
		settings.SourceURL = ""
		settings.SourceFile = ""
	}
	if opts.Top > 0 {
		settings.TopN = opts.Top
	}

	shutdown := telemetry.Setup(a.logger)
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()
	tracer := otel.Tracer("pace")

	renderer := a.renderer
	if renderer == nil {
		mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)
		renderer = report.NewRenderer(a.out, mode, settings.TopN)
	}

	st := store.New(settings.Grades)
	src := a.sourceFactory(settings)

	loadDone := make(chan error, 1)
	go func() {
		loadCtx, span := tracer.Start(ctx, "load")
		err := st.Load(loadCtx, src, a.generator, settings.SampleCount)
		span.End()
		loadDone <- err
	}()

	select {
	case <-ctx.Done():
		// Abandon on teardown: the in-flight load settles as a discard.
		st.Close()
		return ctx.Err()
	case loadErr := <-loadDone:
		if loadErr != nil {
			// Ingestion failure is informational; the report still renders
			// over whatever the collection already held.
			a.logger.Error(loadErr)
		}
	}

	_, span := tracer.Start(ctx, "render")
	defer span.End()
	if err := renderer.Render(st.Report()); err != nil {
		return zerr.Wrap(err, "failed to render report")
	}
	return nil
}
