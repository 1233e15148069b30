// Package report renders the computed metrics and ranked task view.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/pace/internal/adapters/detector"
	"go.trai.ch/pace/internal/core/domain"
	"go.trai.ch/pace/internal/core/ports"
	uioutput "go.trai.ch/pace/internal/ui/output"
	"go.trai.ch/pace/internal/ui/style"
)

// Renderer implements ports.Renderer, writing a performance summary and the
// ROI-ranked task table to a writer.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	// top limits the ranked table. Zero means no limit.
	top int
}

// NewRenderer creates a Renderer for the given mode. A nil writer defaults
// to stdout.
func NewRenderer(w io.Writer, mode detector.OutputMode, top int) *Renderer {
	if w == nil {
		w = os.Stdout
	}

	var out *termenv.Output
	if mode == detector.ModeColor {
		out = uioutput.New(w)
	} else {
		out = uioutput.NewPlain(w)
	}

	return &Renderer{w: w, output: out, top: top}
}

// Render writes the report.
func (r *Renderer) Render(report ports.Report) error {
	if report.LoadError != "" {
		warn := r.output.String(style.Warning + " load failed: " + report.LoadError).
			Foreground(termenv.RGBColor(string(style.Yellow)))
		if _, err := fmt.Fprintln(r.w, warn.String()); err != nil {
			return err
		}
	}

	if err := r.renderSummary(report.Metrics); err != nil {
		return err
	}
	return r.renderRanked(report.Ranked)
}

func (r *Renderer) renderSummary(m domain.Metrics) error {
	header := r.output.String("Performance summary").Bold()
	lines := []string{
		header.String(),
		fmt.Sprintf("  Total revenue    %12.2f", m.TotalRevenue),
		fmt.Sprintf("  Total time (h)   %12.2f", m.TotalTimeTaken),
		fmt.Sprintf("  Revenue / hour   %12.2f", m.RevenuePerHour),
		fmt.Sprintf("  Average ROI      %12.2f", m.AverageROI),
		fmt.Sprintf("  Efficiency       %11.1f%%", m.TimeEfficiencyPct),
		fmt.Sprintf("  Grade            %s", r.gradeLabel(m.PerformanceGrade)),
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderRanked(ranked []domain.DerivedTask) error {
	if len(ranked) == 0 {
		_, err := fmt.Fprintln(r.w, "\nNo tasks.")
		return err
	}

	if _, err := fmt.Fprintln(r.w, "\nTasks by ROI"); err != nil {
		return err
	}

	limit := len(ranked)
	if r.top > 0 && r.top < limit {
		limit = r.top
	}

	for i, d := range ranked[:limit] {
		line := fmt.Sprintf("  %2d. %s %-40s %8.2f ROI  %8.2f rev  %5.1fh",
			i+1, r.statusIcon(d.Status), truncate(d.Title, 40), d.ROI, d.Revenue, d.TimeTaken)
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}

	if limit < len(ranked) {
		if _, err := fmt.Fprintf(r.w, "  … and %d more\n", len(ranked)-limit); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) gradeLabel(g domain.Grade) string {
	var color termenv.Color
	switch g {
	case domain.GradeExcellent, domain.GradeGood:
		color = termenv.RGBColor(string(style.Green))
	case domain.GradeFair:
		color = termenv.RGBColor(string(style.Yellow))
	default:
		color = termenv.RGBColor(string(style.Red))
	}
	return r.output.String(string(g)).Foreground(color).String()
}

func (r *Renderer) statusIcon(s domain.Status) string {
	switch s {
	case domain.StatusDone:
		return r.output.String(style.Check).Foreground(termenv.RGBColor(string(style.Green))).String()
	case domain.StatusInProgress:
		return r.output.String(style.Dot).Foreground(termenv.RGBColor(string(style.Yellow))).String()
	default:
		return r.output.String(style.Circle).Foreground(termenv.RGBColor(string(style.Slate))).String()
	}
}

// truncate shortens s to at most n runes, never splitting a multi-byte rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
