package config

import "go.trai.ch/pace/internal/core/domain"

// Pacefile represents the structure of the pace.yaml configuration file.
type Pacefile struct {
	Version string     `yaml:"version"`
	Source  SourceDTO  `yaml:"source"`
	Report  ReportDTO  `yaml:"report"`
	Grades  []GradeDTO `yaml:"grades"`
}

// SourceDTO configures where task records are ingested from.
type SourceDTO struct {
	URL    string `yaml:"url"`
	File   string `yaml:"file"`
	Sample int    `yaml:"sample"`
}

// ReportDTO configures report rendering.
type ReportDTO struct {
	Top int `yaml:"top"`
}

// GradeDTO is one ROI threshold band.
type GradeDTO struct {
	Min   float64 `yaml:"min"`
	Label string  `yaml:"label"`
}

// toSettings converts the parsed file into resolved settings, filling
// defaults for everything left unset.
func (p Pacefile) toSettings() domain.Settings {
	settings := domain.DefaultSettings()
	settings.SourceURL = p.Source.URL
	settings.SourceFile = p.Source.File
	if p.Source.Sample > 0 {
		settings.SampleCount = p.Source.Sample
	}
	settings.TopN = p.Report.Top

	if len(p.Grades) > 0 {
		table := make(domain.GradeTable, 0, len(p.Grades))
		for _, g := range p.Grades {
			table = append(table, domain.GradeBand{Min: g.Min, Label: domain.Grade(g.Label)})
		}
		settings.Grades = table
	}
	return settings
}
