package domain

// DefaultSampleCount is the number of synthetic tasks generated when the
// external source returns an empty result or no source is configured.
const DefaultSampleCount = 8

// Settings is the resolved application configuration.
type Settings struct {
	// SourceURL is the HTTP endpoint serving task records. Empty when a
	// file source or synthetic data is used instead.
	SourceURL string

	// SourceFile is a local YAML or JSON file of task records.
	SourceFile string

	// SampleCount is how many synthetic tasks the fallback generator
	// produces.
	SampleCount int

	// TopN limits the ranked task table in reports. Zero means no limit.
	TopN int

	// Grades is the ROI threshold table used for the performance grade.
	Grades GradeTable
}

// DefaultSettings returns the configuration used when no pace.yaml is found:
// synthetic demo data with the built-in grade table.
func DefaultSettings() Settings {
	return Settings{
		SampleCount: DefaultSampleCount,
		Grades:      DefaultGradeTable(),
	}
}
