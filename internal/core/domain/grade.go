package domain

// Grade is the categorical performance label derived from average ROI.
type Grade string

const (
	// GradeNeedsImprovement is the baseline label, also used when no
	// signal is available (empty collection).
	GradeNeedsImprovement Grade = "Needs Improvement"
	// GradeFair indicates moderate return on effort.
	GradeFair Grade = "Fair"
	// GradeGood indicates solid return on effort.
	GradeGood Grade = "Good"
	// GradeExcellent indicates outstanding return on effort.
	GradeExcellent Grade = "Excellent"
)

// GradeBand maps a minimum average ROI to a label. A table is a sequence of
// bands with strictly increasing Min values; the first band must start at 0
// so every finite non-negative input maps to exactly one label.
type GradeBand struct {
	Min   float64 `yaml:"min"`
	Label Grade   `yaml:"label"`
}

// GradeTable is a monotonic non-decreasing threshold table: a higher average
// ROI never yields a lower grade.
type GradeTable []GradeBand

// DefaultGradeTable is the built-in threshold table. The cut points are a
// configuration detail and can be overridden in pace.yaml.
func DefaultGradeTable() GradeTable {
	return GradeTable{
		{Min: 0, Label: GradeNeedsImprovement},
		{Min: 25, Label: GradeFair},
		{Min: 50, Label: GradeGood},
		{Min: 100, Label: GradeExcellent},
	}
}

// Validate checks that the table is non-empty, starts at 0 and has strictly
// increasing thresholds.
func (gt GradeTable) Validate() error {
	if len(gt) == 0 {
		return ErrGradeTableEmpty
	}
	if gt[0].Min != 0 {
		return ErrGradeTableNotAnchored
	}
	for i := 1; i < len(gt); i++ {
		if gt[i].Min <= gt[i-1].Min {
			return ErrGradeTableNotMonotonic
		}
	}
	return nil
}

// GradeFor maps an average ROI to its label by picking the highest band
// whose threshold the value reaches. Inputs below the first threshold fall
// back to the baseline label.
func (gt GradeTable) GradeFor(averageROI float64) Grade {
	grade := GradeNeedsImprovement
	for _, band := range gt {
		if averageROI >= band.Min {
			grade = band.Label
		}
	}
	return grade
}
