package domain

// Metrics is the aggregate performance snapshot over the whole collection.
type Metrics struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalTimeTaken    float64 `json:"totalTimeTaken"`
	TimeEfficiencyPct float64 `json:"timeEfficiencyPct"`
	RevenuePerHour    float64 `json:"revenuePerHour"`
	AverageROI        float64 `json:"averageROI"`
	PerformanceGrade  Grade   `json:"performanceGrade"`
}

// ZeroMetrics is the fixed sentinel returned for an empty collection:
// every numeric field zero and the baseline grade.
func ZeroMetrics() Metrics {
	return Metrics{PerformanceGrade: GradeNeedsImprovement}
}

// ComputeMetrics aggregates the collection into a single snapshot using the
// given grade table. It is pure: identical input yields bit-identical output.
//
// AverageROI is the arithmetic mean of per-task ROI (mean of ratios), which
// is a distinct statistic from RevenuePerHour (ratio of sums); the two only
// coincide when every task took the same time.
func ComputeMetrics(tasks []Task, grades GradeTable) Metrics {
	if len(tasks) == 0 {
		// Explicit short-circuit, not a division-by-zero guard.
		return ZeroMetrics()
	}

	var totalRevenue, totalTime, doneTime, roiSum float64
	for _, t := range tasks {
		totalRevenue += t.Revenue
		totalTime += t.TimeTaken
		roiSum += t.Revenue / t.TimeTaken
		if t.Status == StatusDone {
			doneTime += t.TimeTaken
		}
	}

	averageROI := roiSum / float64(len(tasks))

	return Metrics{
		TotalRevenue:      totalRevenue,
		TotalTimeTaken:    totalTime,
		TimeEfficiencyPct: doneTime / totalTime * 100,
		RevenuePerHour:    totalRevenue / totalTime,
		AverageROI:        averageROI,
		PerformanceGrade:  grades.GradeFor(averageROI),
	}
}
