package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceRequestFailed is returned when the external task source cannot be reached.
	ErrSourceRequestFailed = zerr.New("failed to reach task source")

	// ErrSourceParseFailed is returned when the external task source returns malformed data.
	ErrSourceParseFailed = zerr.New("failed to parse task source response")

	// ErrSourceReadFailed is returned when a file-backed task source cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read task source file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrGradeTableEmpty is returned when a configured grade table has no bands.
	ErrGradeTableEmpty = zerr.New("grade table must have at least one band")

	// ErrGradeTableNotAnchored is returned when the first grade band does not start at 0.
	ErrGradeTableNotAnchored = zerr.New("grade table must start at 0")

	// ErrGradeTableNotMonotonic is returned when grade thresholds are not strictly increasing.
	ErrGradeTableNotMonotonic = zerr.New("grade table thresholds must be strictly increasing")

	// ErrStoreClosed is returned when a bulk load settles after the store was torn down.
	ErrStoreClosed = zerr.New("store is closed")

	// ErrLoadInProgress is returned when a second bulk load is requested while one is running.
	ErrLoadInProgress = zerr.New("a load is already in progress")
)
