package model

import (
	"fmt"
	"time"
)

// MapResult records the outcome of one output map within a run. It exists
// only for the duration of one run's display.
type MapResult struct {
	Type      OutputType
	PNGPath   string // intermediate file, set once written
	Converted bool   // external converter finished with exit code 0
	LastError string // last error message if any
}

// Failed reports whether the map could not be fully exported.
func (mr MapResult) Failed() bool {
	return mr.LastError != ""
}

// ExportTask represents a single conversion run. One task is created per
// Convert click and discarded when the next run starts.
type ExportTask struct {
	ID         string
	Job        Job
	Status     JobStatus
	Progress   float64 // 0.0 to 1.0
	Percent    int     // 0 to 100
	Results    []MapResult
	LastError  string // last job-level error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// SucceededCount returns the number of fully exported maps.
func (t *ExportTask) SucceededCount() int {
	count := 0
	for _, result := range t.Results {
		if !result.Failed() {
			count++
		}
	}
	return count
}

// FailedCount returns the number of maps that failed at any stage.
func (t *ExportTask) FailedCount() int {
	count := 0
	for _, result := range t.Results {
		if result.Failed() {
			count++
		}
	}
	return count
}

// Summary returns a one-line result summary for the log view.
func (t *ExportTask) Summary() string {
	return fmt.Sprintf("%d map(s) exported, %d failed", t.SucceededCount(), t.FailedCount())
}
