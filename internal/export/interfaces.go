package export

import (
	"github.com/CanadianSniper/DayZ-Texture-Exporter/internal/model"
)

// Exporter defines the interface for the export service.
type Exporter interface {
	SetUpdateCallback(func(*model.ExportTask))
	SetLogCallback(func(line string))

	// Validate checks a job for the conditions that block starting it:
	// unset required fields and missing or unreadable input files.
	Validate(job model.Job) error

	// StartExport validates the job and runs it in the background. Only one
	// job can be in flight at a time.
	StartExport(job model.Job) (*model.ExportTask, error)

	GetTask(taskID string) (*model.ExportTask, bool)
}
