package model

// JobStatus represents the status of an export job
type JobStatus string

const (
	// JobStatusPending means the job is created but not started
	JobStatusPending JobStatus = "Pending"

	// JobStatusStarting means the job is in the process of starting
	JobStatusStarting JobStatus = "Starting"

	// JobStatusProcessing means intermediate images are being produced
	JobStatusProcessing JobStatus = "Processing"

	// JobStatusConverting means the external converter is running
	JobStatusConverting JobStatus = "Converting"

	// JobStatusCompleted means every enabled map was exported successfully
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusPartial means the job finished but one or more maps failed
	JobStatusPartial JobStatus = "Partial"

	// JobStatusError means the job failed before producing any output
	JobStatusError JobStatus = "Error"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is in an active state
func (js JobStatus) IsActive() bool {
	return js == JobStatusStarting || js == JobStatusProcessing || js == JobStatusConverting
}

// IsFinished returns true if the job is in a finished state
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusPartial || js == JobStatusError
}
