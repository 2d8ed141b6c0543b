package model

// TaskStatus represents the status of an export task
type TaskStatus string

const (
	// TaskStatusPending means the task is registered but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusExporting means rasterizing, encoding or delivery is in progress
	TaskStatusExporting TaskStatus = "Exporting"

	// TaskStatusCompleted means the file was delivered
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the export failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusExporting
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}
