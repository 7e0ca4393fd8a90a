package models

// Task and job states reported by the scheduler.
const (
	StateRunahead       = "runahead"
	StateWaiting        = "waiting"
	StateHeld           = "held"
	StateQueued         = "queued"
	StateReady          = "ready"
	StateExpired        = "expired"
	StateSubmitted      = "submitted"
	StateSubmitFailed   = "submit-failed"
	StateSubmitRetrying = "submit-retrying"
	StateRunning        = "running"
	StateSucceeded      = "succeeded"
	StateFailed         = "failed"
	StateRetrying       = "retrying"
)

// Workflow statuses.
const (
	StatusRunning = "running"
	StatusHeld    = "held"
	StatusStopped = "stopped"
)

// TaskStates lists every task state in severity order, most severe first.
// Used for summary rollups such as "workflow state totals".
var TaskStates = []string{
	StateSubmitFailed,
	StateFailed,
	StateExpired,
	StateSubmitRetrying,
	StateRetrying,
	StateRunning,
	StateSubmitted,
	StateReady,
	StateQueued,
	StateWaiting,
	StateHeld,
	StateRunahead,
	StateSucceeded,
}
