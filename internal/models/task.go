package models

// Task statuses and priorities. Status is deliberately an open set: callers
// may write any value and no transition is validated (the board UI drives
// the lifecycle).
const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskReview     = "review"
	TaskQA         = "qa"
	TaskQAPass     = "qa_pass"
	TaskCompleted  = "completed"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a unit of work on a project, optionally assigned to a team member.
type Task struct {
	ID          int64  `json:"id"`
	ProjectID   int64  `json:"projectId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	AssignedTo  int64  `json:"assignedTo,omitempty"`
	CreatedAt   string `json:"createdAt"`
}
