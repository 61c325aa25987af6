package models

import "time"

type GoalStatus string

const (
	GoalStatusOngoing   GoalStatus = "ONGOING"
	GoalStatusCompleted GoalStatus = "COMPLETED"
	GoalStatusExpired   GoalStatus = "EXPIRED"
)

type GoalPriority string

const (
	GoalPriorityHigh   GoalPriority = "HIGH"
	GoalPriorityMedium GoalPriority = "MEDIUM"
	GoalPriorityLow    GoalPriority = "LOW"
)

// Goal is a target within a subject, tracked by percent progress and an
// optional deadline.
type Goal struct {
	ID        int64        `json:"id"`
	SubjectID int64        `json:"subjectId"`
	Title     string       `json:"title"`
	Status    GoalStatus   `json:"status"`
	Priority  GoalPriority `json:"priority,omitempty"`
	Progress  int          `json:"progress"` // 0..100
	Deadline  *time.Time   `json:"deadline,omitempty"`
	CreatedAt time.Time    `json:"createdAt,omitempty"`
	UpdatedAt time.Time    `json:"updatedAt,omitempty"`
}

// Completed reports whether the goal is finished, either by status or by
// reaching full progress.
func (g Goal) Completed() bool {
	return g.Status == GoalStatusCompleted || g.Progress >= 100
}
