package models

import "time"

type TaskType string

const (
	TaskTypeStep     TaskType = "STEP"
	TaskTypeHabit    TaskType = "HABIT"
	TaskTypeCreative TaskType = "CREATIVE"
)

type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "NOT_STARTED"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusArchived   TaskStatus = "ARCHIVED"
)

// Task is a unit of work attached to a goal. Exactly one of the detail
// structs is populated, matching Type.
type Task struct {
	ID             int64           `json:"id"`
	GoalID         int64           `json:"goalId"`
	Title          string          `json:"title"`
	Type           TaskType        `json:"type"`
	Status         TaskStatus      `json:"status"`
	CompletionRate int             `json:"completionRate"` // 0..100
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	Steps          []Step          `json:"steps,omitempty"`
	Habit          *HabitDetail    `json:"habit,omitempty"`
	Creative       *CreativeDetail `json:"creative,omitempty"`
	CreatedAt      time.Time       `json:"createdAt,omitempty"`
	UpdatedAt      time.Time       `json:"updatedAt,omitempty"`
}

// Step is one ordered item of a step-based task.
type Step struct {
	ID    int64  `json:"id"`
	Order int    `json:"order"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// HabitDetail tracks recurring check-ins for a habit task.
type HabitDetail struct {
	Frequency     string     `json:"frequency"` // e.g. "daily", "weekly"
	CurrentStreak int        `json:"currentStreak"`
	LongestStreak int        `json:"longestStreak"`
	LastCheckinAt *time.Time `json:"lastCheckinAt,omitempty"`
	TotalCheckins int        `json:"totalCheckins"`
}

// CreativeDetail tracks phased creative work with versioned notes.
type CreativeDetail struct {
	Phase    string   `json:"phase"` // e.g. "draft", "review", "final"
	Versions []string `json:"versions,omitempty"`
}

// StepProgress returns the percentage of finished steps, or the stored
// completion rate for tasks without steps.
func (t Task) StepProgress() int {
	if len(t.Steps) == 0 {
		return t.CompletionRate
	}
	done := 0
	for _, s := range t.Steps {
		if s.Done {
			done++
		}
	}
	return done * 100 / len(t.Steps)
}

// DueWithin reports whether the task has a due date falling inside
// [now, now+window].
func (t Task) DueWithin(now time.Time, window time.Duration) bool {
	if t.DueDate == nil || t.Status == TaskStatusCompleted || t.Status == TaskStatusArchived {
		return false
	}
	d := *t.DueDate
	return !d.Before(now) && !d.After(now.Add(window))
}
