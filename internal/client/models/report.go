package models

import "time"

// WeeklyReport is the server-computed summary for one week of activity.
type WeeklyReport struct {
	PeriodStart    time.Time `json:"periodStart"`
	PeriodEnd      time.Time `json:"periodEnd"`
	TasksCompleted int       `json:"tasksCompleted"`
	GoalsCompleted int       `json:"goalsCompleted"`
	Checkins       int       `json:"checkins"`
	StudyHours     float64   `json:"studyHours"`
}
