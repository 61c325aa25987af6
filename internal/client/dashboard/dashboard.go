// Package dashboard derives the overview view-model from subjects, goals,
// and tasks. These are the client-side aggregate computations the dashboard
// screen renders; everything here is pure and side-effect free.
package dashboard

import (
	"sort"
	"time"

	"github.com/xshsama/learntrack/internal/client/models"
)

// SubjectSummary is the per-subject rollup shown on the dashboard.
type SubjectSummary struct {
	Subject        models.Subject
	GoalCount      int
	GoalsCompleted int
	AvgProgress    int // mean goal progress, 0..100
}

// Overview is the merged dashboard view-model.
type Overview struct {
	TotalTasks     int
	TasksByStatus  map[models.TaskStatus]int
	TasksByKind    map[models.TaskType]int
	CompletionRate int // completed tasks / total tasks, 0..100
	DueSoon        []models.Task
	Subjects       []SubjectSummary
}

// Build merges the three resource lists into an Overview. DueSoon contains
// open tasks due within window of now, ordered by due date.
func Build(subjects []models.Subject, goals []models.Goal, tasks []models.Task, now time.Time, window time.Duration) Overview {
	ov := Overview{
		TotalTasks:    len(tasks),
		TasksByStatus: make(map[models.TaskStatus]int),
		TasksByKind:   make(map[models.TaskType]int),
	}

	completed := 0
	for _, t := range tasks {
		ov.TasksByStatus[t.Status]++
		ov.TasksByKind[t.Type]++
		if t.Status == models.TaskStatusCompleted {
			completed++
		}
		if t.DueWithin(now, window) {
			ov.DueSoon = append(ov.DueSoon, t)
		}
	}
	if len(tasks) > 0 {
		ov.CompletionRate = completed * 100 / len(tasks)
	}

	sort.Slice(ov.DueSoon, func(i, j int) bool {
		return ov.DueSoon[i].DueDate.Before(*ov.DueSoon[j].DueDate)
	})

	goalsBySubject := make(map[int64][]models.Goal)
	for _, g := range goals {
		goalsBySubject[g.SubjectID] = append(goalsBySubject[g.SubjectID], g)
	}

	for _, s := range subjects {
		sum := SubjectSummary{Subject: s}
		total := 0
		for _, g := range goalsBySubject[s.ID] {
			sum.GoalCount++
			total += g.Progress
			if g.Completed() {
				sum.GoalsCompleted++
			}
		}
		if sum.GoalCount > 0 {
			sum.AvgProgress = total / sum.GoalCount
		}
		ov.Subjects = append(ov.Subjects, sum)
	}

	return ov
}
