package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xshsama/learntrack/internal/client/models"
)

func TestBuild(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tomorrow := now.Add(24 * time.Hour)
	nextWeek := now.Add(6 * 24 * time.Hour)

	subjects := []models.Subject{
		{ID: 1, Title: "Go"},
		{ID: 2, Title: "Math"},
	}
	goals := []models.Goal{
		{ID: 10, SubjectID: 1, Progress: 100, Status: models.GoalStatusCompleted},
		{ID: 11, SubjectID: 1, Progress: 40, Status: models.GoalStatusOngoing},
		{ID: 12, SubjectID: 2, Progress: 10, Status: models.GoalStatusOngoing},
	}
	tasks := []models.Task{
		{ID: 100, GoalID: 10, Type: models.TaskTypeStep, Status: models.TaskStatusCompleted},
		{ID: 101, GoalID: 11, Type: models.TaskTypeStep, Status: models.TaskStatusInProgress, DueDate: &nextWeek},
		{ID: 102, GoalID: 11, Type: models.TaskTypeHabit, Status: models.TaskStatusInProgress, DueDate: &tomorrow},
		{ID: 103, GoalID: 12, Type: models.TaskTypeCreative, Status: models.TaskStatusNotStarted},
	}

	ov := Build(subjects, goals, tasks, now, 7*24*time.Hour)

	assert.Equal(t, 4, ov.TotalTasks)
	assert.Equal(t, 25, ov.CompletionRate)
	assert.Equal(t, 2, ov.TasksByStatus[models.TaskStatusInProgress])
	assert.Equal(t, 1, ov.TasksByKind[models.TaskTypeHabit])

	// due-soon ordered by due date
	require.Len(t, ov.DueSoon, 2)
	assert.Equal(t, int64(102), ov.DueSoon[0].ID)
	assert.Equal(t, int64(101), ov.DueSoon[1].ID)

	require.Len(t, ov.Subjects, 2)
	goSum := ov.Subjects[0]
	assert.Equal(t, 2, goSum.GoalCount)
	assert.Equal(t, 1, goSum.GoalsCompleted)
	assert.Equal(t, 70, goSum.AvgProgress)

	mathSum := ov.Subjects[1]
	assert.Equal(t, 10, mathSum.AvgProgress)
	assert.Zero(t, mathSum.GoalsCompleted)
}

func TestBuild_Empty(t *testing.T) {
	ov := Build(nil, nil, nil, time.Now(), time.Hour)
	assert.Zero(t, ov.TotalTasks)
	assert.Zero(t, ov.CompletionRate)
	assert.Empty(t, ov.DueSoon)
	assert.Empty(t, ov.Subjects)
}
