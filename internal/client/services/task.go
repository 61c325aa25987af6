package services

import (
	"context"
	"fmt"

	"github.com/xshsama/learntrack/internal/client/models"
)

// TaskService manages tasks and their kind-specific operations.
type TaskService struct {
	caller Caller
}

func NewTaskService(caller Caller) *TaskService {
	return &TaskService{caller: caller}
}

// List returns all tasks; pass goalID > 0 to filter by goal.
func (t *TaskService) List(ctx context.Context, goalID int64) ([]models.Task, error) {
	path := "/api/tasks"
	if goalID > 0 {
		path = fmt.Sprintf("/api/tasks?goalId=%d", goalID)
	}
	var tasks []models.Task
	if err := t.caller.Get(ctx, path, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (t *TaskService) Get(ctx context.Context, id int64) (*models.Task, error) {
	var task models.Task
	if err := t.caller.Get(ctx, fmt.Sprintf("/api/tasks/%d", id), &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (t *TaskService) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	var created models.Task
	if err := t.caller.Post(ctx, "/api/tasks", task, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CompleteStep marks one step of a step-based task as done and returns the
// task with its recomputed completion rate.
func (t *TaskService) CompleteStep(ctx context.Context, taskID, stepID int64) (*models.Task, error) {
	var task models.Task
	path := fmt.Sprintf("/api/tasks/%d/steps/%d/complete", taskID, stepID)
	if err := t.caller.Put(ctx, path, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Checkin records a habit check-in and returns the updated streak info.
func (t *TaskService) Checkin(ctx context.Context, taskID int64) (*models.HabitDetail, error) {
	var habit models.HabitDetail
	if err := t.caller.Post(ctx, fmt.Sprintf("/api/tasks/%d/checkin", taskID), nil, &habit); err != nil {
		return nil, err
	}
	return &habit, nil
}

func (t *TaskService) Delete(ctx context.Context, id int64) error {
	return t.caller.Delete(ctx, fmt.Sprintf("/api/tasks/%d", id))
}
