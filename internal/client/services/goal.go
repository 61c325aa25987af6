package services

import (
	"context"
	"fmt"

	"github.com/xshsama/learntrack/internal/client/models"
)

// GoalService manages goals within subjects.
type GoalService struct {
	caller Caller
}

func NewGoalService(caller Caller) *GoalService {
	return &GoalService{caller: caller}
}

// List returns all goals; pass subjectID > 0 to filter by subject.
func (g *GoalService) List(ctx context.Context, subjectID int64) ([]models.Goal, error) {
	path := "/api/goals"
	if subjectID > 0 {
		path = fmt.Sprintf("/api/goals?subjectId=%d", subjectID)
	}
	var goals []models.Goal
	if err := g.caller.Get(ctx, path, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (g *GoalService) Create(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	var created models.Goal
	if err := g.caller.Post(ctx, "/api/goals", goal, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// SetProgress records goal progress as a 0..100 percentage.
func (g *GoalService) SetProgress(ctx context.Context, id int64, progress int) error {
	if progress < 0 || progress > 100 {
		return fmt.Errorf("progress must be within 0..100, got %d", progress)
	}
	req := map[string]int{"progress": progress}
	return g.caller.Put(ctx, fmt.Sprintf("/api/goals/%d/progress", id), req, nil)
}

func (g *GoalService) Delete(ctx context.Context, id int64) error {
	return g.caller.Delete(ctx, fmt.Sprintf("/api/goals/%d", id))
}
