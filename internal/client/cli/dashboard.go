package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/xshsama/learntrack/internal/client/dashboard"
)

// dueSoonWindow bounds the "due soon" list on the dashboard.
const dueSoonWindow = 7 * 24 * time.Hour

// Dashboard fetches subjects, goals, and tasks and prints the derived
// overview.
func (a *App) Dashboard(ctx context.Context) error {
	subjects, err := a.subjects.List(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	goals, err := a.goals.List(ctx, 0)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	tasks, err := a.tasks.List(ctx, 0)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	ov := dashboard.Build(subjects, goals, tasks, time.Now(), dueSoonWindow)

	fmt.Printf("Tasks: %d total, %d%% complete\n", ov.TotalTasks, ov.CompletionRate)
	for _, s := range ov.Subjects {
		fmt.Printf("  %s: %d/%d goals done, avg progress %d%%\n",
			s.Subject.Title, s.GoalsCompleted, s.GoalCount, s.AvgProgress)
	}
	if len(ov.DueSoon) > 0 {
		printlnFn("Due soon:")
		for _, t := range ov.DueSoon {
			fmt.Printf("  [%d] %s (due %s)\n", t.ID, t.Title, t.DueDate.Format("2006-01-02"))
		}
	}
	return nil
}

// Report prints the server-computed weekly summary.
func (a *App) Report(ctx context.Context) error {
	r, err := a.reports.Weekly(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Week %s to %s\n", r.PeriodStart.Format("2006-01-02"), r.PeriodEnd.Format("2006-01-02"))
	fmt.Printf("  tasks completed: %d\n", r.TasksCompleted)
	fmt.Printf("  goals completed: %d\n", r.GoalsCompleted)
	fmt.Printf("  check-ins:       %d\n", r.Checkins)
	fmt.Printf("  study hours:     %.1f\n", r.StudyHours)
	return nil
}
