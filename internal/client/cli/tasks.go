package cli

import (
	"context"
	"fmt"
	"log"
	"strconv"
)

func (a *App) Goals(ctx context.Context) error {
	goals, err := a.goals.List(ctx, 0)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, g := range goals {
		fmt.Printf("[%d] %s (%s, %d%%)\n", g.ID, g.Title, g.Status, g.Progress)
	}
	return nil
}

func (a *App) Tasks(ctx context.Context) error {
	tasks, err := a.tasks.List(ctx, 0)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, t := range tasks {
		fmt.Printf("[%d] %s (%s, %s, %d%%)\n", t.ID, t.Title, t.Type, t.Status, t.StepProgress())
	}
	return nil
}

// Done marks one step of a step-based task as complete:
//
//	done <task-id> <step-id>
func (a *App) Done(ctx context.Context, args []string) error {
	if len(args) != 2 {
		printlnFn("Usage: done <task-id> <step-id>")
		return nil
	}
	taskID, err1 := strconv.ParseInt(args[0], 10, 64)
	stepID, err2 := strconv.ParseInt(args[1], 10, 64)
	if err1 != nil || err2 != nil {
		printlnFn("Usage: done <task-id> <step-id>")
		return nil
	}

	task, err := a.tasks.CompleteStep(ctx, taskID, stepID)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Printf("Task %d is now at %d%%\n", task.ID, task.StepProgress())
	return nil
}

// Checkin records a habit check-in:
//
//	checkin <task-id>
func (a *App) Checkin(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: checkin <task-id>")
		return nil
	}
	taskID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Usage: checkin <task-id>")
		return nil
	}

	habit, err := a.tasks.Checkin(ctx, taskID)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Printf("Checked in. Current streak: %d\n", habit.CurrentStreak)
	return nil
}
