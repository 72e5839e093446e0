package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
)

func (a *App) cmdTasks(ctx context.Context, args []string) error {
	opts, err := parseListOptions(args, "status")
	if err != nil {
		return err
	}
	page, err := a.api.ListTasks(ctx, models.TaskQuery{
		PageQuery: opts.page,
		Status:    models.TaskStatus(opts.upper("status")),
	})
	if err != nil {
		return err
	}

	t := newTable(a.out, "TASK NO", "TITLE", "POINTS", "DEADLINE", "STATUS")
	for _, task := range page.Records {
		t.row(task.TaskNo, task.Title, task.PointReward, orDash(task.Deadline), task.Status)
	}
	t.flush()
	pageFooter(a.out, page)
	return nil
}

func (a *App) cmdTask(ctx context.Context, args []string) error {
	task, err := a.api.GetTask(ctx, args[0])
	if err != nil {
		return err
	}
	printTask(a, task)
	return nil
}

func printTask(a *App, task models.Task) {
	field(a.out, "Task no", task.TaskNo)
	field(a.out, "Title", task.Title)
	field(a.out, "Points", task.PointReward)
	field(a.out, "Deadline", task.Deadline)
	field(a.out, "Status", task.Status)
	field(a.out, "Created", task.CreatedAt)
	field(a.out, "Description", task.Description)
}

func (a *App) cmdTaskNew(ctx context.Context, _ []string) error {
	p, err := a.promptTask(models.Task{Status: models.TaskOpen})
	if err != nil {
		return err
	}
	if err := a.api.CreateTask(ctx, p); err != nil {
		return err
	}
	a.notifier.Success(ctx, "task created")
	return nil
}

func (a *App) cmdTaskEdit(ctx context.Context, args []string) error {
	current, err := a.api.GetTask(ctx, args[0])
	if err != nil {
		return err
	}
	p, err := a.promptTask(current)
	if err != nil {
		return err
	}
	updated, err := a.api.UpdateTask(ctx, args[0], p)
	if err != nil {
		return err
	}
	a.notifier.Success(ctx, "task saved")
	if updated.TaskNo != "" {
		printTask(a, updated)
	}
	return nil
}

func (a *App) promptTask(t models.Task) (models.TaskPayload, error) {
	var (
		p   models.TaskPayload
		err error
	)
	if p.Title, err = a.promptDefault("Title", t.Title); err != nil {
		return p, err
	}
	if p.Title == "" {
		return p, fmt.Errorf("title is required")
	}
	if p.Description, err = a.promptDefault("Description", t.Description); err != nil {
		return p, err
	}
	if p.PointReward, err = a.promptInt("Points", t.PointReward); err != nil {
		return p, err
	}
	if p.PointReward <= 0 {
		return p, fmt.Errorf("points must be positive")
	}
	if p.Deadline, err = a.promptDefault("Deadline (YYYY-MM-DD HH:MM:SS)", t.Deadline); err != nil {
		return p, err
	}
	status, err := a.promptDefault("Status (OPEN/CLOSED)", string(t.Status))
	if err != nil {
		return p, err
	}
	p.Status = models.TaskStatus(status)
	return p, nil
}

func (a *App) cmdTaskDelete(ctx context.Context, args []string) error {
	ok, err := a.confirm(fmt.Sprintf("Delete task %s?", args[0]))
	if err != nil || !ok {
		return err
	}
	if err := a.api.DeleteTask(ctx, args[0]); err != nil {
		return err
	}
	a.notifier.Success(ctx, "task deleted")
	return nil
}
