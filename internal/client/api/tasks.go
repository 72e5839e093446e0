package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
)

func (c *Client) ListTasks(ctx context.Context, q models.TaskQuery) (models.Page[models.Task], error) {
	v := pageValues(q.PageQuery)
	setIf(v, "status", string(q.Status))
	return call[models.Page[models.Task]](ctx, c, Request{Method: http.MethodGet, Path: "/admin/tasks", Query: v})
}

func (c *Client) GetTask(ctx context.Context, taskNo string) (models.Task, error) {
	return call[models.Task](ctx, c, Request{Method: http.MethodGet, Path: "/admin/tasks/" + escape(taskNo)})
}

func (c *Client) CreateTask(ctx context.Context, p models.TaskPayload) error {
	return c.exec(ctx, Request{Method: http.MethodPost, Path: "/admin/tasks", JSON: p})
}

func (c *Client) UpdateTask(ctx context.Context, taskNo string, p models.TaskPayload) (models.Task, error) {
	return call[models.Task](ctx, c, Request{Method: http.MethodPut, Path: "/admin/tasks/" + escape(taskNo), JSON: p})
}

func (c *Client) DeleteTask(ctx context.Context, taskNo string) error {
	return c.exec(ctx, Request{Method: http.MethodDelete, Path: "/admin/tasks/" + escape(taskNo)})
}
