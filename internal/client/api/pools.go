package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
)

func (c *Client) ListPools(ctx context.Context, q models.PoolQuery) (models.Page[models.Pool], error) {
	v := pageValues(q.PageQuery)
	setIf(v, "status", string(q.Status))
	return call[models.Page[models.Pool]](ctx, c, Request{Method: http.MethodGet, Path: "/admin/pools", Query: v})
}

func (c *Client) GetPool(ctx context.Context, poolNo string) (models.Pool, error) {
	return call[models.Pool](ctx, c, Request{Method: http.MethodGet, Path: "/admin/pools/" + escape(poolNo)})
}

func (c *Client) CreatePool(ctx context.Context, p models.PoolPayload) (models.Pool, error) {
	return call[models.Pool](ctx, c, Request{Method: http.MethodPost, Path: "/admin/pools", JSON: p})
}

func (c *Client) UpdatePool(ctx context.Context, poolNo string, p models.PoolPayload) (models.Pool, error) {
	return call[models.Pool](ctx, c, Request{Method: http.MethodPut, Path: "/admin/pools/" + escape(poolNo), JSON: p})
}

func (c *Client) DeletePool(ctx context.Context, poolNo string) error {
	return c.exec(ctx, Request{Method: http.MethodDelete, Path: "/admin/pools/" + escape(poolNo)})
}
