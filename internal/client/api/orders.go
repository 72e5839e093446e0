package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
)

func (c *Client) ListOrders(ctx context.Context, q models.OrderQuery) (models.Page[models.OrderSummary], error) {
	v := pageValues(q.PageQuery)
	setIf(v, "status", string(q.Status))
	if q.UserID > 0 {
		v.Set("userId", strconv.FormatInt(q.UserID, 10))
	}
	return call[models.Page[models.OrderSummary]](ctx, c, Request{Method: http.MethodGet, Path: "/admin/orders", Query: v})
}

func (c *Client) GetOrder(ctx context.Context, orderNo string) (models.OrderDetail, error) {
	return call[models.OrderDetail](ctx, c, Request{Method: http.MethodGet, Path: "/admin/orders/" + escape(orderNo)})
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderNo string, status models.OrderStatus) (models.OrderDetail, error) {
	return call[models.OrderDetail](ctx, c, Request{
		Method: http.MethodPut,
		Path:   "/admin/orders/" + escape(orderNo) + "/status",
		JSON:   map[string]models.OrderStatus{"status": status},
	})
}
