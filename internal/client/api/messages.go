package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
)

// SendMessage delivers a message to the listed receivers, or to every user
// when Broadcast is set.
func (c *Client) SendMessage(ctx context.Context, p models.MessagePayload) error {
	return c.exec(ctx, Request{Method: http.MethodPost, Path: "/admin/messages/send", JSON: p})
}
