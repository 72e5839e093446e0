package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
)

func (a *App) cmdSend(ctx context.Context, _ []string) error {
	var (
		p   models.MessagePayload
		err error
	)
	if p.Title, err = a.prompt("Title"); err != nil {
		return err
	}
	if p.Content, err = a.promptMultiline("Content"); err != nil {
		return err
	}
	if p.Title == "" || p.Content == "" {
		return fmt.Errorf("title and content are required")
	}

	to, err := a.prompt("Receivers (user ids, or 'all')")
	if err != nil {
		return err
	}
	if strings.EqualFold(to, "all") {
		p.Broadcast = true
	} else {
		if p.ReceiverIDs, err = parseIDs(to); err != nil {
			return err
		}
		if len(p.ReceiverIDs) == 0 {
			return fmt.Errorf("at least one receiver is required")
		}
	}

	if err := a.api.SendMessage(ctx, p); err != nil {
		return err
	}
	a.notifier.Success(ctx, "message sent")
	return nil
}
