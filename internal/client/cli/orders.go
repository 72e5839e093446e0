package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
)

func (a *App) cmdOrders(ctx context.Context, args []string) error {
	opts, err := parseListOptions(args, "status", "user")
	if err != nil {
		return err
	}
	q := models.OrderQuery{PageQuery: opts.page, Status: models.OrderStatus(opts.upper("status"))}
	if u := opts.filters["user"]; u != "" {
		if q.UserID, err = strconv.ParseInt(u, 10, 64); err != nil {
			return fmt.Errorf("user must be a numeric id")
		}
	}

	page, err := a.api.ListOrders(ctx, q)
	if err != nil {
		return err
	}
	t := newTable(a.out, "ORDER NO", "USER", "POINTS", "STATUS", "CREATED")
	for _, o := range page.Records {
		t.row(o.OrderNo, o.UserID, o.TotalPoints, o.Status, o.CreatedAt)
	}
	t.flush()
	pageFooter(a.out, page)
	return nil
}

func (a *App) cmdOrder(ctx context.Context, args []string) error {
	o, err := a.api.GetOrder(ctx, args[0])
	if err != nil {
		return err
	}
	printOrder(a, o)
	return nil
}

func printOrder(a *App, o models.OrderDetail) {
	field(a.out, "Order no", o.OrderNo)
	field(a.out, "User", o.UserID)
	field(a.out, "Points", o.TotalPoints)
	field(a.out, "Status", o.Status)
	field(a.out, "Created", o.CreatedAt)
	field(a.out, "Updated", o.UpdatedAt)
	field(a.out, "Address", o.Address)
	if len(o.Items) > 0 {
		t := newTable(a.out, "REWARD", "QTY", "COST")
		for _, it := range o.Items {
			t.row(it.RewardNo+" "+it.RewardName, it.Quantity, it.PointCost)
		}
		t.flush()
	}
}

var orderStatuses = []models.OrderStatus{
	models.OrderPending, models.OrderShipped, models.OrderCompleted, models.OrderCancelled,
}

func (a *App) cmdOrderStatus(ctx context.Context, args []string) error {
	status := models.OrderStatus(strings.ToUpper(args[1]))
	valid := false
	for _, s := range orderStatuses {
		valid = valid || s == status
	}
	if !valid {
		return fmt.Errorf("unknown order status %q", args[1])
	}

	o, err := a.api.UpdateOrderStatus(ctx, args[0], status)
	if err != nil {
		return err
	}
	a.notifier.Success(ctx, "order status updated")
	if o.OrderNo != "" {
		printOrder(a, o)
	}
	return nil
}
