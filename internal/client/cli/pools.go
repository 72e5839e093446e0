package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
)

func (a *App) cmdPools(ctx context.Context, args []string) error {
	opts, err := parseListOptions(args, "status")
	if err != nil {
		return err
	}
	page, err := a.api.ListPools(ctx, models.PoolQuery{
		PageQuery: opts.page,
		Status:    models.Switch(opts.upper("status")),
	})
	if err != nil {
		return err
	}

	t := newTable(a.out, "POOL NO", "TITLE", "COST", "ITEMS", "STATUS", "WINDOW")
	for _, p := range page.Records {
		t.row(p.PoolNo, p.Title, p.PointCost, len(p.Items), p.Status, orDash(window(p.StartAt, p.EndAt)))
	}
	t.flush()
	pageFooter(a.out, page)
	return nil
}

func window(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	return orDash(start) + " .. " + orDash(end)
}

func (a *App) cmdPool(ctx context.Context, args []string) error {
	p, err := a.api.GetPool(ctx, args[0])
	if err != nil {
		return err
	}
	field(a.out, "Pool no", p.PoolNo)
	field(a.out, "Title", p.Title)
	field(a.out, "Cost", p.PointCost)
	field(a.out, "Status", p.Status)
	field(a.out, "Type", p.Type)
	field(a.out, "Window", window(p.StartAt, p.EndAt))
	field(a.out, "Description", p.Description)
	if len(p.Items) > 0 {
		t := newTable(a.out, "#", "REWARD", "WEIGHT")
		for _, it := range p.Items {
			t.row(it.SortNo, userLabel(it.RewardID, it.RewardName), it.Weight)
		}
		t.flush()
	}
	return nil
}

func (a *App) cmdPoolNew(ctx context.Context, _ []string) error {
	p, err := a.promptPool(models.Pool{Status: models.SwitchOn})
	if err != nil {
		return err
	}
	if _, err := a.api.CreatePool(ctx, p); err != nil {
		return err
	}
	a.notifier.Success(ctx, "pool created")
	return nil
}

func (a *App) cmdPoolEdit(ctx context.Context, args []string) error {
	current, err := a.api.GetPool(ctx, args[0])
	if err != nil {
		return err
	}
	p, err := a.promptPool(current)
	if err != nil {
		return err
	}
	if _, err := a.api.UpdatePool(ctx, args[0], p); err != nil {
		return err
	}
	a.notifier.Success(ctx, "pool saved")
	return nil
}

func (a *App) promptPool(pool models.Pool) (models.PoolPayload, error) {
	var (
		p   models.PoolPayload
		err error
	)
	if p.Title, err = a.promptDefault("Title", pool.Title); err != nil {
		return p, err
	}
	if p.Title == "" {
		return p, fmt.Errorf("title is required")
	}
	if p.Description, err = a.promptDefault("Description", pool.Description); err != nil {
		return p, err
	}
	if p.PointCost, err = a.promptInt("Point cost per draw", pool.PointCost); err != nil {
		return p, err
	}
	if p.StartAt, err = a.promptDefault("Starts at", pool.StartAt); err != nil {
		return p, err
	}
	if p.EndAt, err = a.promptDefault("Ends at", pool.EndAt); err != nil {
		return p, err
	}
	status, err := a.promptDefault("Status (ON/OFF)", string(pool.Status))
	if err != nil {
		return p, err
	}
	p.Status = models.Switch(strings.ToUpper(status))
	p.Type = pool.Type

	current := make([]string, 0, len(pool.Items))
	for _, it := range pool.Items {
		current = append(current, fmt.Sprintf("%d:%g", it.RewardID, it.Weight))
	}
	items, err := a.promptDefault("Items (rewardId:weight, ...)", strings.Join(current, ","))
	if err != nil {
		return p, err
	}
	if p.Items, err = parsePoolItems(items); err != nil {
		return p, err
	}
	return p, nil
}

// parsePoolItems reads "rewardId:weight" pairs; the position sets sortNo.
func parsePoolItems(s string) ([]models.PoolItemPayload, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	items := make([]models.PoolItemPayload, 0, len(fields))
	for i, f := range fields {
		idPart, weightPart, ok := strings.Cut(f, ":")
		if !ok {
			return nil, fmt.Errorf("item %q: want rewardId:weight", f)
		}
		id, err := strconv.ParseInt(idPart, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("item %q: invalid reward id", f)
		}
		weight, err := strconv.ParseFloat(weightPart, 64)
		if err != nil || weight <= 0 {
			return nil, fmt.Errorf("item %q: weight must be a positive number", f)
		}
		items = append(items, models.PoolItemPayload{RewardID: id, SortNo: i + 1, Weight: weight})
	}
	return items, nil
}

func (a *App) cmdPoolDelete(ctx context.Context, args []string) error {
	ok, err := a.confirm(fmt.Sprintf("Delete pool %s?", args[0]))
	if err != nil || !ok {
		return err
	}
	if err := a.api.DeletePool(ctx, args[0]); err != nil {
		return err
	}
	a.notifier.Success(ctx, "pool deleted")
	return nil
}
