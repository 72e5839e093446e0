package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
)

func (a *App) cmdRewards(ctx context.Context, args []string) error {
	opts, err := parseListOptions(args, "status", "keyword")
	if err != nil {
		return err
	}
	page, err := a.api.ListRewards(ctx, models.RewardQuery{
		PageQuery: opts.page,
		Status:    models.Switch(opts.upper("status")),
		Keyword:   opts.filters["keyword"],
	})
	if err != nil {
		return err
	}

	t := newTable(a.out, "REWARD NO", "NAME", "COST", "STOCK", "STATUS")
	for _, r := range page.Records {
		t.row(r.RewardNo, r.Name, r.PointCost, stockString(r.Stock), r.Status)
	}
	t.flush()
	pageFooter(a.out, page)
	return nil
}

func (a *App) cmdReward(ctx context.Context, args []string) error {
	r, err := a.api.GetReward(ctx, args[0])
	if err != nil {
		return err
	}
	printReward(a, r)
	return nil
}

func printReward(a *App, r models.Reward) {
	field(a.out, "Reward no", r.RewardNo)
	field(a.out, "Name", r.Name)
	field(a.out, "Cost", r.PointCost)
	field(a.out, "Stock", stockString(r.Stock))
	field(a.out, "Status", r.Status)
	field(a.out, "Image", r.ImageURL)
	names := make([]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		names = append(names, c.Name)
	}
	field(a.out, "Categories", strings.Join(names, ", "))
	field(a.out, "Description", r.Description)
}

func (a *App) cmdRewardNew(ctx context.Context, _ []string) error {
	p, err := a.promptReward(models.Reward{Status: models.SwitchOn})
	if err != nil {
		return err
	}
	r, err := a.api.CreateReward(ctx, p)
	if err != nil {
		return err
	}
	a.notifier.Success(ctx, "reward created")
	if r.RewardNo != "" {
		printReward(a, r)
	}
	return nil
}

func (a *App) cmdRewardEdit(ctx context.Context, args []string) error {
	current, err := a.api.GetReward(ctx, args[0])
	if err != nil {
		return err
	}
	p, err := a.promptReward(current)
	if err != nil {
		return err
	}
	if _, err := a.api.UpdateReward(ctx, args[0], p); err != nil {
		return err
	}
	a.notifier.Success(ctx, "reward saved")
	return nil
}

func (a *App) promptReward(r models.Reward) (models.RewardPayload, error) {
	var (
		p   models.RewardPayload
		err error
	)
	if p.Name, err = a.promptDefault("Name", r.Name); err != nil {
		return p, err
	}
	if p.Name == "" {
		return p, fmt.Errorf("name is required")
	}
	if p.Description, err = a.promptDefault("Description", r.Description); err != nil {
		return p, err
	}
	if p.PointCost, err = a.promptInt("Point cost", r.PointCost); err != nil {
		return p, err
	}
	if p.PointCost <= 0 {
		return p, fmt.Errorf("point cost must be positive")
	}

	stock, err := a.promptDefault("Stock (empty for unlimited)", optionalInt(r.Stock))
	if err != nil {
		return p, err
	}
	if stock != "" {
		n, err := strconv.ParseInt(stock, 10, 64)
		if err != nil || n < 0 {
			return p, fmt.Errorf("stock must be a non-negative number")
		}
		p.Stock = &n
	}

	status, err := a.promptDefault("Status (ON/OFF)", string(r.Status))
	if err != nil {
		return p, err
	}
	p.Status = models.Switch(strings.ToUpper(status))

	current := make([]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		current = append(current, strconv.FormatInt(c.ID, 10))
	}
	ids, err := a.promptDefault("Category ids", strings.Join(current, ","))
	if err != nil {
		return p, err
	}
	if p.CategoryIDs, err = parseIDs(ids); err != nil {
		return p, err
	}
	return p, nil
}

func optionalInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func (a *App) cmdRewardDelete(ctx context.Context, args []string) error {
	ok, err := a.confirm(fmt.Sprintf("Delete reward %s?", args[0]))
	if err != nil || !ok {
		return err
	}
	if err := a.api.DeleteReward(ctx, args[0]); err != nil {
		return err
	}
	a.notifier.Success(ctx, "reward deleted")
	return nil
}

func (a *App) cmdRewardImage(ctx context.Context, args []string) error {
	f, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	u, err := a.api.UploadRewardImage(ctx, args[0], filepath.Base(args[1]), f)
	if err != nil {
		return err
	}
	a.notifier.Success(ctx, "image uploaded")
	field(a.out, "Image", u)
	return nil
}

func (a *App) cmdCategories(ctx context.Context, _ []string) error {
	cats, err := a.api.ListRewardCategories(ctx)
	if err != nil {
		return err
	}
	t := newTable(a.out, "ID", "NAME")
	for _, c := range cats {
		t.row(c.ID, c.Name)
	}
	t.flush()
	return nil
}

func (a *App) cmdCategoryAdd(ctx context.Context, args []string) error {
	if err := a.api.AddRewardCategory(ctx, strings.Join(args, " ")); err != nil {
		return err
	}
	a.notifier.Success(ctx, "category added")
	return nil
}

func (a *App) cmdCategoryRename(ctx context.Context, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid category id %q", args[0])
	}
	if err := a.api.UpdateRewardCategory(ctx, id, strings.Join(args[1:], " ")); err != nil {
		return err
	}
	a.notifier.Success(ctx, "category renamed")
	return nil
}

func (a *App) cmdCategoryDelete(ctx context.Context, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid category id %q", args[0])
	}
	ok, err := a.confirm(fmt.Sprintf("Delete category %d?", id))
	if err != nil || !ok {
		return err
	}
	if err := a.api.DeleteRewardCategory(ctx, id); err != nil {
		return err
	}
	a.notifier.Success(ctx, "category deleted")
	return nil
}
