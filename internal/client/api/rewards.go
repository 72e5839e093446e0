package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
)

func (c *Client) ListRewards(ctx context.Context, q models.RewardQuery) (models.Page[models.Reward], error) {
	v := pageValues(q.PageQuery)
	setIf(v, "status", string(q.Status))
	setIf(v, "keyword", q.Keyword)
	return call[models.Page[models.Reward]](ctx, c, Request{Method: http.MethodGet, Path: "/admin/rewards", Query: v})
}

func (c *Client) GetReward(ctx context.Context, rewardNo string) (models.Reward, error) {
	return call[models.Reward](ctx, c, Request{Method: http.MethodGet, Path: "/admin/rewards/" + escape(rewardNo)})
}

func (c *Client) CreateReward(ctx context.Context, p models.RewardPayload) (models.Reward, error) {
	return call[models.Reward](ctx, c, Request{Method: http.MethodPost, Path: "/admin/rewards", JSON: p})
}

func (c *Client) UpdateReward(ctx context.Context, rewardNo string, p models.RewardPayload) (models.Reward, error) {
	return call[models.Reward](ctx, c, Request{Method: http.MethodPut, Path: "/admin/rewards/" + escape(rewardNo), JSON: p})
}

func (c *Client) DeleteReward(ctx context.Context, rewardNo string) error {
	return c.exec(ctx, Request{Method: http.MethodDelete, Path: "/admin/rewards/" + escape(rewardNo)})
}

func (c *Client) ListRewardCategories(ctx context.Context) ([]models.RewardCategory, error) {
	return call[[]models.RewardCategory](ctx, c, Request{Method: http.MethodGet, Path: "/admin/rewards/all-category"})
}

// AddRewardCategory sends the bare category name as the request body.
func (c *Client) AddRewardCategory(ctx context.Context, name string) error {
	return c.exec(ctx, Request{
		Method:      http.MethodPost,
		Path:        "/admin/rewards/category",
		Raw:         []byte(name),
		ContentType: "text/plain; charset=utf-8",
	})
}

func (c *Client) UpdateRewardCategory(ctx context.Context, categoryID int64, name string) error {
	return c.exec(ctx, Request{
		Method:      http.MethodPut,
		Path:        "/admin/rewards/category/" + strconv.FormatInt(categoryID, 10),
		Raw:         []byte(name),
		ContentType: "text/plain; charset=utf-8",
	})
}

func (c *Client) DeleteRewardCategory(ctx context.Context, categoryID int64) error {
	return c.exec(ctx, Request{
		Method: http.MethodDelete,
		Path:   "/admin/rewards/category/" + strconv.FormatInt(categoryID, 10),
	})
}

// UploadRewardImage posts the image as the multipart field "file" and
// returns the stored image URL.
func (c *Client) UploadRewardImage(ctx context.Context, rewardNo, filename string, image io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}

	return call[string](ctx, c, Request{
		Method:      http.MethodPost,
		Path:        "/admin/rewards/" + escape(rewardNo) + "/image",
		Raw:         buf.Bytes(),
		ContentType: mw.FormDataContentType(),
	})
}
