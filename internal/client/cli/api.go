package cli

import (
	"context"
	"io"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
)

// API is the admin API surface used by the console; *api.Client implements
// it.
type API interface {
	Profile(ctx context.Context) (models.AdminProfile, error)

	ListTasks(ctx context.Context, q models.TaskQuery) (models.Page[models.Task], error)
	GetTask(ctx context.Context, taskNo string) (models.Task, error)
	CreateTask(ctx context.Context, p models.TaskPayload) error
	UpdateTask(ctx context.Context, taskNo string, p models.TaskPayload) (models.Task, error)
	DeleteTask(ctx context.Context, taskNo string) error

	ListSubmissions(ctx context.Context, q models.SubmissionQuery) (models.Page[models.Submission], error)
	GetSubmission(ctx context.Context, submissionNo string) (models.SubmissionDetail, error)
	ApproveSubmission(ctx context.Context, submissionNo string, p models.ApproveSubmissionPayload) error
	RejectSubmission(ctx context.Context, submissionNo string, p models.RejectSubmissionPayload) error

	ListRewards(ctx context.Context, q models.RewardQuery) (models.Page[models.Reward], error)
	GetReward(ctx context.Context, rewardNo string) (models.Reward, error)
	CreateReward(ctx context.Context, p models.RewardPayload) (models.Reward, error)
	UpdateReward(ctx context.Context, rewardNo string, p models.RewardPayload) (models.Reward, error)
	DeleteReward(ctx context.Context, rewardNo string) error
	UploadRewardImage(ctx context.Context, rewardNo, filename string, image io.Reader) (string, error)
	ListRewardCategories(ctx context.Context) ([]models.RewardCategory, error)
	AddRewardCategory(ctx context.Context, name string) error
	UpdateRewardCategory(ctx context.Context, categoryID int64, name string) error
	DeleteRewardCategory(ctx context.Context, categoryID int64) error

	ListPools(ctx context.Context, q models.PoolQuery) (models.Page[models.Pool], error)
	GetPool(ctx context.Context, poolNo string) (models.Pool, error)
	CreatePool(ctx context.Context, p models.PoolPayload) (models.Pool, error)
	UpdatePool(ctx context.Context, poolNo string, p models.PoolPayload) (models.Pool, error)
	DeletePool(ctx context.Context, poolNo string) error

	ListOrders(ctx context.Context, q models.OrderQuery) (models.Page[models.OrderSummary], error)
	GetOrder(ctx context.Context, orderNo string) (models.OrderDetail, error)
	UpdateOrderStatus(ctx context.Context, orderNo string, status models.OrderStatus) (models.OrderDetail, error)

	SendMessage(ctx context.Context, p models.MessagePayload) error
}
