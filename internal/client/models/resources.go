package models

type TaskStatus string

const (
	TaskOpen   TaskStatus = "OPEN"
	TaskClosed TaskStatus = "CLOSED"
)

type Task struct {
	TaskNo      string     `json:"taskNo"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	PointReward int64      `json:"pointReward"`
	Deadline    string     `json:"deadline,omitempty"`
	Status      TaskStatus `json:"status"`
	CreatedAt   string     `json:"createdAt,omitempty"`
}

type TaskQuery struct {
	PageQuery
	Status TaskStatus
}

type TaskPayload struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	PointReward int64      `json:"pointReward"`
	Deadline    string     `json:"deadline,omitempty"`
	Status      TaskStatus `json:"status,omitempty"`
}

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "PENDING"
	SubmissionApproved SubmissionStatus = "APPROVED"
	SubmissionRejected SubmissionStatus = "REJECTED"
)

type Submission struct {
	SubmissionNo string           `json:"submissionNo"`
	TaskNo       string           `json:"taskNo"`
	TaskTitle    string           `json:"taskTitle,omitempty"`
	UserID       int64            `json:"userId"`
	Username     string           `json:"username,omitempty"`
	Status       SubmissionStatus `json:"status"`
	SubmittedAt  string           `json:"submittedAt,omitempty"`
}

type SubmissionDetail struct {
	Submission
	EvidenceURL   string `json:"evidenceUrl,omitempty"`
	Content       string `json:"content,omitempty"`
	Comment       string `json:"comment,omitempty"`
	PointsAwarded *int64 `json:"pointsAwarded,omitempty"`
	ReviewedAt    string `json:"reviewedAt,omitempty"`
}

type SubmissionQuery struct {
	PageQuery
	Status SubmissionStatus
}

type ApproveSubmissionPayload struct {
	PointsAwarded *int64 `json:"pointsAwarded,omitempty"`
	Comment       string `json:"comment,omitempty"`
}

type RejectSubmissionPayload struct {
	Comment string `json:"comment"`
}

// Switch is the ON/OFF publication status shared by rewards and pools.
type Switch string

const (
	SwitchOn  Switch = "ON"
	SwitchOff Switch = "OFF"
)

type RewardCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Reward struct {
	RewardNo    string           `json:"rewardNo"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	PointCost   int64            `json:"pointCost"`
	Status      Switch           `json:"status"`
	Stock       *int64           `json:"stock,omitempty"`
	ImageURL    string           `json:"imageUrl,omitempty"`
	Categories  []RewardCategory `json:"categories,omitempty"`
}

type RewardQuery struct {
	PageQuery
	Status  Switch
	Keyword string
}

type RewardPayload struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	PointCost   int64   `json:"pointCost"`
	Status      Switch  `json:"status,omitempty"`
	Stock       *int64  `json:"stock,omitempty"`
	CategoryIDs []int64 `json:"categoryIds,omitempty"`
}

type PoolItem struct {
	RewardNo   string  `json:"rewardNo,omitempty"`
	RewardID   int64   `json:"rewardId"`
	RewardName string  `json:"rewardName,omitempty"`
	SortNo     int     `json:"sortNo"`
	Weight     float64 `json:"weight"`
}

type Pool struct {
	PoolNo      string     `json:"poolNo"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	PointCost   int64      `json:"pointCost"`
	Status      Switch     `json:"status"`
	Type        string     `json:"type,omitempty"`
	StartAt     string     `json:"startAt,omitempty"`
	EndAt       string     `json:"endAt,omitempty"`
	Items       []PoolItem `json:"items,omitempty"`
}

type PoolQuery struct {
	PageQuery
	Status Switch
}

type PoolItemPayload struct {
	RewardID int64   `json:"rewardId"`
	SortNo   int     `json:"sortNo,omitempty"`
	Weight   float64 `json:"weight"`
}

type PoolPayload struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	PointCost   int64             `json:"pointCost"`
	StartAt     string            `json:"startAt,omitempty"`
	EndAt       string            `json:"endAt,omitempty"`
	Status      Switch            `json:"status,omitempty"`
	Type        string            `json:"type,omitempty"`
	Items       []PoolItemPayload `json:"items,omitempty"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type OrderSummary struct {
	OrderNo     string      `json:"orderNo"`
	UserID      int64       `json:"userId"`
	TotalPoints int64       `json:"totalPoints"`
	Status      OrderStatus `json:"status"`
	CreatedAt   string      `json:"createdAt"`
}

type OrderLine struct {
	RewardNo   string `json:"rewardNo"`
	RewardName string `json:"rewardName"`
	Quantity   int    `json:"quantity"`
	PointCost  int64  `json:"pointCost"`
}

type OrderDetail struct {
	OrderSummary
	Items     []OrderLine `json:"items,omitempty"`
	Address   string      `json:"address,omitempty"`
	UpdatedAt string      `json:"updatedAt,omitempty"`
}

type OrderQuery struct {
	PageQuery
	UserID int64
	Status OrderStatus
}

type MessagePayload struct {
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	ReceiverIDs []int64 `json:"receiverIds,omitempty"`
	Broadcast   bool    `json:"broadcast,omitempty"`
}
