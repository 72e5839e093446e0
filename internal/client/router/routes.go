package router

import "github.com/dmitrijs2005/pointquest-admin/internal/client/models"

const (
	RootPath  = "/"
	HomePath  = "/admin"
	LoginPath = "/admin/login"

	// RedirectParam carries the originally requested path on the login route.
	RedirectParam = "redirect"
)

// Route names.
const (
	RouteLogin            = "login"
	RouteDashboard        = "dashboard"
	RouteTasks            = "tasks"
	RouteTaskNew          = "task-new"
	RouteTaskEdit         = "task-edit"
	RouteSubmissions      = "submissions"
	RouteSubmissionDetail = "submission-detail"
	RouteRewards          = "rewards"
	RouteRewardNew        = "reward-new"
	RouteRewardEdit       = "reward-edit"
	RoutePools            = "pools"
	RoutePoolNew          = "pool-new"
	RoutePoolEdit         = "pool-edit"
	RouteMessageSend      = "message-send"
	RouteOrders           = "orders"
)

// Route is one navigable screen of the console. Pattern uses chi syntax.
// Public routes need no session; the others need a session whose role
// holds Capability.
type Route struct {
	Name       string
	Pattern    string
	Title      string
	Public     bool
	Capability models.Capability
}

// Routes returns the console's route table.
func Routes() []Route {
	return []Route{
		{Name: RouteLogin, Pattern: LoginPath, Title: "Sign in", Public: true},
		{Name: RouteDashboard, Pattern: HomePath, Title: "Dashboard", Capability: models.CapabilityConsole},

		{Name: RouteTasks, Pattern: "/admin/tasks", Title: "Tasks", Capability: models.CapabilityTasks},
		{Name: RouteTaskNew, Pattern: "/admin/tasks/new", Title: "New task", Capability: models.CapabilityTasks},
		{Name: RouteTaskEdit, Pattern: "/admin/tasks/{taskNo}/edit", Title: "Edit task", Capability: models.CapabilityTasks},
		{Name: RouteSubmissions, Pattern: "/admin/submissions", Title: "Submissions", Capability: models.CapabilityTasks},
		{Name: RouteSubmissionDetail, Pattern: "/admin/submissions/{id}", Title: "Submission", Capability: models.CapabilityTasks},

		{Name: RouteRewards, Pattern: "/admin/rewards", Title: "Rewards", Capability: models.CapabilityRewards},
		{Name: RouteRewardNew, Pattern: "/admin/rewards/new", Title: "New reward", Capability: models.CapabilityRewards},
		{Name: RouteRewardEdit, Pattern: "/admin/rewards/{id}/edit", Title: "Edit reward", Capability: models.CapabilityRewards},

		{Name: RoutePools, Pattern: "/admin/pools", Title: "Prize pools", Capability: models.CapabilityPools},
		{Name: RoutePoolNew, Pattern: "/admin/pools/new", Title: "New pool", Capability: models.CapabilityPools},
		{Name: RoutePoolEdit, Pattern: "/admin/pools/{id}/edit", Title: "Edit pool", Capability: models.CapabilityPools},

		{Name: RouteMessageSend, Pattern: "/admin/messages/send", Title: "Send message", Capability: models.CapabilityMessaging},
		{Name: RouteOrders, Pattern: "/admin/orders", Title: "Orders", Capability: models.CapabilityOrders},
	}
}
