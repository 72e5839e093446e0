package cli

import (
	"context"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/router"
)

type command struct {
	name    string
	aliases []string
	usage   string
	help    string
	minArgs int
	// route returns the console path the command opens before it runs.
	// Commands without a route run without navigation.
	route func(args []string) string
	run   func(a *App, ctx context.Context, args []string) error
}

func static(path string) func([]string) string {
	return func([]string) string { return path }
}

// withID fills the first "%s" of pattern with the escaped first argument.
func withID(pattern string) func([]string) string {
	return func(args []string) string {
		return strings.Replace(pattern, "%s", url.PathEscape(args[0]), 1)
	}
}

func commandTable() []*command {
	return []*command{
		{name: "help", aliases: []string{"?"}, usage: "help", help: "show available commands", run: (*App).cmdHelp},
		{name: "login", usage: "login [username]", help: "sign in", run: (*App).cmdLogin},
		{name: "logout", usage: "logout", help: "sign out and forget the stored session", run: (*App).cmdLogout},
		{name: "whoami", usage: "whoami", help: "show the signed-in administrator", route: static(router.HomePath), run: (*App).cmdWhoami},
		{name: "go", usage: "go <path>", help: "open a console path", minArgs: 1, run: (*App).cmdGo},

		{name: "tasks", usage: "tasks [status=OPEN|CLOSED] [page=N] [size=N]", help: "list tasks",
			route: static("/admin/tasks"), run: (*App).cmdTasks},
		{name: "task", usage: "task <taskNo>", help: "show a task", minArgs: 1,
			route: withID("/admin/tasks/%s/edit"), run: (*App).cmdTask},
		{name: "task-new", usage: "task-new", help: "create a task",
			route: static("/admin/tasks/new"), run: (*App).cmdTaskNew},
		{name: "task-edit", usage: "task-edit <taskNo>", help: "edit a task", minArgs: 1,
			route: withID("/admin/tasks/%s/edit"), run: (*App).cmdTaskEdit},
		{name: "task-delete", usage: "task-delete <taskNo>", help: "delete a task", minArgs: 1,
			route: static("/admin/tasks"), run: (*App).cmdTaskDelete},

		{name: "submissions", usage: "submissions [status=PENDING|APPROVED|REJECTED] [page=N] [size=N]", help: "list submissions",
			route: static("/admin/submissions"), run: (*App).cmdSubmissions},
		{name: "submission", usage: "submission <submissionNo>", help: "show a submission", minArgs: 1,
			route: withID("/admin/submissions/%s"), run: (*App).cmdSubmission},
		{name: "approve", usage: "approve <submissionNo> [points] [comment]", help: "approve a submission", minArgs: 1,
			route: withID("/admin/submissions/%s"), run: (*App).cmdApprove},
		{name: "reject", usage: "reject <submissionNo> <comment>", help: "reject a submission", minArgs: 2,
			route: withID("/admin/submissions/%s"), run: (*App).cmdReject},

		{name: "rewards", usage: "rewards [status=ON|OFF] [keyword=text] [page=N] [size=N]", help: "list rewards",
			route: static("/admin/rewards"), run: (*App).cmdRewards},
		{name: "reward", usage: "reward <rewardNo>", help: "show a reward", minArgs: 1,
			route: withID("/admin/rewards/%s/edit"), run: (*App).cmdReward},
		{name: "reward-new", usage: "reward-new", help: "create a reward",
			route: static("/admin/rewards/new"), run: (*App).cmdRewardNew},
		{name: "reward-edit", usage: "reward-edit <rewardNo>", help: "edit a reward", minArgs: 1,
			route: withID("/admin/rewards/%s/edit"), run: (*App).cmdRewardEdit},
		{name: "reward-delete", usage: "reward-delete <rewardNo>", help: "delete a reward", minArgs: 1,
			route: static("/admin/rewards"), run: (*App).cmdRewardDelete},
		{name: "reward-image", usage: "reward-image <rewardNo> <file>", help: "upload a reward image", minArgs: 2,
			route: withID("/admin/rewards/%s/edit"), run: (*App).cmdRewardImage},
		{name: "categories", usage: "categories", help: "list reward categories",
			route: static("/admin/rewards"), run: (*App).cmdCategories},
		{name: "category-add", usage: "category-add <name>", help: "add a reward category", minArgs: 1,
			route: static("/admin/rewards"), run: (*App).cmdCategoryAdd},
		{name: "category-rename", usage: "category-rename <id> <name>", help: "rename a reward category", minArgs: 2,
			route: static("/admin/rewards"), run: (*App).cmdCategoryRename},
		{name: "category-delete", usage: "category-delete <id>", help: "delete a reward category", minArgs: 1,
			route: static("/admin/rewards"), run: (*App).cmdCategoryDelete},

		{name: "pools", usage: "pools [status=ON|OFF] [page=N] [size=N]", help: "list prize pools",
			route: static("/admin/pools"), run: (*App).cmdPools},
		{name: "pool", usage: "pool <poolNo>", help: "show a prize pool", minArgs: 1,
			route: withID("/admin/pools/%s/edit"), run: (*App).cmdPool},
		{name: "pool-new", usage: "pool-new", help: "create a prize pool",
			route: static("/admin/pools/new"), run: (*App).cmdPoolNew},
		{name: "pool-edit", usage: "pool-edit <poolNo>", help: "edit a prize pool", minArgs: 1,
			route: withID("/admin/pools/%s/edit"), run: (*App).cmdPoolEdit},
		{name: "pool-delete", usage: "pool-delete <poolNo>", help: "delete a prize pool", minArgs: 1,
			route: static("/admin/pools"), run: (*App).cmdPoolDelete},

		{name: "orders", usage: "orders [status=PENDING|SHIPPED|COMPLETED|CANCELLED] [user=ID] [page=N] [size=N]", help: "list orders",
			route: static("/admin/orders"), run: (*App).cmdOrders},
		{name: "order", usage: "order <orderNo>", help: "show an order", minArgs: 1,
			route: static("/admin/orders"), run: (*App).cmdOrder},
		{name: "order-status", usage: "order-status <orderNo> <status>", help: "change an order's status", minArgs: 2,
			route: static("/admin/orders"), run: (*App).cmdOrderStatus},

		{name: "send", usage: "send", help: "send a message to users",
			route: static("/admin/messages/send"), run: (*App).cmdSend},

		{name: "exit", aliases: []string{"quit"}, usage: "exit", help: "leave the console", run: func(*App, context.Context, []string) error {
			return errExit
		}},
	}
}
