package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/pointquest-admin/internal/buildinfo"
	"github.com/dmitrijs2005/pointquest-admin/internal/client/api"
	"github.com/dmitrijs2005/pointquest-admin/internal/client/cli"
	"github.com/dmitrijs2005/pointquest-admin/internal/client/config"
	"github.com/dmitrijs2005/pointquest-admin/internal/client/notify"
	"github.com/dmitrijs2005/pointquest-admin/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/pointquest-admin/internal/client/router"
	"github.com/dmitrijs2005/pointquest-admin/internal/client/session"
	"github.com/dmitrijs2005/pointquest-admin/internal/client/tokenstore"
	"github.com/dmitrijs2005/pointquest-admin/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(os.Stderr, cfg.LogLevel)

	db, err := localstore.Open(ctx, cfg.StateDBPath)
	if err != nil {
		return fmt.Errorf("open state db: %w", err)
	}
	defer db.Close()

	notifier := notify.NewConsole(os.Stdout)

	client, err := api.New(api.Options{
		BaseURL:           cfg.APIBaseURL,
		Timeout:           cfg.RequestTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Notifier:          notifier,
		Logger:            logger.With("component", "api"),
	})
	if err != nil {
		return err
	}

	tokens := tokenstore.New(db, tokenstore.WithLogger(logger.With("component", "tokenstore")))
	sess := session.New(tokens, client,
		session.WithNotifier(notifier),
		session.WithLogger(logger.With("component", "session")),
	)
	client.UseTokenSource(sess)

	app := cli.NewApp(cli.Deps{
		API:      client,
		Session:  sess,
		Guard:    router.NewGuard(sess, logger.With("component", "router")),
		Notifier: notifier,
		Logger:   logger,
		In:       os.Stdin,
		Out:      os.Stdout,
	})
	return app.Run(ctx)
}
