package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/calmliming/menuflow/internal/config"
	"github.com/calmliming/menuflow/internal/logging"
	"github.com/calmliming/menuflow/internal/mongodb"
	"github.com/calmliming/menuflow/internal/notify"
	"github.com/calmliming/menuflow/internal/orders"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logging.Init(cfg.LogLevel, "worker")

	ctx := context.Background()
	mc, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		slog.Error("connect mongodb", "error", err)
		os.Exit(1)
	}

	sender, err := notify.NewBotSender(cfg.Telegram.Token)
	if err != nil {
		slog.Error("init telegram", "error", err)
		os.Exit(1)
	}

	p := NewProcessor(
		orders.NewStore(mc.Database()),
		notify.NewKitchenNotifier(sender, cfg.Telegram.ChatID),
	)

	// If RUN_LOCAL=true, simulate a single SQS event for local testing.
	if cfg.RunLocal {
		body := os.Getenv("LOCAL_SQS_BODY")
		if body == "" {
			slog.Error("LOCAL_SQS_BODY is required when RUN_LOCAL=true")
			os.Exit(1)
		}
		event := events.SQSEvent{
			Records: []events.SQSMessage{{MessageId: "local-1", Body: body}},
		}
		err := p.Handle(ctx, event)
		if cerr := mc.Close(ctx); cerr != nil {
			slog.Error("mongodb disconnect", "error", cerr)
		}
		if err != nil {
			slog.Error("local handler error", "error", err)
			os.Exit(1)
		}
		return
	}

	lambda.Start(p.Handle)
}
