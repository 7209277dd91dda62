package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"github.com/calmliming/menuflow/internal/aws"
	"github.com/calmliming/menuflow/internal/cache"
	"github.com/calmliming/menuflow/internal/config"
	"github.com/calmliming/menuflow/internal/handlers"
	"github.com/calmliming/menuflow/internal/logging"
	"github.com/calmliming/menuflow/internal/menu"
	"github.com/calmliming/menuflow/internal/mongodb"
	"github.com/calmliming/menuflow/internal/orders"
	"github.com/calmliming/menuflow/internal/posts"
	"github.com/calmliming/menuflow/internal/uploads"
)

const shutdownTimeout = 10 * time.Second

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), handlers.RequestID(), handlers.AccessLog())

	handlers.RegisterRoutes(r, cfg)

	return r
}

// orderObservers returns the optional SQS publisher and CloudWatch metrics.
func orderObservers(ctx context.Context, cfg *config.Config) []orders.Observer {
	if cfg.AWS.OrdersQueueURL == "" && cfg.AWS.MetricsNamespace == "" {
		return nil
	}

	clients, err := aws.NewAWSClients(ctx, cfg.AWS.Region, cfg.AWS.EndpointOverride)
	if err != nil {
		slog.Warn("aws clients unavailable, order events disabled", "error", err)
		return nil
	}

	var observers []orders.Observer
	if cfg.AWS.OrdersQueueURL != "" {
		observers = append(observers, aws.NewPublisher(clients.SQS, cfg.AWS.OrdersQueueURL))
	}
	if cfg.AWS.MetricsNamespace != "" {
		observers = append(observers, aws.NewMetrics(clients.CloudWatch, cfg.AWS.MetricsNamespace))
	}
	return observers
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logging.Init(cfg.LogLevel, "api")

	ctx := context.Background()
	mc, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		slog.Error("connect mongodb", "error", err)
		os.Exit(1)
	}
	if err := mongodb.EnsureIndexes(ctx, mc.Database()); err != nil {
		slog.Warn("ensure indexes", "error", err)
	}

	var menuCache cache.Cache
	if cfg.Cache.Addr != "" {
		menuCache = cache.NewRedisCache(cfg.Cache.Addr, "menuflow")
	}

	menuStore := menu.NewStore(mc.Database(), menuCache, cfg.Cache.MenuTTL)
	orderSvc := orders.NewService(menuStore, orders.NewStore(mc.Database()), orderObservers(ctx, cfg)...)

	r := setupRouter(handlers.HandlerConfig{
		Menu:    menuStore,
		Orders:  orderSvc,
		Posts:   posts.NewStore(mc.Database()),
		Uploads: uploads.NewSaver(cfg.Uploads.Dir, cfg.Uploads.URLPrefix),
		DB:      mc,
	})

	// if environment variable RUN_LOCAL is set to "true", run local HTTP server for development.
	if cfg.RunLocal {
		runLocal(r, cfg.Port, mc)
		return
	}

	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}

func runLocal(r *gin.Engine, port string, mc *mongodb.Client) {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		slog.Info("running local server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("local server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown", "error", err)
	}
	if err := mc.Close(ctx); err != nil {
		slog.Error("mongodb disconnect", "error", err)
	}
	slog.Info("server stopped")
}
