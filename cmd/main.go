package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/rentique/rental-service/docs"
	"github.com/rentique/rental-service/internal/app"
	"github.com/rentique/rental-service/internal/config"
	"github.com/rentique/rental-service/internal/handler"
	"github.com/rentique/rental-service/internal/postgres"
	"github.com/rentique/rental-service/internal/repo"
	"github.com/rentique/rental-service/internal/service"
	"github.com/rentique/rental-service/pkg/cache"
	"github.com/rentique/rental-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Rental Service API
// @version         1.0
// @description     Dress-rental marketplace: order lifecycle, shop approval, damage reports and notifications.
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	store := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	notifier := service.NewNotifier(logger, store, store, conf.BackofficeURL)
	orderService := service.NewOrderService(logger, txManager, store, store, notifier, orderCache, conf.Billing)
	shopService := service.NewShopService(logger, store, notifier)
	reportService := service.NewReportService(logger, txManager, store, store, orderService)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService, shopService, reportService, notifier)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
