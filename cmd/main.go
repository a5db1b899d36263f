package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/food-dispatch/internal/app"
	"github.com/SergeyBogomolovv/food-dispatch/internal/buffer"
	"github.com/SergeyBogomolovv/food-dispatch/internal/channel"
	"github.com/SergeyBogomolovv/food-dispatch/internal/config"
	"github.com/SergeyBogomolovv/food-dispatch/internal/events"
	"github.com/SergeyBogomolovv/food-dispatch/internal/fee"
	"github.com/SergeyBogomolovv/food-dispatch/internal/geocode"
	"github.com/SergeyBogomolovv/food-dispatch/internal/handler"
	"github.com/SergeyBogomolovv/food-dispatch/internal/postgres"
	"github.com/SergeyBogomolovv/food-dispatch/internal/repo"
	"github.com/SergeyBogomolovv/food-dispatch/internal/service"
	"github.com/SergeyBogomolovv/food-dispatch/internal/ws"
	"github.com/SergeyBogomolovv/food-dispatch/pkg/cache"
	"github.com/SergeyBogomolovv/food-dispatch/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Food Dispatch API
// @version         1.0
// @description     Жизненный цикл заказа, распределение курьеров, позиция, чат и звонки
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	rdb, err := channel.NewClient(ctx, conf.Redis)
	panicIfErr("failed to connect to redis", err)
	defer rdb.Close()
	logger.Info("redis connected")

	queue, err := buffer.Open(conf.Buffer.Path)
	panicIfErr("failed to open order buffer", err)
	defer queue.Close()

	provider, err := geocode.NewProvider(conf.Geocoder.APIKey)
	panicIfErr("failed to create geocoder", err)
	if provider == nil {
		logger.Warn("geocoder api key is empty, addresses will fall back to city centers")
	}

	store := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.Staleness)
	live := channel.NewStore(rdb, conf.Channel.LocationInterval*4, conf.Channel.CallSignalTTL)
	geocoder := geocode.New(logger, provider, geocode.Options{
		Timeout:     conf.Geocoder.Timeout,
		RateLimit:   conf.Geocoder.RateLimit,
		CityCenters: conf.Geocoder.CityCenters,
	})
	publisher := events.NewPublisher(logger, conf.Kafka)
	defer publisher.Close()
	fees := fee.NewCalculator(fee.Config{
		MinFee:        conf.Fee.MinFee,
		RatePerKm:     conf.Fee.RatePerKm,
		EarningsShare: conf.Fee.EarningsShare,
	})
	hub := ws.NewHub(logger, conf.Cors.AllowedOrigins)

	orderService := service.NewOrderService(logger, txManager, store, orderCache, geocoder, queue, publisher, fees)
	dispatchService := service.NewDispatchService(logger, txManager, store, orderCache, live, publisher, fees, conf.Dispatch)
	channelService := service.NewChannelService(logger, txManager, store, orderCache, live, publisher, conf.Channel)

	handler.RegisterMetrics()
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, hub)
	httpHandler := handler.NewHTTPHandler(logger, orderService, dispatchService, channelService, hub)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(
		orderCache,
		buffer.NewReconciler(logger, queue, orderService, conf.Buffer.ReconcileInterval, conf.Buffer.BatchSize),
		service.NewSweeper(logger, dispatchService, conf.Dispatch.AssignmentTimeout, conf.Dispatch.SweepInterval),
	)

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
