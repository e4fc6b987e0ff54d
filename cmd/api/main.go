package main

import (
	"context"
	"log"
	"time"

	"outfitapi/config"
	"outfitapi/controllers"
	"outfitapi/dbhelper"
	"outfitapi/services"
	"outfitapi/stylist"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %s", err)
	}
	logger := services.NewLogger(cfg.Env)
	defer logger.Sync()

	err = sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Env,
		Release:          "outfitapi@1.0.0",
		TracesSampleRate: 1.0,
	})
	if err != nil {
		logger.Fatal("sentry.Init", zap.Error(err))
	}
	defer sentry.Recover()
	defer sentry.Flush(2 * time.Second)

	db := dbhelper.SetupDB(cfg.DB)
	store := services.NewGormClosetStore(db)

	awsService := &services.AWSService{
		AccountID:       cfg.R2.AccountID,
		AccessKeyID:     cfg.R2.AccessKeyID,
		AccessKeySecret: cfg.R2.AccessKeySecret,
		Logger:          logger,
	}
	if err := awsService.InitPresignClient(context.Background()); err != nil {
		logger.Fatal("failed to initialize R2 client", zap.Error(err))
	}
	urlCache, err := services.NewURLCacheService(awsService, cfg.R2.BucketName, logger)
	if err != nil {
		logger.Fatal("failed to initialize URL cache service", zap.Error(err))
	}

	colors := stylist.NewColorModel(stylist.DefaultPalettes())
	memory, err := services.NewPreferenceMemory(store, colors, cfg.PreferenceCacheTTL, logger)
	if err != nil {
		logger.Fatal("failed to initialize preference memory", zap.Error(err))
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.AsyncBrokerAddress})
	defer asynqClient.Close()

	e := controllers.SetupServer(controllers.ServerDeps{
		Store:      store,
		AWSService: awsService,
		URLCache:   urlCache,
		Enqueuer:   asynqClient,
		Stylist:    stylist.New(memory, stylist.WithColorModel(colors), stylist.WithLogger(logger.Named("stylist"))),
		Memory:     memory,
		Looks:      memory,
		Logger:     logger,
		JWTSecret:  cfg.JWTSecret,
		BucketName: cfg.R2.BucketName,
	})
	e.Debug = cfg.Env == "local"
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(10)))
	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	logger.Info("starting api", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
