package main

import (
	"context"
	"log"
	"time"

	"outfitapi/config"
	"outfitapi/dbhelper"
	"outfitapi/services"
	"outfitapi/stylist"
	"outfitapi/tasks"

	firebase "firebase.google.com/go/v4"
	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func runScheduler(redis asynq.RedisClientOpt, logger *zap.Logger) {
	scheduler := asynq.NewScheduler(redis, &asynq.SchedulerOpts{
		LogLevel: asynq.InfoLevel,
	})

	entries := []struct {
		cron string
		task *asynq.Task
		desc string
	}{
		{
			cron: "*/30 * * * *",
			task: tasks.NewRetryStaleProcessingTask(),
			desc: "Re-enqueue stale clothing processing",
		},
	}

	for _, t := range entries {
		entryID, err := scheduler.Register(t.cron, t.task, asynq.Queue(tasks.QueueCloset))
		if err != nil {
			logger.Fatal("failed to register scheduled task", zap.String("task", t.desc), zap.Error(err))
		}
		logger.Info("registered scheduled task", zap.String("task", t.desc), zap.String("entry_id", entryID), zap.String("cron", t.cron))
	}

	logger.Info("starting scheduler")
	if err := scheduler.Run(); err != nil {
		logger.Fatal("scheduler failed", zap.Error(err))
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %s", err)
	}
	logger := services.NewLogger(cfg.Env).Named("worker")
	defer logger.Sync()

	if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN, Environment: cfg.Env}); err != nil {
		logger.Fatal("sentry.Init", zap.Error(err))
	}
	defer sentry.Flush(2 * time.Second)

	redis := asynq.RedisClientOpt{Addr: cfg.AsyncBrokerAddress}
	srv := asynq.NewServer(redis, asynq.Config{
		Concurrency: cfg.WorkerConcurrency,
		Queues: map[string]int{
			tasks.QueueCloset: 7,
		},
	})

	awsService := &services.AWSService{
		AccountID:       cfg.R2.AccountID,
		AccessKeyID:     cfg.R2.AccessKeyID,
		AccessKeySecret: cfg.R2.AccessKeySecret,
		Logger:          logger,
	}
	if err := awsService.InitPresignClient(context.Background()); err != nil {
		logger.Fatal("failed to initialize R2 client", zap.Error(err))
	}
	app, err := firebase.NewApp(context.Background(), nil)
	if err != nil {
		logger.Fatal("error initializing firebase app", zap.Error(err))
	}

	db := dbhelper.SetupDB(cfg.DB)
	store := services.NewGormClosetStore(db)
	asynqClient := asynq.NewClient(redis)
	defer asynqClient.Close()

	processor := &tasks.ClothingProcessor{
		Store:      store,
		AWSService: awsService,
		Notifier:   &services.FirebaseNotifier{App: app, Store: store, Logger: logger},
		Colors:     stylist.NewColorModel(stylist.DefaultPalettes()),
		BucketName: cfg.R2.BucketName,
		Logger:     logger,
	}
	retry := &tasks.RetryStaleProcessing{Store: store, Enqueuer: asynqClient, Logger: logger}

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeProcessClothing, processor.ProcessClothingTask)
	mux.HandleFunc(tasks.TypeRetryStaleProcesses, retry.ProcessTask)

	go runScheduler(redis, logger)
	if err := srv.Run(mux); err != nil {
		logger.Fatal("worker stopped", zap.Error(err))
	}
}
