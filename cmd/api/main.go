package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"blog-api/api/router"
	"blog-api/config"
	"blog-api/db"
	"blog-api/eventbus"
	"blog-api/logger"
	"blog-api/repositories"
	"blog-api/services"
	"blog-api/storage"
)

// @title           Blog API
// @version         1.0
// @description     Blog posts with tags, keyword search, tag filtering and pagination
// @BasePath        /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Errorf("config load failed: %v", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level, os.Getenv("SERVICE_NAME"))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	store, err := db.Connect(ctx, cfg.Mongo)
	if err != nil {
		exitOnError(err)
	}

	uploader, err := newUploader(ctx, cfg.Storage)
	if err != nil {
		exitOnError(err)
	}
	bus := newEventBus(ctx, cfg.EventBus)
	notifier := services.NewNotifier(bus, eventbus.TopicFor(cfg.EventBus.Topic))

	postRepo := repositories.NewPostRepository(store.Database())
	tagRepo := repositories.NewTagRepository(store.Database())

	var imageUploader services.ImageUploader
	if uploader != nil {
		imageUploader = uploader
	}

	engine := router.New(router.Deps{
		Posts:  services.NewPostService(postRepo, tagRepo, imageUploader, notifier),
		Tags:   services.NewTagService(tagRepo, notifier),
		Health: store,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router.NewHandler(engine, cfg.Server.CORSAllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		logger.Log.Infof("HTTP server listening on %s (mode=%s)", srv.Addr, cfg.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("server run failed: %v", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	logger.Log.Info("server stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("server graceful shutdown failed: %v", err)
	}
	notifier.Wait()
	bus.Close()
	if err := store.Close(shutdownCtx); err != nil {
		logger.Log.Errorf("mongo disconnect failed: %v", err)
	}
}

// newUploader returns nil when no bucket is configured; image uploads are then rejected.
func newUploader(ctx context.Context, cfg config.StorageConfig) (*storage.S3Uploader, error) {
	if cfg.Bucket == "" {
		logger.Log.Info("S3_BUCKET not set: image uploads disabled")
		return nil, nil
	}
	return storage.NewS3Uploader(ctx, cfg)
}

// newEventBus falls back to a no-op bus when Kafka is not configured or unreachable.
func newEventBus(ctx context.Context, cfg config.EventBusConfig) eventbus.EventBus {
	if cfg.Brokers == "" {
		logger.Log.Info("KAFKA_BOOTSTRAP_SERVERS not set: domain events disabled")
		return eventbus.NopBus{}
	}
	if err := eventbus.EnsureTopic(ctx, cfg.Brokers, eventbus.TopicFor(cfg.Topic), cfg.Partitions); err != nil {
		logger.Log.Warnf("ensure kafka topics failed: %v", err)
	}
	bus, err := eventbus.NewKafkaEventBus(cfg.Brokers)
	if err != nil {
		logger.Log.Errorf("kafka producer init failed, events disabled: %v", err)
		return eventbus.NopBus{}
	}
	return bus
}

func exitOnError(err error) {
	if err != nil {
		logger.Log.Errorf("app init failed: %v", err)
		os.Exit(1)
	}
}
