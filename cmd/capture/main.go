package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/archivehq/whatsapp-import/internal/client/blob"
	"github.com/archivehq/whatsapp-import/internal/client/media"
	"github.com/archivehq/whatsapp-import/internal/config"
	"github.com/archivehq/whatsapp-import/internal/databus/event"
	"github.com/archivehq/whatsapp-import/internal/pkg/validator"
	db "github.com/archivehq/whatsapp-import/internal/repository/postgres"
	"github.com/archivehq/whatsapp-import/internal/rest"
)

const messageEventConsumerGroupID = "whatsapp-snippet-capture"

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	ctx := context.WithValue(context.Background(), config.KeyMetrics, metrics)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	blobClient, err := blob.New(ctx, cfg)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to open blob store: %v", err))
		return
	}
	defer blobClient.Close()

	mediaClient := media.New()
	defer mediaClient.Close()

	consumerConfig := kafkalib.DefaultConsumerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.MessageTopic,
		messageEventConsumerGroupID,
	)
	consumer, err := kafkalib.NewConsumer(consumerConfig, metrics)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create consumer: %v", err))
		return
	}

	eventHandler := event.New(dbRepo, blobClient, mediaClient, validator.New(), cfg.Storage.Path)
	consumer.RegisterHandler(ctx, eventHandler.Handler)

	restHandler := rest.New(dbRepo, cfg.Import.GroupName)
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), config.KeyLogger, logger)))
		})
	})
	router.Get("/health", restHandler.Health)
	router.Get("/stats", restHandler.Stats)

	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		return httpServer.Close()
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
