// cmd/fulfillment-worker/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"dining-concierge/internal/common/aws"
	"dining-concierge/internal/common/config"
	"dining-concierge/internal/common/database"
	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/common/observability"
	"dining-concierge/internal/fulfillment"
	"dining-concierge/internal/restaurants"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting fulfillment worker...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("fulfillment-worker")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	sqsClient, err := aws.NewSQSClient(ctx, cfg.AWS.Region)
	if err != nil {
		zapLog.Fatal("sqs client failed", zap.Error(err))
	}

	dynamoClient, err := aws.NewDynamoDBClient(ctx, cfg.AWS.Region)
	if err != nil {
		zapLog.Fatal("dynamodb client failed", zap.Error(err))
	}

	sesClient, err := aws.NewSESClient(ctx, cfg.AWS.Region)
	if err != nil {
		zapLog.Fatal("ses client failed", zap.Error(err))
	}

	var notifier fulfillment.NotifierService
	if cfg.AWS.SNS.Enabled {
		snsClient, err := aws.NewSNSClient(ctx, cfg.AWS.Region)
		if err != nil {
			zapLog.Fatal("sns client failed", zap.Error(err))
		}
		notifier = snsClient
	}

	index := restaurants.NewIndex(esClient, cfg.Database.Elasticsearch.Index, log)
	store := restaurants.NewStore(dynamoClient, cfg.AWS.DynamoDB.Table)

	workerCfg := &fulfillment.Config{
		QueueURL:          cfg.AWS.SQS.QueueURL,
		MaxMessages:       int32(cfg.AWS.SQS.MaxMessages),
		VisibilityTimeout: int32(cfg.AWS.SQS.VisibilityTimeout),
		WaitTime:          int32(cfg.AWS.SQS.WaitTime),
		SampleSize:        cfg.Worker.SampleSize,
		FromAddress:       cfg.AWS.SES.FromAddress,
		Subject:           cfg.AWS.SES.Subject,
		SNSEnabled:        cfg.AWS.SNS.Enabled,
		SNSTopicARN:       cfg.AWS.SNS.TopicARN,
	}
	if err := workerCfg.Validate(); err != nil {
		zapLog.Fatal("worker config invalid", zap.Error(err))
	}

	worker := fulfillment.NewWorker(workerCfg, log, sqsClient, index, store, sesClient, notifier)

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8081")
		if err := http.ListenAndServe(":8081", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(config.GetDuration(cfg.Worker.PollInterval))
	defer ticker.Stop()

	zapLog.Info("Fulfillment worker polling", zap.Duration("interval", config.GetDuration(cfg.Worker.PollInterval)))

	for {
		select {
		case <-sigCh:
			zapLog.Info("Shutdown signal received, stopping worker...")
			cancel()
			zapLog.Info("Fulfillment worker stopped gracefully")
			return
		case <-ticker.C:
			passCtx, passCancel := context.WithTimeout(runCtx, config.GetDuration(cfg.Worker.Timeout))
			passStart := time.Now()
			result, err := worker.Run(passCtx)
			passCancel()

			if err != nil {
				obs.RecordMessageDuration(runCtx, time.Since(passStart), "failed")
				zapLog.Error("Fulfillment pass failed", zap.Error(err))
				continue
			}
			obs.RecordMessageDuration(runCtx, time.Since(passStart), "ok")
			for i := 0; i < result.Processed; i++ {
				obs.RecordMessageProcessed(runCtx, "processed")
			}
			for i := 0; i < result.Failed; i++ {
				obs.RecordMessageProcessed(runCtx, "failed")
			}
			if result.Received > 0 {
				zapLog.Info("Fulfillment pass finished",
					zap.Int("received", result.Received),
					zap.Int("processed", result.Processed),
					zap.Int("failed", result.Failed),
				)
			}
		}
	}
}
