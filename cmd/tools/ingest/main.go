// cmd/tools/ingest/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"dining-concierge/internal/common/aws"
	"dining-concierge/internal/common/config"
	"dining-concierge/internal/common/database"
	"dining-concierge/internal/common/httpx"
	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/ingest"
	"dining-concierge/internal/restaurants"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting restaurant ingestion...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	ingestCfg := &ingest.Config{
		APIKey:     cfg.Yelp.APIKey,
		BaseURL:    cfg.Yelp.BaseURL,
		PageSize:   cfg.Yelp.PageSize,
		MaxPerPair: cfg.Yelp.MaxPerPair,
		Timeout:    config.GetDuration(cfg.Yelp.Timeout),
	}
	if err := ingestCfg.Validate(); err != nil {
		zapLog.Fatal("ingest config invalid", zap.Error(err))
	}

	esClient, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
	if err != nil {
		zapLog.Fatal("elasticsearch failed", zap.Error(err))
	}
	if err := esClient.Ping(); err != nil {
		zapLog.Fatal("elasticsearch unreachable", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		zapLog.Info("Shutdown signal received, aborting run...")
		cancel()
	}()

	dynamoClient, err := aws.NewDynamoDBClient(ctx, cfg.AWS.Region)
	if err != nil {
		zapLog.Fatal("dynamodb client failed", zap.Error(err))
	}

	directory := ingest.NewYelpClient(httpx.NewClient(ingestCfg.Timeout), ingestCfg.BaseURL, ingestCfg.APIKey)
	store := restaurants.NewStore(dynamoClient, cfg.AWS.DynamoDB.Table)
	index := restaurants.NewIndex(esClient, cfg.Database.Elasticsearch.Index, log)

	loader := ingest.NewLoader(ingestCfg, log, directory, store, index)

	result, err := loader.Run(ctx)
	if err != nil {
		zapLog.Fatal("ingestion run aborted", zap.Error(err),
			zap.Int("written", result.Written),
			zap.Int("skipped", result.Skipped),
			zap.Int("failed", result.Failed),
		)
	}

	zapLog.Info("Ingestion run finished",
		zap.Int("written", result.Written),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
	)
}
