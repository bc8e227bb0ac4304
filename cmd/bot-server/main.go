// cmd/bot-server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"dining-concierge/internal/common/aws"
	"dining-concierge/internal/common/config"
	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/dialog"
	"dining-concierge/internal/intake"
	"dining-concierge/internal/server"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting bot server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	ctx := context.Background()

	sqsClient, err := aws.NewSQSClient(ctx, cfg.AWS.Region)
	if err != nil {
		zapLog.Fatal("sqs client failed", zap.Error(err))
	}

	lexClient, err := aws.NewLexClient(ctx, cfg.AWS.Region)
	if err != nil {
		zapLog.Fatal("lex client failed", zap.Error(err))
	}

	dialogCfg := &dialog.Config{
		BookingIntent: cfg.Dialog.BookingIntent,
		Timezone:      cfg.Dialog.Timezone,
		QueueURL:      cfg.AWS.SQS.QueueURL,
	}
	if err := dialogCfg.Validate(); err != nil {
		zapLog.Fatal("dialog config invalid", zap.Error(err))
	}

	dialogHandler, err := dialog.NewHandler(dialogCfg, log, sqsClient)
	if err != nil {
		zapLog.Fatal("failed to create dialog handler", zap.Error(err))
	}

	intakeCfg := &intake.Config{
		BotName:  cfg.Lex.BotName,
		BotAlias: cfg.Lex.BotAlias,
		UserID:   cfg.Lex.UserID,
		Timezone: cfg.Dialog.Timezone,
	}
	if err := intakeCfg.Validate(); err != nil {
		zapLog.Fatal("intake config invalid", zap.Error(err))
	}

	intakeHandler, err := intake.NewHandler(intakeCfg, log, lexClient)
	if err != nil {
		zapLog.Fatal("failed to create intake handler", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      server.New(log, intakeHandler, dialogHandler).Router(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down HTTP server", zap.Error(err))
	}

	zapLog.Info("Bot server stopped gracefully")
}
