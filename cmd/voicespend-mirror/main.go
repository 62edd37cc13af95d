package main

import (
	"context"
	"errors"
	"os"

	"golang.org/x/sync/errgroup"

	"voicespend/internal/amqp"
	"voicespend/internal/cli"
	"voicespend/internal/config"
	gsheet "voicespend/internal/sheets/google"
	"voicespend/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	// The worker needs only the broker and sheet settings, not the bot
	// token, so it skips the full bot validation.
	cfg := config.Load()
	if !cfg.MirrorEnabled() {
		logger.Error("AMQP_URL is required for the mirror worker")
		os.Exit(1)
	}

	ctx, cancel := cli.SignalContext(logger)
	defer cancel()

	sheetsClient, err := gsheet.NewFromEnv(ctx)
	if err != nil {
		logger.Error("Failed to initialize Google Sheets client", "error", err)
		os.Exit(1)
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	mirrorWorker := worker.NewMirrorWorker(sheetsClient)

	logger.Info("Starting voicespend-mirror", "queue", cfg.AMQPQueue)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return amqpClient.ConsumeRecordMirror(gctx, mirrorWorker.HandleMirrorMessage)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Mirror worker stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Mirror worker stopped gracefully")
}
