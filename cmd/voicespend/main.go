package main

import (
	"context"
	"errors"
	"os"

	"voicespend/internal/amqp"
	"voicespend/internal/bot"
	"voicespend/internal/cli"
	"voicespend/internal/log"
	"voicespend/internal/services"
	"voicespend/internal/transcribe"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	store, closeStore := cli.OpenLedger(logger, cfg)
	defer closeStore()

	// Optional AMQP mirror; the bot works fine without a broker.
	var mirror services.MirrorPublisher
	if cfg.MirrorEnabled() {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer amqpClient.Close()
		mirror = amqpClient
		logger.Info("Record mirroring enabled", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	} else {
		logger.Info("Record mirroring disabled - no AMQP_URL provided")
	}

	pipeline := services.NewPipeline(store, mirror)

	appLogger := log.New(log.DefaultConfig())
	transcriber := transcribe.NewWhisperCLI(cfg.WhisperBin, cfg.WhisperModel, appLogger.WithComponent("transcribe"))
	converter := transcribe.NewFFmpegConverter(cfg.FFmpegBin)

	handler, err := bot.NewHandler(cfg.BotToken, pipeline, transcriber, converter, cfg.AudioDir, appLogger)
	if err != nil {
		logger.Error("Failed to initialize Telegram bot", "error", err)
		os.Exit(1)
	}

	ctx, cancel := cli.SignalContext(logger)
	defer cancel()

	logger.Info("Starting voicespend bot", "backend", cfg.LedgerBackend)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Bot stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Bot stopped gracefully")
}
