// Package bot is the Telegram front end: it receives voice notes, drives
// the transcription pipeline and replies with the recorded expense.
package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"voicespend/internal/core"
	"voicespend/internal/log"
	"voicespend/internal/services"
	"voicespend/internal/transcribe"
)

const (
	startReply        = "🎤 Send a voice note like: 'Spent 200 on groceries'"
	parseFailureReply = "❌ Please say clearly like: 'Spent 200 on groceries'"
	storageFailReply  = "⚠️ Could not record the expense, please try again."
)

type Handler struct {
	bot         *tgbotapi.BotAPI
	pipeline    *services.Pipeline
	transcriber transcribe.Transcriber
	converter   transcribe.Converter
	audioDir    string
	logger      *log.Logger
}

func NewHandler(token string, pipeline *services.Pipeline, transcriber transcribe.Transcriber, converter transcribe.Converter, audioDir string, logger *log.Logger) (*Handler, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	return &Handler{
		bot:         api,
		pipeline:    pipeline,
		transcriber: transcriber,
		converter:   converter,
		audioDir:    audioDir,
		logger:      logger.WithComponent("bot"),
	}, nil
}

// Run consumes updates until ctx is cancelled. Updates are handled one at a
// time: each voice note is parsed, appended and answered before the next is
// looked at.
func (h *Handler) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	h.logger.Info("Bot is running", "username", h.bot.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return errors.New("updates channel closed")
			}
			if update.Message == nil {
				continue
			}
			h.handleMessage(ctx, update.Message)
		}
	}
}

func (h *Handler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	switch {
	case msg.IsCommand() && msg.Command() == "start":
		h.reply(msg.Chat.ID, startReply)
	case msg.Voice != nil:
		h.handleVoice(ctx, msg)
	}
}

func (h *Handler) handleVoice(ctx context.Context, msg *tgbotapi.Message) {
	transcript, err := h.transcribeVoice(ctx, msg.Voice.FileID)
	if err != nil {
		// Unusable audio behaves like an empty transcript: the parser
		// turns it into the corrective prompt below.
		h.logger.ErrorContext(ctx, "Transcription failed", "error", err, "chat_id", msg.Chat.ID)
		transcript = ""
	}

	result, err := h.pipeline.Process(ctx, transcript)
	switch {
	case errors.Is(err, core.ErrNoAmount):
		h.reply(msg.Chat.ID, parseFailureReply)
	case err != nil:
		h.logger.ErrorContext(ctx, "Failed to record expense", "error", err, "chat_id", msg.Chat.ID)
		h.reply(msg.Chat.ID, storageFailReply)
	default:
		h.reply(msg.Chat.ID, formatSuccess(result))
	}
}

// transcribeVoice downloads the voice note, converts it to wav and runs the
// transcriber on it. Temp files are removed when done.
func (h *Handler) transcribeVoice(ctx context.Context, fileID string) (string, error) {
	fileURL, err := h.bot.GetFileDirectURL(fileID)
	if err != nil {
		return "", fmt.Errorf("resolve voice file: %w", err)
	}

	oggPath := filepath.Join(h.audioDir, fileID+".ogg")
	wavPath := filepath.Join(h.audioDir, fileID+".wav")
	defer os.Remove(oggPath)
	defer os.Remove(wavPath)

	if err := downloadFile(ctx, fileURL, oggPath); err != nil {
		return "", fmt.Errorf("download voice file: %w", err)
	}

	if err := h.converter.Convert(ctx, oggPath, wavPath); err != nil {
		return "", fmt.Errorf("convert audio: %w", err)
	}

	return h.transcriber.Transcribe(ctx, wavPath)
}

func (h *Handler) reply(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.logger.Error("Failed to send reply", "error", err, "chat_id", chatID)
	}
}

func formatSuccess(r services.Result) string {
	return fmt.Sprintf(`✅ Expense Recorded!

📝 Text: %s
📂 Category: %s
💰 Amount: %d

📅 Total Spent Today: %d`, r.Transcript, r.Category, r.Amount, r.DailyTotal)
}

func downloadFile(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
