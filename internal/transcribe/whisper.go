package transcribe

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"voicespend/internal/log"
)

// WhisperCLI runs a whisper.cpp style binary on a wav file and returns the
// transcript printed on stdout.
type WhisperCLI struct {
	bin    string
	model  string
	logger *log.Logger
}

func NewWhisperCLI(bin, model string, logger *log.Logger) *WhisperCLI {
	return &WhisperCLI{bin: bin, model: model, logger: logger}
}

var _ Transcriber = (*WhisperCLI)(nil)

func (w *WhisperCLI) Transcribe(ctx context.Context, audioFilePath string) (string, error) {
	args := []string{"-f", audioFilePath, "--no-timestamps"}
	if w.model != "" {
		args = append([]string{"-m", w.model}, args...)
	}

	cmd := exec.CommandContext(ctx, w.bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	w.logger.DebugContext(ctx, "Running transcription", "bin", w.bin, "file", audioFilePath)

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("run %s: %w (stderr: %s)", w.bin, err, strings.TrimSpace(stderr.String()))
	}

	text := strings.TrimSpace(stdout.String())
	w.logger.InfoContext(ctx, "Transcription finished", "file", audioFilePath, "chars", len(text))
	return text, nil
}
