package transcribe

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// FFmpegConverter converts Telegram voice notes (ogg/opus) to 16 kHz mono
// wav, the input whisper expects.
type FFmpegConverter struct {
	bin string
}

func NewFFmpegConverter(bin string) *FFmpegConverter {
	if bin == "" {
		bin = "ffmpeg"
	}
	return &FFmpegConverter{bin: bin}
}

var _ Converter = (*FFmpegConverter)(nil)

func (c *FFmpegConverter) Convert(ctx context.Context, inputPath, outputPath string) error {
	cmd := exec.CommandContext(ctx, c.bin,
		"-y",
		"-i", inputPath,
		"-ar", "16000",
		"-ac", "1",
		outputPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w (stderr: %s)", c.bin, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
