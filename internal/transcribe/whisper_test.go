package transcribe

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"voicespend/internal/log"
)

func fakeBin(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake shell binaries not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "fake-whisper")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWhisperCLITranscribe(t *testing.T) {
	bin := fakeBin(t, `echo " Spent 200 on groceries "`)
	w := NewWhisperCLI(bin, "", log.New(log.DefaultConfig()))

	text, err := w.Transcribe(context.Background(), "voice.wav")
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if text != "Spent 200 on groceries" {
		t.Errorf("text = %q", text)
	}
}

func TestWhisperCLIFailure(t *testing.T) {
	bin := fakeBin(t, `echo "model load failed" >&2; exit 1`)
	w := NewWhisperCLI(bin, "", log.New(log.DefaultConfig()))

	if _, err := w.Transcribe(context.Background(), "voice.wav"); err == nil {
		t.Fatal("expected error")
	}
}

func TestFFmpegConverterFailure(t *testing.T) {
	bin := fakeBin(t, `exit 1`)
	c := NewFFmpegConverter(bin)

	if err := c.Convert(context.Background(), "in.ogg", "out.wav"); err == nil {
		t.Fatal("expected error")
	}
}
