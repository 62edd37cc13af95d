// Package transcribe converts downloaded voice notes into text. Both the
// audio conversion and the speech-to-text inference shell out to external
// tools; this package only owns the process plumbing.
package transcribe

import "context"

// Transcriber handles voice transcription.
type Transcriber interface {
	Transcribe(ctx context.Context, audioFilePath string) (string, error)
}

// Converter turns a downloaded voice note into a format the transcriber
// can decode.
type Converter interface {
	Convert(ctx context.Context, inputPath, outputPath string) error
}
