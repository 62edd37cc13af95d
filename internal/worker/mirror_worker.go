package worker

import (
	"context"
	"fmt"
	"log/slog"

	"voicespend/internal/amqp"
	"voicespend/internal/sheets"
)

// MirrorWorker appends ledger records received over AMQP to an external
// spreadsheet. It is a consumer of the bot's best-effort mirror stream; the
// local ledger is always authoritative.
type MirrorWorker struct {
	sheets sheets.RecordWriter
}

func NewMirrorWorker(sheets sheets.RecordWriter) *MirrorWorker {
	return &MirrorWorker{sheets: sheets}
}

// HandleMirrorMessage processes a single record mirror message from AMQP.
// Returning an error requeues the message.
func (w *MirrorWorker) HandleMirrorMessage(ctx context.Context, msg *amqp.RecordMirrorMessage) error {
	slog.InfoContext(ctx, "Processing mirror message",
		"date", msg.Record.Date,
		"category", msg.Record.Category,
		"amount", msg.Record.Amount)

	ref, err := w.sheets.Append(ctx, msg.Record)
	if err != nil {
		return fmt.Errorf("append record to sheet: %w", err)
	}

	slog.InfoContext(ctx, "Record mirrored",
		"sheets_ref", ref,
		"date", msg.Record.Date,
		"category", msg.Record.Category,
		"amount", msg.Record.Amount)

	return nil
}
