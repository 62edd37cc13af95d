// Package services wires the transcript parser, the ledger and the daily
// aggregate into the single pipeline the bot calls per voice message.
package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"voicespend/internal/core"
	"voicespend/internal/ledger"
)

// MirrorPublisher publishes a recorded expense for out-of-process mirroring.
// Optional; a nil publisher disables mirroring.
type MirrorPublisher interface {
	PublishRecordMirror(ctx context.Context, r core.Record) error
}

// Result is the payload returned for a successfully recorded expense.
type Result struct {
	Transcript string
	Category   string
	Amount     int64
	DailyTotal int64
}

// Pipeline turns a transcript into a ledger entry and the running total for
// the current day.
type Pipeline struct {
	store  ledger.Ledger
	mirror MirrorPublisher
	now    func() time.Time

	// Serializes the append + aggregate cycle. Ledger backends built on
	// whole-file rewrite lose one of two unserialized appends, so this is
	// a correctness requirement, not an optimization.
	mu sync.Mutex
}

func NewPipeline(store ledger.Ledger, mirror MirrorPublisher) *Pipeline {
	return &Pipeline{
		store:  store,
		mirror: mirror,
		now:    time.Now,
	}
}

// Process parses transcript, appends the resulting record stamped with the
// local date and time, and returns the updated daily total.
//
// A transcript without an amount returns core.ErrNoAmount: an expected
// outcome the caller answers with a corrective prompt, never persisted.
// Storage failures propagate unmodified (match with ledger.ErrStorage);
// there are no retries.
func (p *Pipeline) Process(ctx context.Context, transcript string) (Result, error) {
	parsed, err := core.ParseTranscript(transcript)
	if err != nil {
		return Result{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	record := core.NewRecord(p.now(), parsed.Category, parsed.Amount)
	if err := p.store.Append(ctx, record); err != nil {
		return Result{}, err
	}

	todays, err := p.store.RecordsForDate(ctx, record.Date)
	if err != nil {
		return Result{}, err
	}

	// Mirroring is best-effort: the expense is already recorded locally,
	// so a publish failure is logged and swallowed.
	if p.mirror != nil {
		if err := p.mirror.PublishRecordMirror(ctx, record); err != nil {
			slog.ErrorContext(ctx, "Failed to publish mirror message",
				"date", record.Date,
				"category", record.Category,
				"error", err)
		}
	}

	return Result{
		Transcript: transcript,
		Category:   record.Category,
		Amount:     record.Amount,
		DailyTotal: core.SumForDate(record.Date, todays),
	}, nil
}
