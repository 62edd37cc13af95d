// Package ledger defines the ports every expense ledger backend implements.
package ledger

import (
	"context"
	"errors"

	"voicespend/internal/core"
)

// ErrStorage marks failures of the underlying ledger resource (unreadable,
// unwritable, corrupt). "File does not exist yet" is never a storage error;
// it reads as an empty ledger. Callers match with errors.Is.
var ErrStorage = errors.New("ledger storage")

type (
	// Appender adds a record to the end of the ledger. The ledger is
	// append-only: records are never mutated or removed once written.
	Appender interface {
		Append(ctx context.Context, r core.Record) error
	}

	// DateReader returns all records for a calendar date (core.DateLayout)
	// in original insertion order.
	DateReader interface {
		RecordsForDate(ctx context.Context, date string) ([]core.Record, error)
	}

	// Ledger is the full store contract used by the pipeline.
	Ledger interface {
		Appender
		DateReader
	}
)
