package sheets

import (
	"context"

	"voicespend/internal/core"
)

// RecordWriter is the outbound port for mirroring ledger records to an
// external spreadsheet.
type RecordWriter interface {
	Append(ctx context.Context, r core.Record) (rowRef string, err error)
}
