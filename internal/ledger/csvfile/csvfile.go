// Package csvfile persists the ledger as a single human-inspectable CSV
// file with columns Date, Time, Category, Amount.
//
// The file is a whole-file snapshot, not an append log: every Append reads
// the entire file, adds the record in memory and rewrites the file through
// a temp file + rename, so readers never observe a partial write. A mutex
// serializes the read-modify-write cycle; two unserialized appends would
// silently drop one of them.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"voicespend/internal/core"
	"voicespend/internal/ledger"
)

var header = []string{"Date", "Time", "Category", "Amount"}

type Store struct {
	mu   sync.Mutex
	path string
}

var _ ledger.Ledger = (*Store)(nil)

// New returns a CSV ledger backed by the file at path. The file is created
// lazily on the first append.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: create ledger directory: %v", ledger.ErrStorage, err)
		}
	}
	return &Store{path: path}, nil
}

// Append adds r to the end of the ledger and rewrites the whole file.
func (s *Store) Append(ctx context.Context, r core.Record) error {
	if err := r.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	records = append(records, r)
	return s.rewrite(records)
}

// RecordsForDate returns the records whose Date equals date, in insertion
// order.
func (s *Store) RecordsForDate(ctx context.Context, date string) ([]core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	var out []core.Record
	for _, r := range records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

// load reads the full ledger. A missing file is an empty ledger; any other
// failure, including a malformed row, surfaces as ErrStorage rather than
// being papered over with an empty result.
func (s *Store) load() ([]core.Record, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ledger.ErrStorage, s.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ledger.ErrStorage, s.path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]core.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: %s row %d: expected %d columns, got %d",
				ledger.ErrStorage, s.path, i+2, len(header), len(row))
		}
		amount, err := strconv.ParseInt(row[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: bad amount %q", ledger.ErrStorage, s.path, i+2, row[3])
		}
		records = append(records, core.Record{
			Date:     row[0],
			Time:     row[1],
			Category: row[2],
			Amount:   amount,
		})
	}
	return records, nil
}

// rewrite replaces the ledger file with the given records. Writing goes
// through a temp file in the same directory followed by a rename, so the
// visible file is always a complete snapshot.
func (s *Store) rewrite(records []core.Record) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ledger.ErrStorage, err)
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	if err := writer.Write(header); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write header: %v", ledger.ErrStorage, err)
	}
	for _, r := range records {
		row := []string{r.Date, r.Time, r.Category, strconv.FormatInt(r.Amount, 10)}
		if err := writer.Write(row); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("%w: write row: %v", ledger.ErrStorage, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: flush: %v", ledger.ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %v", ledger.ErrStorage, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %v", ledger.ErrStorage, s.path, err)
	}
	return nil
}
