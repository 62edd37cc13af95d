package csvfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"voicespend/internal/core"
	"voicespend/internal/ledger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "expenses.csv"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestEmptyLedger(t *testing.T) {
	s := newTestStore(t)
	records, err := s.RecordsForDate(context.Background(), "2025-03-01")
	if err != nil {
		t.Fatalf("RecordsForDate on missing file: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty ledger, got %d records", len(records))
	}
}

func TestAppendRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	want := []core.Record{
		{Date: "2025-03-01", Time: "09:00:00", Category: "groceries", Amount: 200},
		{Date: "2025-03-01", Time: "12:30:00", Category: "food", Amount: 50},
		{Date: "2025-03-02", Time: "08:15:00", Category: "petrol", Amount: 900},
	}
	for _, r := range want {
		if err := s.Append(ctx, r); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	// Reopen to prove the records survive a restart unchanged.
	reopened, err := New(s.path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := reopened.RecordsForDate(ctx, "2025-03-01")
	if err != nil {
		t.Fatalf("RecordsForDate: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records for 2025-03-01, want 2", len(got))
	}
	for i, r := range got {
		if r != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, r, want[i])
		}
	}

	other, err := reopened.RecordsForDate(ctx, "2025-03-02")
	if err != nil {
		t.Fatalf("RecordsForDate: %v", err)
	}
	if len(other) != 1 || other[0] != want[2] {
		t.Errorf("records for 2025-03-02 = %+v, want [%+v]", other, want[2])
	}
}

func TestAppendRejectsInvalidRecord(t *testing.T) {
	s := newTestStore(t)
	err := s.Append(context.Background(), core.Record{Date: "2025-03-01", Time: "09:00:00", Category: "food", Amount: -1})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if _, statErr := os.Stat(s.path); !os.IsNotExist(statErr) {
		t.Fatal("invalid record must never be persisted")
	}
}

func TestCorruptFileIsStorageError(t *testing.T) {
	s := newTestStore(t)
	bad := "Date,Time,Category,Amount\n2025-03-01,09:00:00,food,not-a-number\n"
	if err := os.WriteFile(s.path, []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := s.RecordsForDate(context.Background(), "2025-03-01")
	if !errors.Is(err, ledger.ErrStorage) {
		t.Fatalf("err = %v, want ErrStorage", err)
	}

	err = s.Append(context.Background(), core.Record{Date: "2025-03-01", Time: "10:00:00", Category: "food", Amount: 5})
	if !errors.Is(err, ledger.ErrStorage) {
		t.Fatalf("Append on corrupt ledger: err = %v, want ErrStorage", err)
	}
}

func TestConcurrentAppendsLoseNothing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := core.Record{Date: "2025-03-01", Time: "09:00:00", Category: "food", Amount: 1}
			if err := s.Append(ctx, r); err != nil {
				t.Errorf("Append: %v", err)
			}
		}()
	}
	wg.Wait()

	records, err := s.RecordsForDate(ctx, "2025-03-01")
	if err != nil {
		t.Fatalf("RecordsForDate: %v", err)
	}
	if len(records) != n {
		t.Fatalf("got %d records after %d concurrent appends", len(records), n)
	}
}
