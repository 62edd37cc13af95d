package storage

import (
	"context"
	"path/filepath"
	"testing"

	"voicespend/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "expenses.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestAppendAndQueryByDate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	records := []core.Record{
		{Date: "2025-03-01", Time: "09:00:00", Category: "groceries", Amount: 200},
		{Date: "2025-03-02", Time: "11:00:00", Category: "rent", Amount: 1200},
		{Date: "2025-03-01", Time: "19:45:00", Category: "food", Amount: 75},
	}
	for _, r := range records {
		if err := repo.Append(ctx, r); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	day, err := repo.RecordsForDate(ctx, "2025-03-01")
	if err != nil {
		t.Fatalf("RecordsForDate: %v", err)
	}
	if len(day) != 2 {
		t.Fatalf("got %d records, want 2", len(day))
	}
	// Insertion order must survive.
	if day[0] != records[0] || day[1] != records[2] {
		t.Errorf("records out of order: %+v", day)
	}

	if got := core.SumForDate("2025-03-01", day); got != 275 {
		t.Errorf("daily total = %d, want 275", got)
	}

	empty, err := repo.RecordsForDate(ctx, "2024-12-31")
	if err != nil {
		t.Fatalf("RecordsForDate: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no records, got %d", len(empty))
	}
}

func TestAppendRejectsInvalid(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.Append(context.Background(), core.Record{Date: "bad", Time: "09:00:00", Category: "food", Amount: 1})
	if err == nil {
		t.Fatal("expected validation error")
	}
}
