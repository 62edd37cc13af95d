package memory

import (
	"context"
	"testing"

	"voicespend/internal/core"
)

func TestAppendAndRecordsForDate(t *testing.T) {
	s := New()
	ctx := context.Background()

	records := []core.Record{
		{Date: "2025-03-01", Time: "09:00:00", Category: "food", Amount: 100},
		{Date: "2025-03-02", Time: "09:00:00", Category: "rent", Amount: 500},
		{Date: "2025-03-01", Time: "10:00:00", Category: "other", Amount: 30},
	}
	for _, r := range records {
		if err := s.Append(ctx, r); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	day, err := s.RecordsForDate(ctx, "2025-03-01")
	if err != nil {
		t.Fatalf("RecordsForDate: %v", err)
	}
	if len(day) != 2 || day[0].Amount != 100 || day[1].Amount != 30 {
		t.Fatalf("records for 2025-03-01 = %+v", day)
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
}

func TestAppendValidates(t *testing.T) {
	s := New()
	err := s.Append(context.Background(), core.Record{Date: "2025-03-01", Time: "09:00:00", Category: "", Amount: 1})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if s.Len() != 0 {
		t.Fatal("invalid record must not be stored")
	}
}
