package core

import (
	"testing"
	"time"
)

func TestNewRecord(t *testing.T) {
	now := time.Date(2025, 3, 1, 14, 5, 9, 0, time.Local)
	r := NewRecord(now, "groceries", 200)
	if r.Date != "2025-03-01" {
		t.Errorf("Date = %q, want 2025-03-01", r.Date)
	}
	if r.Time != "14:05:09" {
		t.Errorf("Time = %q, want 14:05:09", r.Time)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("expected valid record, got %v", err)
	}
}

func TestRecordValidate(t *testing.T) {
	bads := []Record{
		{Date: "not-a-date", Time: "10:00:00", Category: "food", Amount: 1},
		{Date: "2025-03-01", Time: "10:00:00", Category: "food", Amount: -5},
		{Date: "2025-03-01", Time: "10:00:00", Category: "  ", Amount: 1},
	}
	for i, r := range bads {
		if err := r.Validate(); err == nil {
			t.Errorf("case %d expected error", i)
		}
	}
}
