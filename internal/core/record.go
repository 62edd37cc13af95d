package core

import (
	"errors"
	"strings"
	"time"
)

const (
	// DateLayout is the calendar date format used everywhere a record date
	// is persisted or compared ("2025-01-31").
	DateLayout = "2006-01-02"
	// TimeLayout is the wall-clock time format stored alongside a record.
	// Informational only, never used in aggregation.
	TimeLayout = "15:04:05"
)

var (
	ErrNoAmount       = errors.New("no amount in transcript")
	ErrNegativeAmount = errors.New("negative amount")
	ErrEmptyCategory  = errors.New("empty category")
	ErrInvalidDate    = errors.New("invalid date")
)

type (
	// Record is a single persisted expense. Amount is a plain non-negative
	// integer in the user's local currency, no sub-unit handling.
	Record struct {
		Date     string // YYYY-MM-DD, local clock date
		Time     string // HH:MM:SS
		Category string
		Amount   int64
	}
)

// NewRecord builds a Record stamped with the local date and time of now.
func NewRecord(now time.Time, category string, amount int64) Record {
	return Record{
		Date:     now.Format(DateLayout),
		Time:     now.Format(TimeLayout),
		Category: category,
		Amount:   amount,
	}
}

func (r Record) Validate() error {
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return ErrInvalidDate
	}
	if r.Amount < 0 {
		return ErrNegativeAmount
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}
