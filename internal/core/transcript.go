// Package core holds the expense domain: records, transcript parsing and
// per-day aggregation.
//
// This file turns a raw speech-to-text transcript into a typed expense.
// Parsing is deliberately permissive: the first run of digits is the amount
// and category keywords match as plain substrings.
package core

import (
	"strconv"
	"strings"
)

// CategoryOther is the catch-all label used when no keyword matches.
const CategoryOther = "other"

// categories is the fixed keyword list checked in priority order. When a
// transcript mentions several keywords the one earliest in this list wins,
// not the one earliest in the text.
var categories = []string{
	"food", "groceries", "travel", "shopping",
	"rent", "movie", "petrol", "medicine", "fees",
}

// ParsedExpense is the parser's output before a Record is stamped with a
// date and time.
type ParsedExpense struct {
	Amount   int64
	Category string
}

// ParseTranscript extracts an amount and a category from transcribed text.
//
// The amount is the first maximal run of decimal digits interpreted as a
// base-10 integer; a transcript with no digits returns ErrNoAmount, which is
// the parser's only failure mode. A digit run too large for int64 is treated
// the same way. The category is the first keyword from the fixed list found
// as a substring of the lower-cased text, or CategoryOther.
func ParseTranscript(text string) (ParsedExpense, error) {
	lower := strings.ToLower(text)

	digits, ok := firstDigitRun(lower)
	if !ok {
		return ParsedExpense{}, ErrNoAmount
	}
	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		// Overflow on an absurdly long digit run. Not a usable amount.
		return ParsedExpense{}, ErrNoAmount
	}

	category := CategoryOther
	for _, c := range categories {
		if strings.Contains(lower, c) {
			category = c
			break
		}
	}

	return ParsedExpense{Amount: amount, Category: category}, nil
}

// Categories returns the recognized keywords in priority order.
func Categories() []string {
	return append([]string(nil), categories...)
}

// firstDigitRun returns the first maximal run of ASCII digits in s.
func firstDigitRun(s string) (string, bool) {
	start := -1
	for i := 0; i < len(s); i++ {
		isDigit := s[i] >= '0' && s[i] <= '9'
		if isDigit && start < 0 {
			start = i
		}
		if !isDigit && start >= 0 {
			return s[start:i], true
		}
	}
	if start >= 0 {
		return s[start:], true
	}
	return "", false
}
