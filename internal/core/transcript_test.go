package core

import (
	"errors"
	"testing"
)

func TestParseTranscript(t *testing.T) {
	cases := []struct {
		text     string
		amount   int64
		category string
	}{
		{"Spent 200 on groceries", 200, "groceries"},
		{"spent 200 on groceries then 50 on petrol", 200, "groceries"},
		{"petrol 50 and then groceries 200", 200, "groceries"}, // list order wins, not text order
		{"spent 500 somewhere unknown", 500, "other"},
		{"MOVIE tickets 350", 350, "movie"},
		{"paid 1200 rent today", 1200, "rent"},
		{"fees4school", 4, "fees"}, // substring match, no word boundaries
		{"0 on food", 0, "food"},
		{"travelling costs 80", 80, "travel"},
	}
	for i, tc := range cases {
		got, err := ParseTranscript(tc.text)
		if err != nil {
			t.Fatalf("case %d (%q): unexpected error %v", i, tc.text, err)
		}
		if got.Amount != tc.amount {
			t.Errorf("case %d (%q): amount = %d, want %d", i, tc.text, got.Amount, tc.amount)
		}
		if got.Category != tc.category {
			t.Errorf("case %d (%q): category = %q, want %q", i, tc.text, got.Category, tc.category)
		}
	}
}

func TestParseTranscriptNoAmount(t *testing.T) {
	cases := []string{
		"",
		"no numbers here, just groceries",
		"spent some money on food",
		"99999999999999999999999999 on food", // int64 overflow
	}
	for i, text := range cases {
		_, err := ParseTranscript(text)
		if !errors.Is(err, ErrNoAmount) {
			t.Errorf("case %d (%q): err = %v, want ErrNoAmount", i, text, err)
		}
	}
}

func TestFirstDigitRun(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"spent 200 on stuff", "200", true},
		{"200", "200", true},
		{"a1b2", "1", true},
		{"trailing 42", "42", true},
		{"none", "", false},
		{"", "", false},
	}
	for i, tc := range cases {
		out, ok := firstDigitRun(tc.in)
		if out != tc.out || ok != tc.ok {
			t.Errorf("case %d: firstDigitRun(%q) = (%q, %v), want (%q, %v)", i, tc.in, out, ok, tc.out, tc.ok)
		}
	}
}
