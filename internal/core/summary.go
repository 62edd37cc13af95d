package core

// SumForDate returns the total amount of the records whose Date equals date.
// Records for other dates are ignored; no records means 0, not an error.
func SumForDate(date string, records []Record) int64 {
	var total int64
	for _, r := range records {
		if r.Date == date {
			total += r.Amount
		}
	}
	return total
}
