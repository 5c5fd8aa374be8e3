package transaction

import "time"

// Range is a half-open interval [Start, End) in UTC. A nil *Range passed
// to the repository matches all records.
type Range struct {
	Start time.Time
	End   time.Time
}

// MonthRange returns the range covering the given calendar month in UTC:
// day 1 of the month, inclusive, through day 1 of the next month,
// exclusive. December rolls over to January of the following year.
func MonthRange(year int, month time.Month) Range {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	return Range{Start: start, End: start.AddDate(0, 1, 0)}
}
