// Package birthday runs Monte Carlo simulations of the birthday paradox.
//
// A sample is a list of day-of-year values drawn uniformly from [1, 365];
// the leap day is excluded by formatting against a non-leap reference year.
package birthday

import (
	"errors"
	"strconv"
	"time"

	"github.com/robalobadob/novelties/internal/rng"
)

const (
	DaysInYear = 365
	MinSize    = 2
	MaxSize    = 100

	referenceYear = 2022
)

var (
	ErrNotNumber  = errors.New("sample size is not a number")
	ErrOutOfRange = errors.New("sample size is out of range")
)

// Day is a day of the year in [1, 365].
type Day int

// String formats d as "Jan 02".
func (d Day) String() string {
	t := time.Date(referenceYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	return t.AddDate(0, 0, int(d)-1).Format("Jan 02")
}

// SampleDays draws count independent uniform days.
func SampleDays(src rng.Source, count int) []Day {
	days := make([]Day, count)
	for i := range days {
		days[i] = Day(src.IntN(DaysInYear) + 1)
	}
	return days
}

// FindCollision returns the first day seen twice while scanning days.
func FindCollision(days []Day) (Day, bool) {
	var seen [DaysInYear + 1]bool
	for _, d := range days {
		if d < 1 || d > DaysInYear {
			continue
		}
		if seen[d] {
			return d, true
		}
		seen[d] = true
	}
	return 0, false
}

// ParseSampleSize validates a requested sample size in [MinSize, MaxSize].
func ParseSampleSize(input string) (int, error) {
	n, err := strconv.ParseUint(input, 10, 64)
	if err != nil {
		return 0, ErrNotNumber
	}
	if n < MinSize || n > MaxSize {
		return 0, ErrOutOfRange
	}
	return int(n), nil
}

// ExactProbability is the closed-form chance, as a percentage, that at least
// two of n uniform days coincide.
func ExactProbability(n int) float64 {
	if n > DaysInYear {
		return 100
	}
	distinct := 1.0
	for i := 0; i < n; i++ {
		distinct *= float64(DaysInYear-i) / DaysInYear
	}
	return 100 * (1 - distinct)
}
