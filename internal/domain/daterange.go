package domain

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// DateRange is a half-open interval of calendar days [Start, End).
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange drops the time of day from both ends and rejects empty or inverted ranges.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: DateOf(start), End: DateOf(end)}
	if !r.Start.Before(r.End) {
		return DateRange{}, fmt.Errorf("%w: %s..%s", ErrInvalidInterval, r.Start.Format(DateLayout), r.End.Format(DateLayout))
	}
	return r, nil
}

func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: check_in must be YYYY-MM-DD", ErrValidation)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: check_out must be YYYY-MM-DD", ErrValidation)
	}
	return NewDateRange(s, e)
}

// Overlaps reports whether the two ranges share at least one night.
// A stay ending on the day another begins does not overlap it.
func (r DateRange) Overlaps(o DateRange) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

func (r DateRange) Nights() int {
	return int(r.End.Sub(r.Start).Hours()) / 24
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}

// DateOf returns midnight UTC of t's calendar date in t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
