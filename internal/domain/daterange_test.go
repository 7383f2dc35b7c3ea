package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustRange(t *testing.T, start, end string) DateRange {
	t.Helper()
	r, err := ParseDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestDateRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b [2]string
		want bool
	}{
		{"strictly inside", [2]string{"2024-06-01", "2024-06-10"}, [2]string{"2024-06-05", "2024-06-08"}, true},
		{"partial left", [2]string{"2024-06-01", "2024-06-10"}, [2]string{"2024-05-28", "2024-06-02"}, true},
		{"partial right", [2]string{"2024-06-01", "2024-06-10"}, [2]string{"2024-06-09", "2024-06-12"}, true},
		{"identical", [2]string{"2024-06-01", "2024-06-10"}, [2]string{"2024-06-01", "2024-06-10"}, true},
		{"enclosing", [2]string{"2024-06-05", "2024-06-06"}, [2]string{"2024-06-01", "2024-06-10"}, true},
		{"checkout equals checkin", [2]string{"2024-06-01", "2024-06-10"}, [2]string{"2024-06-10", "2024-06-12"}, false},
		{"checkin equals checkout", [2]string{"2024-06-10", "2024-06-12"}, [2]string{"2024-06-01", "2024-06-10"}, false},
		{"disjoint", [2]string{"2024-06-01", "2024-06-03"}, [2]string{"2024-07-01", "2024-07-03"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustRange(t, tt.a[0], tt.a[1])
			b := mustRange(t, tt.b[0], tt.b[1])
			assert.Equal(t, tt.want, a.Overlaps(b))
			assert.Equal(t, tt.want, b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestNewDateRange_RejectsEmptyAndInverted(t *testing.T) {
	_, err := NewDateRange(day("2024-06-10"), day("2024-06-10"))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewDateRange(day("2024-06-10"), day("2024-06-01"))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestNewDateRange_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)

	_, err := NewDateRange(start, end)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	r, err := NewDateRange(start, end.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, day("2024-06-01"), r.Start)
	assert.Equal(t, day("2024-06-02"), r.End)
	assert.Equal(t, 1, r.Nights())
}

func TestParseDateRange_BadFormat(t *testing.T) {
	_, err := ParseDateRange("06/01/2024", "2024-06-10")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseDateRange("2024-06-01", "tomorrow")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDateRange_Nights(t *testing.T) {
	assert.Equal(t, 4, mustRange(t, "2024-07-01", "2024-07-05").Nights())
	assert.Equal(t, 30, mustRange(t, "2024-06-01", "2024-07-01").Nights())
}
