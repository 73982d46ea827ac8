package schedule

import (
	"fmt"
	"time"
)

// Month is a billing period in "YYYY-MM" form. The textual form sorts
// chronologically, so plain string comparison is enough to order periods.
type Month string

// ParseMonth validates a "YYYY-MM" string and returns it as a Month.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return "", fmt.Errorf("invalid month %q: %w", s, err)
	}
	return Month(t.Format("2006-01")), nil
}

// CurrentMonth returns the month containing now.
func CurrentMonth() Month {
	return Month(time.Now().Format("2006-01"))
}

// MonthOf extracts the month from an ISO date (YYYY-MM-DD).
func MonthOf(dateISO string) (Month, error) {
	t, err := time.Parse("2006-01-02", dateISO)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", dateISO, err)
	}
	return Month(t.Format("2006-01")), nil
}

// Add shifts the month by n calendar months, handling year rollover.
func (m Month) Add(n int) Month {
	t, err := time.Parse("2006-01", string(m))
	if err != nil {
		return m
	}
	return Month(t.AddDate(0, n, 0).Format("2006-01"))
}

// DateISO returns an ISO date inside the month on the given day of month.
// The day is clamped to [1, 28] so the result never spills into the next
// month regardless of month length.
func (m Month) DateISO(day int) string {
	if day < 1 {
		day = 1
	}
	if day > 28 {
		day = 28
	}
	return fmt.Sprintf("%s-%02d", string(m), day)
}

func (m Month) String() string { return string(m) }
