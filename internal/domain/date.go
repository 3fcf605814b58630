package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CalendarDate is a civil date without a time component. It is kept as
// year/month/day so that formatting never round-trips through a
// timezone-sensitive parse (an ISO timestamp parsed as UTC shifts a day
// for negative UTC offsets).
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// Today returns the current calendar date in local time.
func Today() CalendarDate {
	now := time.Now()
	return CalendarDate{Year: now.Year(), Month: now.Month(), Day: now.Day()}
}

// NewCalendarDate validates the components against the real calendar.
func NewCalendarDate(year int, month time.Month, day int) (CalendarDate, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return CalendarDate{}, fmt.Errorf("invalid calendar date %04d-%02d-%02d", year, month, day)
	}
	return CalendarDate{Year: year, Month: month, Day: day}, nil
}

// ParseCalendarDate parses a "YYYY-MM-DD" string by splitting its
// components directly.
func ParseCalendarDate(s string) (CalendarDate, error) {
	parts := strings.SplitN(s, "-", 3)
	if len(parts) != 3 {
		return CalendarDate{}, fmt.Errorf("invalid calendar date %q", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid calendar date %q", s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid calendar date %q", s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid calendar date %q", s)
	}
	return NewCalendarDate(year, time.Month(month), day)
}

func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// String renders the ISO form "YYYY-MM-DD".
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Display renders a human label like "15 Dec 2023" from the stored
// components.
func (d CalendarDate) Display() string {
	return fmt.Sprintf("%d %s %04d", d.Day, d.Month.String()[:3], d.Year)
}

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("calendar date must be a string: %w", err)
	}
	if s == "" {
		*d = CalendarDate{}
		return nil
	}
	parsed, err := ParseCalendarDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
