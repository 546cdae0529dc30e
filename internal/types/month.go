package types

import (
	"fmt"
	"strings"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month that d is in.
func MonthOf(d Date) Month {
	return NewMonth(d.Year(), d.Month())
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return NewMonth(t.Year(), t.Month()), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Everything but the year and month of the value is ignored, so
// "2024-05" and "2024-05-12" both parse to May 2024.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	if len(value) > len("2006-01") {
		d, err := ParseDate(value)
		if err != nil {
			return err
		}

		*m = MonthOf(d)
		return nil
	}

	month, err := ParseMonth(value)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// UnmarshalParam implements gin's BindUnmarshaler for query binding.
func (m *Month) UnmarshalParam(param string) error {
	return m.UnmarshalJSON([]byte(param))
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// First returns the first day of the month.
func (m Month) First() Date {
	return Date(time.Time(m))
}

// Last returns the last day of the month.
func (m Month) Last() Date {
	return m.First().MonthEnd()
}

// Days returns every day of the month.
func (m Month) Days() []Date {
	return Range(m.First(), m.Last())
}

// Contains reports whether d is in the month.
func (m Month) Contains(d Date) bool {
	return d.Year() == time.Time(m).Year() && d.Month() == time.Time(m).Month()
}
