// Package types implements the calendar types used by the savings backend.
package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a civil date. It carries no time of day and no time zone.
//
// The underlying time is always 00:00 UTC on that day, so comparisons
// between dates never depend on the location of the process.
type Date time.Time

// NewDate returns the date for year, month and day.
//
// Values outside their usual ranges are normalized the same way time.Date
// does it, e.g. February 31st becomes March 3rd (or 2nd in leap years).
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which t occurs in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a "YYYY-MM-DD" string. RFC3339 timestamps are accepted
// as well, in which case the date in the timestamp's offset is used.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err == nil {
		return DateOf(t), nil
	}

	t, rfcErr := time.Parse(time.RFC3339, s)
	if rfcErr != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format(dateLayout)
}

// Time returns the date as 00:00 at the same civil date in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

// MarshalJSON implements the json.Marshaler interface.
//
// The zero Date is encoded as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The value is expected to be a string in a format accepted by ParseDate.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// UnmarshalParam implements gin's BindUnmarshaler for query and URI binding.
func (d *Date) UnmarshalParam(param string) error {
	return d.UnmarshalJSON([]byte(param))
}

// Scan writes the value from the database.
//
// Depending on the declared column type, the SQLite driver hands us either a
// time.Time or the stored text.
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = DateOf(v.UTC())
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into a date", value)
	}

	return nil
}

func (d *Date) scanString(s string) error {
	if s == "" {
		*d = Date{}
		return nil
	}

	if len(s) >= len(dateLayout) {
		s = s[:len(dateLayout)]
	}

	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}

	*d = DateOf(parsed)
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}

	return d.String(), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "date"
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

func (d Date) Year() int {
	return time.Time(d).Year()
}

func (d Date) Month() time.Month {
	return time.Time(d).Month()
}

func (d Date) Day() int {
	return time.Time(d).Day()
}

func (d Date) Weekday() time.Weekday {
	return time.Time(d).Weekday()
}

// AddDays adds n days.
func (d Date) AddDays(n int) Date {
	return Date(time.Time(d).AddDate(0, 0, n))
}

// AddMonths adds n months.
//
// If the day does not exist in the target month, the last day of that
// month is used: January 31st plus one month is February 28th (or 29th).
func (d Date) AddMonths(n int) Date {
	first := time.Date(d.Year(), d.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)

	day := d.Day()
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}

	return NewDate(first.Year(), first.Month(), day)
}

// WithDay returns the date in the same month with the day of month set to day.
//
// Days past the end of the month overflow into the next month.
func (d Date) WithDay(day int) Date {
	return NewDate(d.Year(), d.Month(), day)
}

// WeekStart returns the Monday of the week d is in.
func (d Date) WeekStart() Date {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// WeekEnd returns the Sunday of the week d is in.
func (d Date) WeekEnd() Date {
	return d.WeekStart().AddDays(6)
}

// MonthStart returns the first day of the month d is in.
func (d Date) MonthStart() Date {
	return NewDate(d.Year(), d.Month(), 1)
}

// MonthEnd returns the last day of the month d is in.
func (d Date) MonthEnd() Date {
	return NewDate(d.Year(), d.Month(), daysIn(d.Year(), d.Month()))
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e are the same day.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// Contains reports whether t falls on d in t's location.
func (d Date) Contains(t time.Time) bool {
	return DateOf(t).Equal(d)
}

// Between reports whether d is in [start, end].
func (d Date) Between(start, end Date) bool {
	return !d.Before(start) && !d.After(end)
}

// DaysUntil returns the number of days from d to e. It is negative if e is before d.
func (d Date) DaysUntil(e Date) int {
	return int(time.Time(e).Sub(time.Time(d)).Hours() / 24)
}

// MonthsUntil returns the number of full months from d to e.
//
// A month only counts once the day of month of d has been reached again,
// so January 31st to February 28th is 0 months.
func (d Date) MonthsUntil(e Date) int {
	months := (e.Year()-d.Year())*12 + int(e.Month()) - int(d.Month())

	switch {
	case months > 0 && e.Day() < d.Day():
		months--
	case months < 0 && e.Day() > d.Day():
		months++
	}

	return months
}

// Range returns every day in [start, end]. It is empty if end is before start.
func Range(start, end Date) []Date {
	if end.Before(start) {
		return nil
	}

	days := make([]Date, 0, start.DaysUntil(end)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		days = append(days, d)
	}

	return days
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
