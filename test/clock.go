package test

import (
	"time"

	"github.com/weekly-savings/backend/internal/types"
)

// Today is the current day for all tests. It is a Wednesday.
var Today = types.NewDate(2024, time.May, 8)

// Clock returns noon of Today in UTC.
func Clock() time.Time {
	return Today.Time(time.UTC).Add(12 * time.Hour)
}
