package dateutil

import (
	"math"
	"time"
)

// daysPerYear is the mean Gregorian year length used for horizon math.
const daysPerYear = 365.25

// DaysBetween returns the number of whole days from one date to another.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// YearsBetween returns the fractional number of years from one date to
// another.
func YearsBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24 / daysPerYear
}

// TimeHorizon returns the number of whole years between the savings start
// date and the target date, rounded to the nearest year. Equal dates or a
// target before the start yield a non-positive horizon, which callers must
// reject before planning.
func TimeHorizon(start, target time.Time) int {
	return int(math.Round(float64(DaysBetween(start, target)) / daysPerYear))
}

// AddYears adds a specified number of years to a date.
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// IsLeapYear checks if a year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// BeginningOfYear returns the first day of the year for a given date.
func BeginningOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 1, 1, 0, 0, 0, 0, date.Location())
}
