package emicalc

import (
	"time"

	"github.com/shopspring/decimal"
)

// IsLeapYear reports whether year is a leap year in the proleptic
// Gregorian calendar.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// YearDays returns the number of calendar days in year, 365 or 366.
func YearDays(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// MonthDays returns the number of calendar days in the month of t.
func MonthDays(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1).Day()
}

// DaysBetween returns the actual number of days from a to b, ignoring
// the time-of-day component. The result is negative when b is before a.
func DaysBetween(a, b time.Time) int64 {
	a = truncateToDate(a)
	b = truncateToDate(b)
	return int64(b.Sub(a).Hours() / 24)
}

// CompareDate 只按日期比较，忽略时分秒，返回 -1/0/1
func CompareDate(a, b time.Time) int {
	a = truncateToDate(a)
	b = truncateToDate(b)
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// SameDate 两个时间是否落在同一天
func SameDate(a, b time.Time) bool {
	return CompareDate(a, b) == 0
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysInYearOf resolves the day-count denominator for the year
// containing date: the fixed 360/364/365 conventions, or the actual
// calendar length under DaysInYearActual.
func daysInYearOf(dyt DaysInYearType, date time.Time) int {
	switch dyt {
	case DaysInYear360:
		return 360
	case DaysInYear364:
		return 364
	case DaysInYear365:
		return 365
	default:
		return YearDays(date.Year())
	}
}

// daysInMonthOf resolves the month length for date: a flat 30 under
// the 30-day convention, otherwise the actual calendar length.
func daysInMonthOf(dmt DaysInMonthType, date time.Time) int {
	if dmt == DaysInMonth30 {
		return 30
	}
	return MonthDays(date)
}

// yearSpanFraction expresses the span [from, due) as a fraction of a
// year under the actual/actual convention. Spans crossing a year end
// are split at December 31 and each slice is divided by the calendar
// length of its own year, so a slice falling in a leap year weighs
// slightly less than the same number of days in a common year.
func yearSpanFraction(mc MathContext, from, due time.Time) Decimal {
	frac := decimal.Zero
	cursor := truncateToDate(from)
	due = truncateToDate(due)
	year := cursor.Year()
	for cursor.Before(due) {
		cut := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		if !cut.After(cursor) {
			// 起点已经落在年末分界日上，归入下一年度
			year++
			continue
		}
		segEnd := due
		if cut.Before(due) {
			segEnd = cut
		}
		days := decimal.NewFromInt(DaysBetween(cursor, segEnd))
		frac = frac.Add(mc.Div(days, decimal.NewFromInt(int64(YearDays(year)))))
		cursor = segEnd
	}
	return frac
}
