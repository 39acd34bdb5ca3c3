package emicalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	require.True(t, IsLeapYear(2024))
	require.True(t, IsLeapYear(2000))
	require.False(t, IsLeapYear(1900))
	require.False(t, IsLeapYear(2023))
}

func TestYearDays(t *testing.T) {
	require.Equal(t, 366, YearDays(2024))
	require.Equal(t, 365, YearDays(2023))
}

func TestMonthDays(t *testing.T) {
	require.Equal(t, 29, MonthDays(d(2024, time.February, 10)))
	require.Equal(t, 28, MonthDays(d(2023, time.February, 1)))
	require.Equal(t, 31, MonthDays(d(2024, time.January, 31)))
	require.Equal(t, 30, MonthDays(d(2024, time.April, 15)))
}

func TestDaysBetween(t *testing.T) {
	require.Equal(t, int64(31), DaysBetween(d(2024, time.January, 1), d(2024, time.February, 1)))
	require.Equal(t, int64(-31), DaysBetween(d(2024, time.February, 1), d(2024, time.January, 1)))
	require.Equal(t, int64(0), DaysBetween(d(2024, time.May, 5), d(2024, time.May, 5)))

	// 忽略时分秒
	late := time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC)
	require.Equal(t, int64(1), DaysBetween(late, d(2024, time.January, 2)))
}

func TestCompareDateIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.March, 1, 20, 30, 0, 0, time.UTC)

	require.Equal(t, 0, CompareDate(morning, evening))
	require.True(t, SameDate(morning, evening))
	require.Equal(t, -1, CompareDate(morning, d(2024, time.March, 2)))
	require.Equal(t, 1, CompareDate(d(2024, time.March, 2), evening))
}

func TestDaysInYearOf(t *testing.T) {
	require.Equal(t, 360, daysInYearOf(DaysInYear360, d(2024, time.June, 1)))
	require.Equal(t, 364, daysInYearOf(DaysInYear364, d(2024, time.June, 1)))
	require.Equal(t, 365, daysInYearOf(DaysInYear365, d(2024, time.June, 1)))
	require.Equal(t, 366, daysInYearOf(DaysInYearActual, d(2024, time.June, 1)))
	require.Equal(t, 365, daysInYearOf(DaysInYearActual, d(2023, time.June, 1)))
}

func TestDaysInMonthOf(t *testing.T) {
	require.Equal(t, 30, daysInMonthOf(DaysInMonth30, d(2024, time.January, 1)))
	require.Equal(t, 31, daysInMonthOf(DaysInMonthActual, d(2024, time.January, 1)))
	require.Equal(t, 29, daysInMonthOf(DaysInMonthActual, d(2024, time.February, 1)))
}

func TestYearSpanFractionAcrossYearEnd(t *testing.T) {
	mc := DefaultMathContext()

	// 2023-12-12 .. 2024-01-12: 19 天按 365 计，12 天按 366 计
	frac := yearSpanFraction(mc, d(2023, time.December, 12), d(2024, time.January, 12))
	requireDecimal(t, "0.084841679766450", frac)
}

func TestYearSpanFractionWithinOneYear(t *testing.T) {
	mc := DefaultMathContext()

	frac := yearSpanFraction(mc, d(2023, time.March, 1), d(2023, time.April, 1))
	requireDecimal(t, "0.084931506849315", frac)
}

func TestYearSpanFractionStartingOnYearEnd(t *testing.T) {
	mc := DefaultMathContext()

	// 起点正好是年末分界日，整段归入下一年
	frac := yearSpanFraction(mc, d(2023, time.December, 31), d(2024, time.January, 31))
	requireDecimal(t, "0.084699453551913", frac)
}
