package emicalc

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var usd = Currency{Code: "USD", Decimals: 2}

func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func money(t *testing.T, s string) Money {
	t.Helper()
	return NewMoney(decimal.RequireFromString(s), usd)
}

func dec(t *testing.T, s string) Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func newSchedule(t *testing.T, rate string, start time.Time, count int, terms LoanTerms) *ScheduleModel {
	t.Helper()
	terms.AnnualNominalRate = dec(t, rate)
	terms.Currency = usd
	boundaries, err := BuildPeriodBoundaries(start, count, terms.Frequency, terms.RepayEvery, Unadjusted, nil)
	require.NoError(t, err)
	m, err := NewScheduleModel(boundaries, terms, 0, DefaultMathContext())
	require.NoError(t, err)
	return m
}

// monthlySchedule 30/360 月度计划，多数场景的默认配置
func monthlySchedule(t *testing.T, rate string, start time.Time, count int) *ScheduleModel {
	t.Helper()
	return newSchedule(t, rate, start, count, LoanTerms{
		DaysInMonth: DaysInMonth30,
		DaysInYear:  DaysInYear360,
		Frequency:   FrequencyMonths,
		RepayEvery:  1,
	})
}

func requireAmount(t *testing.T, want string, got Money) {
	t.Helper()
	require.True(t, got.Amount().Equal(decimal.RequireFromString(want)),
		"want %s, got %s", want, got.Amount())
}

func requireDecimal(t *testing.T, want string, got Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.RequireFromString(want)),
		"want %s, got %s", want, got)
}

func requirePeriod(t *testing.T, rp RepaymentPeriod, emi, dueInterest, duePrincipal, outstanding string) {
	t.Helper()
	requireAmount(t, emi, rp.EMI)
	requireAmount(t, dueInterest, rp.DueInterest)
	requireAmount(t, duePrincipal, rp.DuePrincipal)
	requireAmount(t, outstanding, rp.OutstandingLoanBalance)
}
