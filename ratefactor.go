package emicalc

import "github.com/shopspring/decimal"

// rateFactorMinus1 computes the periodic rate factor for one interest
// period inside its owning repayment period.
//
// The general shape is
//
//	rate * (multiplier * repayEvery / daysInYear) * (actualDays / calculatedDays)
//
// where multiplier is 1 for daily, 7 for weekly and the month length
// at the sub-period start for monthly schedules, actualDays is the
// interest period's own span and calculatedDays is the owning
// repayment period's span. The last ratio scales the factor down for
// sub-periods created by mid-period disbursements or corrections.
//
// Under the actual/actual year convention a period crossing a year
// end is instead priced as rate * repayEvery * yearSpanFraction, so
// the days on each side of December 31 are weighed against their own
// calendar year.
func rateFactorMinus1(m *ScheduleModel, rp *RepaymentPeriod, ip *InterestPeriod) Decimal {
	mc := m.MC
	rate := m.InterestRate(ip.FromDate)
	every := decimal.NewFromInt(int64(m.Terms.RepayEvery))

	if m.Terms.DaysInYear == DaysInYearActual && ip.FromDate.Year() != ip.DueDate.Year() {
		frac := yearSpanFraction(mc, ip.FromDate, ip.DueDate)
		return mc.RoundToScale(rate.Mul(every.Mul(frac)))
	}

	var multiplier int64
	switch m.Terms.Frequency {
	case FrequencyDays:
		multiplier = 1
	case FrequencyWeeks:
		multiplier = 7
	case FrequencyMonths:
		multiplier = int64(daysInMonthOf(m.Terms.DaysInMonth, ip.FromDate))
	default:
		// NewScheduleModel 已校验频率，纯粹兜底
		panic(ErrUnsupportedFrequency)
	}

	actual := decimal.NewFromInt(DaysBetween(ip.FromDate, ip.DueDate))
	calculated := decimal.NewFromInt(DaysBetween(rp.FromDate, rp.DueDate))
	daysInYear := decimal.NewFromInt(int64(daysInYearOf(m.Terms.DaysInYear, ip.FromDate)))

	rf := rate.
		Mul(mc.Div(every.Mul(decimal.NewFromInt(multiplier)), daysInYear)).
		Mul(mc.Div(actual, calculated))
	return mc.RoundToScale(rf)
}

// calculateRateFactors 重算一个还款期内全部子期的利率因子
func calculateRateFactors(m *ScheduleModel, rp *RepaymentPeriod) {
	for i := range rp.InterestPeriods {
		rp.InterestPeriods[i].RateFactorMinus1 = rateFactorMinus1(m, rp, &rp.InterestPeriods[i])
	}
}
