package emicalc

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodBoundary 还款期边界：[FromDate, DueDate)
type PeriodBoundary struct {
	FromDate time.Time
	DueDate  time.Time
}

// InterestPeriod is a sub-period of a repayment period over which the
// outstanding balance is constant. Disbursements and balance
// corrections split repayment periods into interest periods, and each
// interest period carries its own rate factor sized to its actual day
// span.
//
// OutstandingBalance is the balance at the start of the sub-period,
// before the sub-period's own disbursement is applied.
type InterestPeriod struct {
	FromDate time.Time
	DueDate  time.Time

	Disbursement      Money
	BalanceCorrection Money

	RateFactorMinus1 Decimal

	OutstandingBalance Money
	InterestDue        Money
}

// RepaymentPeriod 单个还款期：一期 EMI 对应的本息拆分与期末余额
type RepaymentPeriod struct {
	FromDate time.Time
	DueDate  time.Time

	EMI Money

	DuePrincipal Money
	DueInterest  Money

	PaidPrincipal Money
	PaidInterest  Money

	// InitialBalance 期初余额（不含本期放款）
	InitialBalance Money
	// OutstandingLoanBalance 期末剩余本金
	OutstandingLoanBalance Money

	InterestPeriods []InterestPeriod
}

// RateFactorPlus1 returns 1 plus the sum of the period's interest
// period rate factors. Summing rather than compounding within a
// period matches the annuity identity the EMI solve is built on: the
// period interest equals the period-start balance times this factor
// minus one, as long as the balance only moves at sub-period
// boundaries.
func (rp *RepaymentPeriod) RateFactorPlus1(mc MathContext) Decimal {
	sum := one
	for i := range rp.InterestPeriods {
		sum = sum.Add(rp.InterestPeriods[i].RateFactorMinus1)
	}
	return mc.RoundToScale(sum)
}

// DisbursedInPeriod 本期内全部放款之和
func (rp *RepaymentPeriod) DisbursedInPeriod() Money {
	total := Zero(rp.EMI.Currency())
	for i := range rp.InterestPeriods {
		total = total.Add(rp.InterestPeriods[i].Disbursement)
	}
	return total
}

// IsFullyPaid 本期是否已结清（已还本息合计不小于 EMI）
func (rp *RepaymentPeriod) IsFullyPaid() bool {
	return !rp.PaidPrincipal.Add(rp.PaidInterest).LessThan(rp.EMI)
}

// ScheduleModel is the in-memory amortization schedule: repayment
// periods in due-date order, the loan terms they were generated from,
// and the math context every derived value is computed under.
type ScheduleModel struct {
	Periods []RepaymentPeriod
	Terms   LoanTerms

	// InstallmentMultiplesOf EMI 取整步长，0 表示不取整
	InstallmentMultiplesOf int64

	MC MathContext
}

// NewScheduleModel builds an empty schedule over the given period
// boundaries. Each repayment period starts with a single interest
// period spanning the whole period and all monetary fields at zero.
func NewScheduleModel(boundaries []PeriodBoundary, terms LoanTerms, installmentMultiplesOf int64, mc MathContext) (*ScheduleModel, error) {
	if len(boundaries) == 0 {
		return nil, ErrEmptySchedule
	}
	switch terms.Frequency {
	case FrequencyDays, FrequencyWeeks, FrequencyMonths:
	default:
		return nil, ErrUnsupportedFrequency
	}
	if terms.RepayEvery < 1 || terms.AnnualNominalRate.IsNegative() {
		return nil, ErrInvalidTerms
	}
	mc = mc.normalized()
	zero := Zero(terms.Currency)
	periods := make([]RepaymentPeriod, 0, len(boundaries))
	for _, b := range boundaries {
		if !b.DueDate.After(b.FromDate) {
			return nil, ErrInvalidTerms
		}
		periods = append(periods, RepaymentPeriod{
			FromDate:               b.FromDate,
			DueDate:                b.DueDate,
			EMI:                    zero,
			DuePrincipal:           zero,
			DueInterest:            zero,
			PaidPrincipal:          zero,
			PaidInterest:           zero,
			InitialBalance:         zero,
			OutstandingLoanBalance: zero,
			InterestPeriods: []InterestPeriod{{
				FromDate:           b.FromDate,
				DueDate:            b.DueDate,
				Disbursement:       zero,
				BalanceCorrection:  zero,
				RateFactorMinus1:   decimal.Zero,
				OutstandingBalance: zero,
				InterestDue:        zero,
			}},
		})
	}
	return &ScheduleModel{
		Periods:                periods,
		Terms:                  terms,
		InstallmentMultiplesOf: installmentMultiplesOf,
		MC:                     mc,
	}, nil
}

// Currency 计划币种
func (m *ScheduleModel) Currency() Currency { return m.Terms.Currency }

// Zero 计划币种的零值金额
func (m *ScheduleModel) Zero() Money { return Zero(m.Terms.Currency) }

// RepaymentPeriodByDueDate 按到期日精确查找还款期
func (m *ScheduleModel) RepaymentPeriodByDueDate(dueDate time.Time) (*RepaymentPeriod, bool) {
	for i := range m.Periods {
		if SameDate(m.Periods[i].DueDate, dueDate) {
			return &m.Periods[i], true
		}
	}
	return nil, false
}

// RelatedRepaymentPeriods returns pointers to every period whose due
// date falls on or after fromDueDate. The zero time selects the whole
// schedule.
func (m *ScheduleModel) RelatedRepaymentPeriods(fromDueDate time.Time) []*RepaymentPeriod {
	related := make([]*RepaymentPeriod, 0, len(m.Periods))
	for i := range m.Periods {
		if fromDueDate.IsZero() || CompareDate(m.Periods[i].DueDate, fromDueDate) >= 0 {
			related = append(related, &m.Periods[i])
		}
	}
	return related
}

// InterestRate returns the annual nominal rate effective on date, as
// a fraction. The rate is flat over the whole schedule for now; the
// date parameter keeps the call sites ready for time-varying rates.
func (m *ScheduleModel) InterestRate(date time.Time) Decimal {
	_ = date
	return m.MC.Div(m.Terms.AnnualNominalRate, divisor100)
}

// owningPeriod 返回覆盖 date 的还款期；晚于计划末期时返回最后一期
func (m *ScheduleModel) owningPeriod(date time.Time) *RepaymentPeriod {
	for i := range m.Periods {
		if CompareDate(date, m.Periods[i].DueDate) < 0 {
			return &m.Periods[i]
		}
	}
	return &m.Periods[len(m.Periods)-1]
}

// ChangeOutstandingBalance records a disbursement or balance
// correction effective on date. When date matches an existing
// interest period start the amounts merge into that sub-period;
// otherwise the covering sub-period splits at date and the amounts
// land on the new tail. Returns the owning repayment period, or nil
// when date is before the schedule starts.
func (m *ScheduleModel) ChangeOutstandingBalance(date time.Time, disbursement, correction Money) *RepaymentPeriod {
	if CompareDate(date, m.Periods[0].FromDate) < 0 {
		return nil
	}
	rp := m.owningPeriod(date)
	for i := range rp.InterestPeriods {
		ip := &rp.InterestPeriods[i]
		if SameDate(ip.FromDate, date) {
			ip.Disbursement = ip.Disbursement.Add(disbursement)
			ip.BalanceCorrection = ip.BalanceCorrection.Add(correction)
			return rp
		}
	}
	zero := m.Zero()
	for i := range rp.InterestPeriods {
		ip := &rp.InterestPeriods[i]
		if CompareDate(ip.FromDate, date) < 0 && CompareDate(date, ip.DueDate) < 0 {
			// 在 date 处切开子期，新尾段承载本次变动
			tail := InterestPeriod{
				FromDate:           date,
				DueDate:            ip.DueDate,
				Disbursement:       disbursement,
				BalanceCorrection:  correction,
				RateFactorMinus1:   decimal.Zero,
				OutstandingBalance: zero,
				InterestDue:        zero,
			}
			ip.DueDate = date
			rp.InterestPeriods = append(rp.InterestPeriods, InterestPeriod{})
			copy(rp.InterestPeriods[i+2:], rp.InterestPeriods[i+1:])
			rp.InterestPeriods[i+1] = tail
			return rp
		}
	}
	// date 落在最后一期到期日之后，补一个最短子期
	rp.InterestPeriods = append(rp.InterestPeriods, InterestPeriod{
		FromDate:           date,
		DueDate:            date.AddDate(0, 0, 1),
		Disbursement:       disbursement,
		BalanceCorrection:  correction,
		RateFactorMinus1:   decimal.Zero,
		OutstandingBalance: zero,
		InterestDue:        zero,
	})
	return rp
}

// DeepCopy 返回完全独立的计划副本，用于试算和查询投影
func (m *ScheduleModel) DeepCopy() *ScheduleModel {
	cp := &ScheduleModel{
		Periods:                make([]RepaymentPeriod, len(m.Periods)),
		Terms:                  m.Terms,
		InstallmentMultiplesOf: m.InstallmentMultiplesOf,
		MC:                     m.MC,
	}
	copy(cp.Periods, m.Periods)
	for i := range cp.Periods {
		ips := make([]InterestPeriod, len(m.Periods[i].InterestPeriods))
		copy(ips, m.Periods[i].InterestPeriods)
		cp.Periods[i].InterestPeriods = ips
	}
	return cp
}
