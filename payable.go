package emicalc

import "time"

// PayableDetails 某一期在给定结清日的应收快照
type PayableDetails struct {
	EMI                Money
	PayablePrincipal   Money
	PayableInterest    Money
	OutstandingBalance Money
}

// GetPayableDetails projects what would be owed on the period due on
// periodDueDate if it were settled on payDate: the installment, its
// principal and interest split with accrual stopped at payDate, and
// the balance the payoff would be computed against.
//
// The projection runs on a deep copy, the schedule itself is never
// touched. A payDate outside the period is clamped to the period.
func (c *Calculator) GetPayableDetails(m *ScheduleModel, periodDueDate, payDate time.Time) (PayableDetails, error) {
	cp := m.DeepCopy()
	rp, ok := cp.RepaymentPeriodByDueDate(periodDueDate)
	if !ok {
		return PayableDetails{}, ErrPeriodNotFound
	}

	target := payDate
	if CompareDate(target, rp.FromDate) < 0 {
		target = rp.FromDate
	}
	if CompareDate(target, rp.DueDate) > 0 {
		target = rp.DueDate
	}

	zero := cp.Zero()
	switch {
	case SameDate(target, rp.FromDate):
		// 期初结清：把当期放款挪到零长度子期，避免被截断归零
		head := &rp.InterestPeriods[0]
		carried := InterestPeriod{
			FromDate:           rp.FromDate,
			DueDate:            rp.FromDate,
			Disbursement:       head.Disbursement,
			BalanceCorrection:  head.BalanceCorrection,
			OutstandingBalance: zero,
			InterestDue:        zero,
		}
		head.Disbursement = zero
		head.BalanceCorrection = zero
		rp.InterestPeriods = append([]InterestPeriod{carried}, rp.InterestPeriods...)
	case SameDate(target, rp.DueDate):
		// 到期日结清，整期计息，无需切分
	default:
		cp.ChangeOutstandingBalance(target, zero, zero)
	}

	calculateRateFactors(cp, rp)
	c.calculatePrincipalInterestComponents(cp, rp, target)

	emi := rp.EMI
	payableInterest := rp.DueInterest
	outstanding := rp.OutstandingLoanBalance.Add(rp.DuePrincipal)
	if outstanding.Add(payableInterest).LessThan(emi) {
		// 余额不足一期:EMI 压缩到实际可结清额
		emi = outstanding.Add(payableInterest).Add(rp.PaidInterest).Add(rp.PaidPrincipal)
	}

	return PayableDetails{
		EMI:                emi,
		PayablePrincipal:   emi.Sub(payableInterest),
		PayableInterest:    payableInterest,
		OutstandingBalance: outstanding,
	}, nil
}
