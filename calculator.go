package emicalc

import (
	"time"

	"github.com/shopspring/decimal"
)

// Calculator mutates a ScheduleModel in response to loan events and
// keeps the whole schedule consistent after each one: rate factors,
// period balances, the equal installment value and the closing
// residual are all recomputed before a call returns.
//
// Calculator 本身无状态，可按零值直接使用。
type Calculator struct{}

// AddDisbursement 记录一笔放款并重算受影响期及其后全部期的 EMI
func (c *Calculator) AddDisbursement(m *ScheduleModel, disbursementDate time.Time, amount Money) {
	rp := m.ChangeOutstandingBalance(disbursementDate, amount, m.Zero())
	if rp == nil {
		// 放款日早于计划起点，直接忽略
		return
	}
	c.calculateEMIValueAndRateFactors(m, rp.DueDate)
}

// AddBalanceCorrection applies a balance correction effective on date.
// Corrections shift the interest-bearing balance without re-solving
// the installment value; only rate factors of the split period, the
// running balances and the closing residual are refreshed.
func (c *Calculator) AddBalanceCorrection(m *ScheduleModel, date time.Time, correction Money) {
	rp := m.ChangeOutstandingBalance(date, m.Zero(), correction)
	if rp == nil {
		return
	}
	calculateRateFactors(m, rp)
	c.calculateOutstandingBalance(m)
	c.reconcileLastUnpaidPeriodEMI(m)
	c.reconcileLastUnpaidPeriodEMI(m)
}

// PayPrincipal books a principal repayment against the period due on
// periodDueDate. The balance correction stops interest accrual from
// the transaction date, or from the due date when the payment arrives
// late.
func (c *Calculator) PayPrincipal(m *ScheduleModel, periodDueDate, transactionDate time.Time, amount Money) error {
	rp, ok := m.RepaymentPeriodByDueDate(periodDueDate)
	if !ok {
		return ErrPeriodNotFound
	}
	rp.PaidPrincipal = rp.PaidPrincipal.Add(amount)
	effectiveDate := transactionDate
	if CompareDate(effectiveDate, periodDueDate) > 0 {
		effectiveDate = periodDueDate
	}
	c.AddBalanceCorrection(m, effectiveDate, amount.Negate())
	return nil
}

// PayInterest 记录一笔利息还款，仅影响该期的待收利息
func (c *Calculator) PayInterest(m *ScheduleModel, periodDueDate, transactionDate time.Time, amount Money) error {
	_ = transactionDate
	rp, ok := m.RepaymentPeriodByDueDate(periodDueDate)
	if !ok {
		return ErrPeriodNotFound
	}
	rp.PaidInterest = rp.PaidInterest.Add(amount)
	c.calculateOutstandingBalance(m)
	c.reconcileLastUnpaidPeriodEMI(m)
	c.reconcileLastUnpaidPeriodEMI(m)
	return nil
}

// ChangeInterestRate 暂不支持浮动利率调整
func (c *Calculator) ChangeInterestRate(m *ScheduleModel, effectiveDate time.Time, newRate Decimal) error {
	_, _, _ = m, effectiveDate, newRate
	return ErrUnsupportedOperation
}

// calculateEMIValueAndRateFactors 重算流水线：
// 因子 → 余额 → 解 EMI → 余额 → 尾期轧差 → 漂移修正
func (c *Calculator) calculateEMIValueAndRateFactors(m *ScheduleModel, fromDueDate time.Time) {
	related := m.RelatedRepaymentPeriods(fromDueDate)
	for _, rp := range related {
		calculateRateFactors(m, rp)
	}
	c.calculateOutstandingBalance(m)
	c.calculateEMIOnPeriods(m, related)
	c.calculateOutstandingBalance(m)
	c.reconcileLastUnpaidPeriodEMI(m)
	c.reconcileLastUnpaidPeriodEMI(m)
	c.adjustEMIIfNeeded(m, related)
}

// calculateEMIOnPeriods solves the annuity equation over the related
// periods and writes the resulting installment on each of them.
//
//	EMI = rateFactorPlus1N * outstandingBalance / fnResult
//
// where rateFactorPlus1N is the product of the period factors and
// fnResult folds fn = 1 + fnPrev * factor over every period after the
// first.
func (c *Calculator) calculateEMIOnPeriods(m *ScheduleModel, related []*RepaymentPeriod) *EMICalculationResult {
	if len(related) == 0 {
		return newEMICalculationResult(m.Zero(), nil)
	}
	mc := m.MC

	rateFactorPlus1N := one
	fnResult := one
	factors := make([]Decimal, 0, len(related))
	for i, rp := range related {
		factor := rp.RateFactorPlus1(mc)
		factors = append(factors, factor.Sub(one))
		rateFactorPlus1N = mc.RoundToScale(rateFactorPlus1N.Mul(factor))
		if i > 0 {
			// fn = 1 + fnPrev * factor
			fnResult = mc.RoundToScale(one.Add(fnResult.Mul(factor)))
		}
	}

	opening := m.Zero()
	if prev, ok := m.RepaymentPeriodByDueDate(related[0].FromDate); ok {
		opening = prev.OutstandingLoanBalance
	}
	opening = opening.Add(related[0].DisbursedInPeriod())

	emiValue := mc.Div(rateFactorPlus1N.Mul(opening.Amount()), fnResult)
	emi := NewMoney(emiValue, m.Currency()).RoundToMultiplesOf(m.InstallmentMultiplesOf)
	for _, rp := range related {
		rp.EMI = emi
	}
	return newEMICalculationResult(emi, factors)
}

// calculateOutstandingBalance 从首期起顺序重算每期的本息拆分与期末余额
func (c *Calculator) calculateOutstandingBalance(m *ScheduleModel) {
	balance := m.Zero()
	for i := range m.Periods {
		rp := &m.Periods[i]
		rp.InitialBalance = balance
		c.calculatePrincipalInterestComponents(m, rp, time.Time{})
		balance = rp.OutstandingLoanBalance
	}
}

// calculatePrincipalInterestComponents recomputes one period from its
// initial balance: sub-period balances, interest, the due split and
// the closing balance. Sub-periods due after the till horizon are
// zeroed out, which the payoff projection uses to stop accrual at the
// payoff date. A zero till means no horizon.
func (c *Calculator) calculatePrincipalInterestComponents(m *ScheduleModel, rp *RepaymentPeriod, till time.Time) {
	zero := m.Zero()
	outstanding := rp.InitialBalance
	correction := zero
	cumulatedInterest := zero

	for i := range rp.InterestPeriods {
		ip := &rp.InterestPeriods[i]
		if !till.IsZero() && CompareDate(ip.DueDate, till) > 0 {
			ip.InterestDue = zero
			ip.Disbursement = zero
			ip.BalanceCorrection = zero
			ip.OutstandingBalance = outstanding
			continue
		}
		ip.OutstandingBalance = outstanding
		outstanding = outstanding.Add(ip.Disbursement)
		correction = correction.Add(ip.BalanceCorrection)
		ip.InterestDue = outstanding.Add(correction).MulFactor(ip.RateFactorMinus1)
		cumulatedInterest = cumulatedInterest.Add(ip.InterestDue)
	}

	dueInterest := cumulatedInterest.Sub(rp.PaidInterest)
	if dueInterest.IsNegative() {
		dueInterest = zero
	}
	rp.DueInterest = dueInterest
	rp.DuePrincipal = rp.EMI.Sub(rp.DueInterest)
	rp.OutstandingLoanBalance = outstanding.Sub(rp.DuePrincipal)
}

// reconcileLastUnpaidPeriodEMI closes the schedule exactly: whatever
// residual is left between total obligations and total installments
// lands on the last period that still accepts payments.
//
//	residual = sum(disbursed) + sum(dueInterest) - sum(EMI)
//
// 轧差后余额重算一遍，残差为零则无事发生。
func (c *Calculator) reconcileLastUnpaidPeriodEMI(m *ScheduleModel) {
	residual := m.Zero()
	for i := range m.Periods {
		rp := &m.Periods[i]
		residual = residual.Add(rp.DisbursedInPeriod()).Add(rp.DueInterest).Sub(rp.EMI)
	}
	if residual.IsZero() {
		return
	}
	for i := len(m.Periods) - 1; i >= 0; i-- {
		rp := &m.Periods[i]
		if rp.IsFullyPaid() {
			continue
		}
		rp.EMI = rp.EMI.Add(residual)
		c.calculateOutstandingBalance(m)
		return
	}
}

// adjustEMIIfNeeded damps the drift between the last two installments
// that rounding of the per-period split can build up. The candidate
// installment is tried on a throwaway copy and committed only when it
// strictly shrinks the difference.
func (c *Calculator) adjustEMIIfNeeded(m *ScheduleModel, related []*RepaymentPeriod) {
	if len(related) < 2 {
		return
	}
	lowerHalf := int64(len(related) / 2)
	last := related[len(related)-1]
	penultimate := related[len(related)-2]
	diff := last.EMI.Sub(penultimate.EMI)
	if diff.IsZero() {
		return
	}
	threshold := NewMoney(decimal.NewFromInt(lowerHalf), m.Currency())
	if !diff.Abs().MulFactor(decimal.NewFromInt(100)).GreaterThan(threshold) {
		return
	}

	originalEMI := penultimate.EMI
	adjustment := NewMoney(m.MC.Div(diff.Amount(), decimal.NewFromInt(int64(len(related)))), m.Currency())
	candidate := originalEMI.Add(adjustment).RoundToMultiplesOf(m.InstallmentMultiplesOf)
	if candidate.Cmp(originalEMI) == 0 {
		return
	}

	firstDueDate := related[0].DueDate
	trial := m.DeepCopy()
	for i := range trial.Periods {
		if CompareDate(trial.Periods[i].DueDate, firstDueDate) >= 0 {
			trial.Periods[i].EMI = candidate
		}
	}
	c.calculateOutstandingBalance(trial)
	c.reconcileLastUnpaidPeriodEMI(trial)
	c.reconcileLastUnpaidPeriodEMI(trial)

	trialRelated := trial.RelatedRepaymentPeriods(firstDueDate)
	newDiff := trialRelated[len(trialRelated)-1].EMI.Sub(trialRelated[len(trialRelated)-2].EMI)
	if newDiff.Abs().Cmp(diff.Abs()) >= 0 {
		return
	}

	for i, rp := range related {
		src := trialRelated[i]
		rp.EMI = src.EMI
		rp.DueInterest = src.DueInterest
		rp.DuePrincipal = src.DuePrincipal
		rp.InitialBalance = src.InitialBalance
		rp.OutstandingLoanBalance = src.OutstandingLoanBalance
		rp.InterestPeriods = src.InterestPeriods
	}
}
