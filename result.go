package emicalc

import "github.com/shopspring/decimal"

// EMICalculationResult 一次 EMI 求解的产物：期供金额与逐期利率因子。
// 因子按相关还款期顺序排列，通过游标逐个读取。
type EMICalculationResult struct {
	emi               Money
	rateFactorsMinus1 []Decimal
	cursor            int
}

func newEMICalculationResult(emi Money, rateFactorsMinus1 []Decimal) *EMICalculationResult {
	return &EMICalculationResult{emi: emi, rateFactorsMinus1: rateFactorsMinus1}
}

// EMI 求解得到的等额期供
func (r *EMICalculationResult) EMI() Money { return r.emi }

// NextRateFactorMinus1 returns the next rate factor in period order
// and advances the cursor. Reading past the end yields zero.
func (r *EMICalculationResult) NextRateFactorMinus1() Decimal {
	if r.cursor >= len(r.rateFactorsMinus1) {
		return decimal.Zero
	}
	rf := r.rateFactorsMinus1[r.cursor]
	r.cursor++
	return rf
}

// ResetCursor 重置因子游标，便于再次遍历
func (r *EMICalculationResult) ResetCursor() { r.cursor = 0 }
