package emicalc

import "github.com/shopspring/decimal"

// Currency 货币定义：代码 + 展示小数位。金额一律按该位数做银行家舍入。
type Currency struct {
	Code     string
	Decimals int32
}

// Money is an immutable monetary amount tied to a currency. Every
// constructor and arithmetic result is rounded half-even to the
// currency's decimal places, so two Money values of the same currency
// always compare on equal footing.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney 构造金额，入参立即按币种精度做银行家舍入
func NewMoney(amount Decimal, c Currency) Money {
	return Money{amount: amount.RoundBank(c.Decimals), currency: c}
}

// Zero 返回该币种的零值金额
func Zero(c Currency) Money {
	return Money{amount: decimal.Zero, currency: c}
}

// Amount 返回底层十进制金额
func (m Money) Amount() Decimal { return m.amount }

// Currency 返回金额所属币种
func (m Money) Currency() Currency { return m.currency }

func (m Money) sameCurrency(o Money) {
	if m.currency.Code != o.currency.Code {
		// 混币运算是编码错误，不走 error 返回
		panic(ErrCurrencyMismatch)
	}
}

// Add 同币种相加，币种不一致直接 panic
func (m Money) Add(o Money) Money {
	m.sameCurrency(o)
	return Money{amount: m.amount.Add(o.amount), currency: m.currency}
}

// Sub 同币种相减
func (m Money) Sub(o Money) Money {
	m.sameCurrency(o)
	return Money{amount: m.amount.Sub(o.amount), currency: m.currency}
}

// MulFactor multiplies the amount by a unitless factor (for example a
// periodic rate factor) and rounds the product back to currency
// precision.
func (m Money) MulFactor(f Decimal) Money {
	return Money{amount: m.amount.Mul(f).RoundBank(m.currency.Decimals), currency: m.currency}
}

// Negate 取相反数
func (m Money) Negate() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency}
}

// Abs 取绝对值
func (m Money) Abs() Money {
	return Money{amount: m.amount.Abs(), currency: m.currency}
}

// IsZero 金额是否为零
func (m Money) IsZero() bool { return m.amount.IsZero() }

// IsNegative 金额是否为负
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

// Cmp 比较两个同币种金额，返回 -1/0/1
func (m Money) Cmp(o Money) int {
	m.sameCurrency(o)
	return m.amount.Cmp(o.amount)
}

// GreaterThan 是否大于另一金额
func (m Money) GreaterThan(o Money) bool { return m.Cmp(o) > 0 }

// LessThan 是否小于另一金额
func (m Money) LessThan(o Money) bool { return m.Cmp(o) < 0 }

// MinMoney 返回两者中较小的金额
func MinMoney(a, b Money) Money {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// RoundToMultiplesOf snaps the amount to the nearest multiple of the
// given step, half away from zero. A step of zero or less leaves the
// amount unchanged. Installment amounts configured in multiples (for
// example whole tens) go through here after the regular EMI solve.
func (m Money) RoundToMultiplesOf(step int64) Money {
	if step <= 0 {
		return m
	}
	s := decimal.NewFromInt(step)
	n := m.amount.DivRound(s, 0)
	return Money{amount: n.Mul(s).RoundBank(m.currency.Decimals), currency: m.currency}
}
