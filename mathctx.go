package emicalc

import "github.com/shopspring/decimal"

// defaultScale 中间计算保留的小数位数
const defaultScale int32 = 12

// MathContext 计算上下文：中间值精度与舍入策略，作为值随计划模型传递
type MathContext struct {
	Scale int32
	Round RoundStrategy
}

// DefaultMathContext 返回 12 位小数 + 银行家舍入的默认上下文
func DefaultMathContext() MathContext {
	return MathContext{Scale: defaultScale, Round: BankRound}
}

func (mc MathContext) normalized() MathContext {
	if mc.Scale <= 0 {
		mc.Scale = defaultScale
	}
	if mc.Round == nil {
		mc.Round = BankRound
	}
	return mc
}

// Div 带保护位的除法，除数为零直接 panic
func (mc MathContext) Div(a, b Decimal) Decimal {
	if b.IsZero() {
		panic("emicalc: division by zero in rate calculation")
	}
	return a.DivRound(b, mc.Scale+3)
}

// RoundToScale 把中间结果收敛到上下文精度
func (mc MathContext) RoundToScale(d Decimal) Decimal {
	return mc.Round(d, mc.Scale)
}

var (
	one        = decimal.NewFromInt(1)
	divisor100 = decimal.NewFromInt(100)
)
