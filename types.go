package emicalc

import "github.com/shopspring/decimal"

// Decimal 统一的高精度数值类型
type Decimal = decimal.Decimal

// RoundStrategy 舍入策略，scale 为保留的小数位数
type RoundStrategy = func(d decimal.Decimal, scale int32) decimal.Decimal

// DaysInMonthType 月天数口径
type DaysInMonthType string

// DaysInYearType 年天数口径
type DaysInYearType string

// RepaymentFrequency 还款频率单位，配合 RepayEvery 使用
type RepaymentFrequency string

// RollConvention 还款日跳期规则
type RollConvention string

const (
	DaysInMonthActual DaysInMonthType = "ACTUAL"
	DaysInMonth30     DaysInMonthType = "DAYS_30"
)

const (
	DaysInYearActual DaysInYearType = "ACTUAL"
	DaysInYear360    DaysInYearType = "DAYS_360"
	DaysInYear364    DaysInYearType = "DAYS_364"
	DaysInYear365    DaysInYearType = "DAYS_365"
)

const (
	FrequencyDays   RepaymentFrequency = "DAYS"
	FrequencyWeeks  RepaymentFrequency = "WEEKS"
	FrequencyMonths RepaymentFrequency = "MONTHS"
)

const (
	Unadjusted RollConvention = "UNADJUSTED"         //严格按日历算时间
	Following  RollConvention = "FOLLOWING"          //如果是节假日，向后挪
	Preceding  RollConvention = "PRECEDING"          //如果是节假日，向前挪
	ModFollow  RollConvention = "MODIFIED_FOLLOWING" //如果是节假日，向后挪，但如果跨月就向前挪
)

// LoanTerms 贷款产品配置，计划生成后视为只读
type LoanTerms struct {
	AnnualNominalRate Decimal // 名义年利率，百分比形式，如 9.4822 表示 9.4822%
	DaysInMonth       DaysInMonthType
	DaysInYear        DaysInYearType
	Frequency         RepaymentFrequency
	RepayEvery        int // 每 N 个频率单位还款一次
	Currency          Currency
}

// BankRound 银行家舍入，中间值与金额共用的默认策略
var BankRound = func(d decimal.Decimal, scale int32) decimal.Decimal { return d.RoundBank(scale) }
