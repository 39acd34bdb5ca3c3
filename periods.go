package emicalc

import "time"

// HolidayProvider 节假日判定，决定还款日的顺延方向
type HolidayProvider interface {
	IsHoliday(t time.Time) bool
}

// WeekendHolidayProvider 仅把周六周日视为假日的缺省实现
type WeekendHolidayProvider struct{}

func (WeekendHolidayProvider) IsHoliday(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func isBusinessDay(t time.Time, hp HolidayProvider) bool {
	return hp == nil || !hp.IsHoliday(t)
}

// applyRoll 按滚动惯例把名义日期落到营业日上
func applyRoll(date time.Time, roll RollConvention, hp HolidayProvider) time.Time {
	switch roll {
	case Following:
		for !isBusinessDay(date, hp) {
			date = date.AddDate(0, 0, 1)
		}
	case Preceding:
		for !isBusinessDay(date, hp) {
			date = date.AddDate(0, 0, -1)
		}
	case ModFollow:
		// 先向后找，跨月则改为向前
		rolled := date
		for !isBusinessDay(rolled, hp) {
			rolled = rolled.AddDate(0, 0, 1)
		}
		if rolled.Month() != date.Month() {
			rolled = date
			for !isBusinessDay(rolled, hp) {
				rolled = rolled.AddDate(0, 0, -1)
			}
		}
		date = rolled
	}
	return date
}

// NextPeriodDate returns the nominal due date one repayment interval
// after last, before any business-day roll is applied.
func NextPeriodDate(last time.Time, frequency RepaymentFrequency, every int) (time.Time, error) {
	if every < 1 {
		return time.Time{}, ErrInvalidTerms
	}
	switch frequency {
	case FrequencyDays:
		return last.AddDate(0, 0, every), nil
	case FrequencyWeeks:
		return last.AddDate(0, 0, 7*every), nil
	case FrequencyMonths:
		return last.AddDate(0, every, 0), nil
	default:
		return time.Time{}, ErrUnsupportedFrequency
	}
}

// BuildPeriodBoundaries generates count contiguous repayment periods
// starting at start. Nominal dates are always stepped from the
// original start so month-end schedules do not drift through short
// months, and each due date is then rolled to a business day.
func BuildPeriodBoundaries(start time.Time, count int, frequency RepaymentFrequency, every int, roll RollConvention, hp HolidayProvider) ([]PeriodBoundary, error) {
	if count <= 0 {
		return nil, ErrEmptySchedule
	}
	boundaries := make([]PeriodBoundary, 0, count)
	from := start
	for i := 1; i <= count; i++ {
		var nominal time.Time
		var err error
		switch frequency {
		case FrequencyDays:
			nominal = start.AddDate(0, 0, every*i)
		case FrequencyWeeks:
			nominal = start.AddDate(0, 0, 7*every*i)
		case FrequencyMonths:
			nominal = start.AddDate(0, every*i, 0)
		default:
			err = ErrUnsupportedFrequency
		}
		if err != nil {
			return nil, err
		}
		due := applyRoll(nominal, roll, hp)
		if !due.After(from) {
			return nil, ErrInvalidTerms
		}
		boundaries = append(boundaries, PeriodBoundary{FromDate: from, DueDate: due})
		from = due
	}
	return boundaries, nil
}
