package emicalc

import (
	"errors"
)

var (
	ErrPeriodNotFound       = errors.New("no repayment period found for due date")
	ErrUnsupportedFrequency = errors.New("unsupported repayment frequency")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrEmptySchedule        = errors.New("schedule has no repayment periods")
	ErrInvalidTerms         = errors.New("invalid loan terms")
	ErrCurrencyMismatch     = errors.New("currency mismatch")
)
