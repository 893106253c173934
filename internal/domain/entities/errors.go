package entities

import (
	"errors"
	"fmt"
)

// Error kinds returned by the order/ledger core. Callers match them with errors.Is.
var (
	ErrInvalidTransition      = errors.New("invalid transition")
	ErrInvalidSchedule        = errors.New("invalid installment schedule")
	ErrOverpaidSchedule       = errors.New("paid installments exceed the payable total")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrNotFound               = errors.New("not found")
	ErrValidation             = errors.New("validation failed")
	ErrCustomerBlocked        = errors.New("customer blocked for delinquency")
)

// RuleError wraps one of the error kinds with a human readable detail.
type RuleError struct {
	Err     error
	Details string
}

func (e *RuleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

func newRuleError(kind error, format string, args ...any) error {
	return &RuleError{Err: kind, Details: fmt.Sprintf(format, args...)}
}

func InvalidTransitionError(format string, args ...any) error {
	return newRuleError(ErrInvalidTransition, format, args...)
}

func InvalidScheduleError(format string, args ...any) error {
	return newRuleError(ErrInvalidSchedule, format, args...)
}

func OverpaidScheduleError(format string, args ...any) error {
	return newRuleError(ErrOverpaidSchedule, format, args...)
}

func ConcurrentModificationError(format string, args ...any) error {
	return newRuleError(ErrConcurrentModification, format, args...)
}

func NotFoundError(format string, args ...any) error {
	return newRuleError(ErrNotFound, format, args...)
}

func ValidationError(format string, args ...any) error {
	return newRuleError(ErrValidation, format, args...)
}

func CustomerBlockedError(format string, args ...any) error {
	return newRuleError(ErrCustomerBlocked, format, args...)
}
