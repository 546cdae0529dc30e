package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrIDNotUnique      = errors.New("a resource with this ID already exists in the dataset")
)

// Validation errors
var (
	ErrDatasetNameInvalid   = errors.New("dataset names must start with a lowercase letter or digit and may only contain lowercase letters, digits, '-' and '_', with at most 64 characters")
	ErrAmountNegative       = errors.New("amounts must not be negative")
	ErrExpenseTypeUnknown   = errors.New("the expense type must be one of 'recurring', 'casual', 'scheduled' or 'installment'")
	ErrIncomeTypeUnknown    = errors.New("the income type must be one of 'recurring' or 'casual'")
	ErrCardTypeUnknown      = errors.New("the card type must be one of 'credit' or 'debit'")
	ErrFrequencyUnknown     = errors.New("the frequency must be one of 'weekly', 'biweekly', 'monthly' or 'bimonthly'")
	ErrPaymentMethodUnknown = errors.New("the payment method must be one of 'credit', 'debit' or 'cash'")
	ErrDayOfWeekInvalid     = errors.New("the day of week must be between 0 (Sunday) and 6 (Saturday)")
	ErrDayOfMonthInvalid    = errors.New("days of month must be between 1 and 31")
	ErrDateMissing          = errors.New("a date must be set")
	ErrPaymentCountInvalid  = errors.New("installments need at least one payment and exactly numberOfPayments payment records")
	ErrPaymentIndexInvalid  = errors.New("there is no payment with this index")
	ErrGoalStatusUnknown    = errors.New("the goal status must be one of 'pending', 'saved', 'postponed' or 'spent'")
)
