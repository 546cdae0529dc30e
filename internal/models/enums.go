package models

type ExpenseType string

const (
	ExpenseRecurring   ExpenseType = "recurring"
	ExpenseCasual      ExpenseType = "casual"
	ExpenseScheduled   ExpenseType = "scheduled"
	ExpenseInstallment ExpenseType = "installment"
)

func (t ExpenseType) Valid() bool {
	switch t {
	case ExpenseRecurring, ExpenseCasual, ExpenseScheduled, ExpenseInstallment:
		return true
	}
	return false
}

type IncomeType string

const (
	IncomeRecurring IncomeType = "recurring"
	IncomeCasual    IncomeType = "casual"
)

func (t IncomeType) Valid() bool {
	return t == IncomeRecurring || t == IncomeCasual
}

type CardType string

const (
	CardCredit CardType = "credit"
	CardDebit  CardType = "debit"
)

func (t CardType) Valid() bool {
	return t == CardCredit || t == CardDebit
}

// Frequency is the recurrence of an expense, income or installment plan.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyBimonthly Frequency = "bimonthly"
)

func (f Frequency) valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyBimonthly:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
	PaymentCash   PaymentMethod = "cash"
)

func (p PaymentMethod) valid() bool {
	switch p {
	case PaymentCredit, PaymentDebit, PaymentCash:
		return true
	}
	return false
}

// GoalStatus is the state of a savings goal.
//
// A goal starts as pending. Pending goals can be saved or postponed,
// saved goals can be spent. Postponed and spent are final.
type GoalStatus string

const (
	GoalPending   GoalStatus = "pending"
	GoalSaved     GoalStatus = "saved"
	GoalPostponed GoalStatus = "postponed"
	GoalSpent     GoalStatus = "spent"
)

func (s GoalStatus) Valid() bool {
	switch s {
	case GoalPending, GoalSaved, GoalPostponed, GoalSpent:
		return true
	}
	return false
}
