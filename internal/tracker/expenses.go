package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/weekly-savings/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type ExpenseFilter struct {
	Type      models.ExpenseType
	Name      string // Glob pattern, case insensitive
	Suspended *bool
}

// matchName reports if name matches the glob pattern. An empty pattern
// matches everything.
func matchName(pattern, name string) bool {
	if pattern == "" {
		return true
	}

	return glob.Glob(strings.ToLower(pattern), strings.ToLower(name))
}

func (t *Tracker) ListExpenses(ctx context.Context, dataset string, filter ExpenseFilter) ([]models.Expense, error) {
	db, err := t.read(ctx, dataset)
	if err != nil {
		return nil, err
	}

	q := db.Where("dataset = ?", dataset).Order("rowid")
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	if filter.Suspended != nil {
		q = q.Where("suspended = ?", *filter.Suspended)
	}

	var expenses []models.Expense
	err = q.Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return slices.DeleteFunc(expenses, func(e models.Expense) bool {
		return !matchName(filter.Name, e.Name)
	}), nil
}

func getExpense(tx *gorm.DB, dataset string, id uuid.UUID) (models.Expense, error) {
	var e models.Expense
	err := tx.Where("dataset = ? AND id = ?", dataset, id).First(&e).Error
	return e, err
}

func (t *Tracker) GetExpense(ctx context.Context, dataset string, id uuid.UUID) (models.Expense, error) {
	db, err := t.read(ctx, dataset)
	if err != nil {
		return models.Expense{}, err
	}

	return getExpense(db, dataset, id)
}

// preparePayments sets up the payment records of installments.
//
// The records of the previous version of the expense are kept as long as
// the number of payments stays the same. Otherwise, the total amount is split
// evenly into new, unpaid records.
func preparePayments(e *models.Expense, previous *models.Expense) {
	if e.Type != models.ExpenseInstallment {
		e.Payments = models.Payments{}
		return
	}

	if e.NumberOfPayments == 0 {
		e.NumberOfPayments = 1
	}

	if previous != nil && previous.Type == models.ExpenseInstallment && len(previous.Payments) == e.NumberOfPayments {
		e.Payments = previous.Payments
		return
	}

	e.Payments = models.EvenPayments(e.TotalAmount, e.NumberOfPayments)
	if len(e.Payments) > 0 {
		e.Amount = e.Payments[0].Amount
	}
}

// checkSource verifies that the card paying for the expense exists.
func checkSource(tx *gorm.DB, dataset string, e models.Expense) error {
	if e.PaymentSourceID == nil {
		return nil
	}

	_, err := getCard(tx, dataset, *e.PaymentSourceID)
	return err
}

func (t *Tracker) CreateExpense(ctx context.Context, dataset string, e models.Expense) (models.Expense, error) {
	e.Dataset = dataset
	e.ID = uuid.New()
	preparePayments(&e, nil)

	err := t.write(ctx, dataset, func(tx *gorm.DB) error {
		if err := checkSource(tx, dataset, e); err != nil {
			return err
		}

		if err := tx.Create(&e).Error; err != nil {
			return err
		}

		_, err := t.regenerate(tx, dataset)
		return err
	})
	if err != nil {
		return models.Expense{}, err
	}

	return e, nil
}

// UpdateExpense applies update to the stored expense and saves it.
func (t *Tracker) UpdateExpense(ctx context.Context, dataset string, id uuid.UUID, update func(*models.Expense) error) (models.Expense, error) {
	var e models.Expense

	err := t.write(ctx, dataset, func(tx *gorm.DB) error {
		previous, err := getExpense(tx, dataset, id)
		if err != nil {
			return err
		}

		e = previous
		if err := update(&e); err != nil {
			return err
		}

		e.DatasetModel = previous.DatasetModel
		e.ID = previous.ID
		preparePayments(&e, &previous)

		if err := checkSource(tx, dataset, e); err != nil {
			return err
		}

		if err := tx.Save(&e).Error; err != nil {
			return err
		}

		_, err = t.regenerate(tx, dataset)
		return err
	})
	if err != nil {
		return models.Expense{}, err
	}

	return e, nil
}

// DeleteExpense deletes the expense and all of its savings goals.
func (t *Tracker) DeleteExpense(ctx context.Context, dataset string, id uuid.UUID) error {
	return t.write(ctx, dataset, func(tx *gorm.DB) error {
		e, err := getExpense(tx, dataset, id)
		if err != nil {
			return err
		}

		err = tx.Where("dataset = ? AND expense_id = ?", dataset, e.ID).Delete(&models.SavingsGoal{}).Error
		if err != nil {
			return err
		}

		err = tx.Where("dataset = ? AND id = ?", dataset, e.ID).Delete(&models.Expense{}).Error
		if err != nil {
			return err
		}

		_, err = t.regenerate(tx, dataset)
		return err
	})
}

// ToggleExpenseSuspension suspends an active expense or resumes a suspended one.
func (t *Tracker) ToggleExpenseSuspension(ctx context.Context, dataset string, id uuid.UUID) (models.Expense, error) {
	var e models.Expense

	err := t.write(ctx, dataset, func(tx *gorm.DB) (err error) {
		e, err = getExpense(tx, dataset, id)
		if err != nil {
			return err
		}

		if !e.Suspendable() {
			return fmt.Errorf("%w, the expense is %s", ErrNotSuspendable, e.Type)
		}

		e.Suspended = !e.Suspended
		if err := tx.Save(&e).Error; err != nil {
			return err
		}

		_, err = t.regenerate(tx, dataset)
		return err
	})
	if err != nil {
		return models.Expense{}, err
	}

	return e, nil
}

// UpdateInstallmentPayment applies update to the payment record with the
// index of an installment.
func (t *Tracker) UpdateInstallmentPayment(ctx context.Context, dataset string, id uuid.UUID, index int, update func(*models.Payment) error) (models.Expense, error) {
	var e models.Expense

	err := t.write(ctx, dataset, func(tx *gorm.DB) (err error) {
		e, err = getExpense(tx, dataset, id)
		if err != nil {
			return err
		}

		if e.Type != models.ExpenseInstallment {
			return fmt.Errorf("%w, the expense is not an installment", models.ErrPaymentIndexInvalid)
		}

		if index < 0 || index >= len(e.Payments) {
			return fmt.Errorf("%w, the index must be between 0 and %d", models.ErrPaymentIndexInvalid, len(e.Payments)-1)
		}

		payments := slices.Clone(e.Payments)
		if err := update(&payments[index]); err != nil {
			return err
		}
		e.Payments = payments

		if err := tx.Save(&e).Error; err != nil {
			return err
		}

		_, err = t.regenerate(tx, dataset)
		return err
	})
	if err != nil {
		return models.Expense{}, err
	}

	return e, nil
}
