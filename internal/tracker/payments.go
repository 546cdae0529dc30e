package tracker

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/savings"
	"github.com/weekly-savings/backend/internal/types"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Payment is a payment of an expense made with its savings.
type Payment struct {
	ExpenseID uuid.UUID       `json:"expenseId"`
	CardID    uuid.UUID       `json:"cardId"`
	DueDate   types.Date      `json:"dueDate"`
	Amount    decimal.Decimal `json:"amount"`
	Spent     int             `json:"spent"` // Number of saved goals that were spent
}

// savedFor returns the total amount of the saved goals of the expense.
func savedFor(goals []models.SavingsGoal, expenseID uuid.UUID) decimal.Decimal {
	total := decimal.Zero
	for _, g := range goals {
		if g.ExpenseID == expenseID && g.Status == models.GoalSaved {
			total = total.Add(g.Amount)
		}
	}

	return total
}

// PayWithSavings pays the next payment of the expense from a debit card,
// using the goals saved for it.
func (t *Tracker) PayWithSavings(ctx context.Context, dataset string, expenseID uuid.UUID, cardID *uuid.UUID) (Payment, error) {
	var p Payment

	err := t.write(ctx, dataset, func(tx *gorm.DB) error {
		e, err := getExpense(tx, dataset, expenseID)
		if err != nil {
			return err
		}

		next, ok := savings.NextPayment(e, t.Today())
		if !ok {
			return ErrNothingToPay
		}

		s, err := models.LoadSnapshot(tx, dataset)
		if err != nil {
			return err
		}

		saved := savedFor(s.Goals, e.ID)
		if saved.LessThan(next.Amount) {
			return fmt.Errorf("%w, %s of %s are saved", ErrInsufficientSavings, saved, next.Amount)
		}

		card, err := debitCard(s.Cards, cardID)
		if err != nil {
			return err
		}

		if card.Balance.LessThan(next.Amount) {
			return fmt.Errorf("%w, the balance is %s", ErrInsufficientFunds, card.Balance)
		}

		card.Balance = card.Balance.Sub(next.Amount)
		if err := tx.Save(&card).Error; err != nil {
			return err
		}

		goals := s.Goals
		spent := 0
		for _, g := range s.Goals {
			if g.ExpenseID != e.ID || g.Status != models.GoalSaved {
				continue
			}

			goals, err = savings.MarkSpent(goals, g.ID)
			if err != nil {
				return err
			}
			spent++
		}

		if err := models.ReplaceGoals(tx, dataset, goals); err != nil {
			return err
		}

		if e.Type == models.ExpenseInstallment {
			payments := slices.Clone(e.Payments)
			payments[payments.NextUnpaid()].Paid = true
			e.Payments = payments

			if err := tx.Save(&e).Error; err != nil {
				return err
			}
		}

		p = Payment{
			ExpenseID: e.ID,
			CardID:    card.ID,
			DueDate:   next.DueDate,
			Amount:    next.Amount,
			Spent:     spent,
		}

		_, err = t.regenerate(tx, dataset)
		return err
	})
	if err != nil {
		return Payment{}, err
	}

	return p, nil
}
