package tracker

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/weekly-savings/backend/internal/models"
	"github.com/weekly-savings/backend/internal/savings"
	"github.com/weekly-savings/backend/internal/types"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type GoalFilter struct {
	Week      types.Date // Any day of the week
	ExpenseID uuid.UUID
	Status    models.GoalStatus
	Name      string // Glob pattern for the expense name, case insensitive
}

func (t *Tracker) ListGoals(ctx context.Context, dataset string, filter GoalFilter) ([]models.SavingsGoal, error) {
	db, err := t.read(ctx, dataset)
	if err != nil {
		return nil, err
	}

	q := db.Where("dataset = ?", dataset).Order("rowid")
	if !filter.Week.IsZero() {
		q = q.Where("week_start_date = ?", filter.Week.WeekStart())
	}

	if filter.ExpenseID != uuid.Nil {
		q = q.Where("expense_id = ?", filter.ExpenseID)
	}

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var goals []models.SavingsGoal
	err = q.Find(&goals).Error
	if err != nil {
		return nil, err
	}

	return slices.DeleteFunc(goals, func(g models.SavingsGoal) bool {
		return !matchName(filter.Name, g.ExpenseName)
	}), nil
}

func (t *Tracker) GetGoal(ctx context.Context, dataset, id string) (models.SavingsGoal, error) {
	db, err := t.read(ctx, dataset)
	if err != nil {
		return models.SavingsGoal{}, err
	}

	var g models.SavingsGoal
	err = db.Where("dataset = ? AND id = ?", dataset, id).First(&g).Error
	return g, err
}

// debitCard returns the debit card money is moved to or from.
//
// If id is nil, the only debit card of the dataset is used.
func debitCard(cards []models.Card, id *uuid.UUID) (models.Card, error) {
	if id != nil {
		i := slices.IndexFunc(cards, func(c models.Card) bool {
			return c.ID == *id
		})

		if i < 0 {
			return models.Card{}, ErrCardNotFound
		}

		if cards[i].Type != models.CardDebit {
			return models.Card{}, ErrNotDebitCard
		}

		return cards[i], nil
	}

	var debit []models.Card
	for _, c := range cards {
		if c.Type == models.CardDebit {
			debit = append(debit, c)
		}
	}

	switch len(debit) {
	case 0:
		return models.Card{}, ErrNoDebitCard
	case 1:
		return debit[0], nil
	default:
		return models.Card{}, ErrDebitCardRequired
	}
}

// logRejected logs transitions of goals that are not possible.
func logRejected(err error, dataset, id, action string) {
	if errors.Is(err, savings.ErrInvalidTransition) {
		log.Info().Str("dataset", dataset).Str("goal", id).Str("action", action).Msg(err.Error())
	}
}

// SaveGoal marks a pending goal as saved and adds its amount to the balance
// of a debit card.
func (t *Tracker) SaveGoal(ctx context.Context, dataset, id string, cardID *uuid.UUID) (models.SavingsGoal, error) {
	var goal models.SavingsGoal

	err := t.write(ctx, dataset, func(tx *gorm.DB) error {
		s, err := models.LoadSnapshot(tx, dataset)
		if err != nil {
			return err
		}

		goals, err := savings.MarkSaved(s.Goals, id, t.now().UTC())
		if err != nil {
			logRejected(err, dataset, id, "save")
			return err
		}

		card, err := debitCard(s.Cards, cardID)
		if err != nil {
			return err
		}

		i := slices.IndexFunc(goals, func(g models.SavingsGoal) bool {
			return g.ID == id
		})
		goal = goals[i]

		card.Balance = card.Balance.Add(goal.Amount)
		if err := tx.Save(&card).Error; err != nil {
			return err
		}

		return models.ReplaceGoals(tx, dataset, goals)
	})
	if err != nil {
		return models.SavingsGoal{}, err
	}

	return goal, nil
}

// PostponeGoal postpones a pending goal and spreads its amount over the later
// goals of the expense.
func (t *Tracker) PostponeGoal(ctx context.Context, dataset, id string) (models.SavingsGoal, error) {
	var goal models.SavingsGoal

	err := t.write(ctx, dataset, func(tx *gorm.DB) error {
		var stored []models.SavingsGoal
		err := tx.Where("dataset = ?", dataset).Order("rowid").Find(&stored).Error
		if err != nil {
			return err
		}

		goals, err := savings.Postpone(stored, id)
		if err != nil {
			logRejected(err, dataset, id, "postpone")
			return err
		}

		i := slices.IndexFunc(goals, func(g models.SavingsGoal) bool {
			return g.ID == id
		})
		goal = goals[i]

		return models.ReplaceGoals(tx, dataset, goals)
	})
	if err != nil {
		return models.SavingsGoal{}, err
	}

	return goal, nil
}
