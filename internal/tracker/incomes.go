package tracker

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/weekly-savings/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type IncomeFilter struct {
	Type      models.IncomeType
	Name      string // Glob pattern, case insensitive
	Suspended *bool
}

func (t *Tracker) ListIncomes(ctx context.Context, dataset string, filter IncomeFilter) ([]models.Income, error) {
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

	var incomes []models.Income
	err = q.Find(&incomes).Error
	if err != nil {
		return nil, err
	}

	return slices.DeleteFunc(incomes, func(i models.Income) bool {
		return !matchName(filter.Name, i.Name)
	}), nil
}

func getIncome(tx *gorm.DB, dataset string, id uuid.UUID) (models.Income, error) {
	var i models.Income
	err := tx.Where("dataset = ? AND id = ?", dataset, id).First(&i).Error
	return i, err
}

func (t *Tracker) GetIncome(ctx context.Context, dataset string, id uuid.UUID) (models.Income, error) {
	db, err := t.read(ctx, dataset)
	if err != nil {
		return models.Income{}, err
	}

	return getIncome(db, dataset, id)
}

func (t *Tracker) CreateIncome(ctx context.Context, dataset string, i models.Income) (models.Income, error) {
	i.Dataset = dataset
	i.ID = uuid.New()

	err := t.write(ctx, dataset, func(tx *gorm.DB) error {
		if err := tx.Create(&i).Error; err != nil {
			return err
		}

		_, err := t.regenerate(tx, dataset)
		return err
	})
	if err != nil {
		return models.Income{}, err
	}

	return i, nil
}

// UpdateIncome applies update to the stored income and saves it.
func (t *Tracker) UpdateIncome(ctx context.Context, dataset string, id uuid.UUID, update func(*models.Income) error) (models.Income, error) {
	var i models.Income

	err := t.write(ctx, dataset, func(tx *gorm.DB) error {
		previous, err := getIncome(tx, dataset, id)
		if err != nil {
			return err
		}

		i = previous
		if err := update(&i); err != nil {
			return err
		}

		i.DatasetModel = previous.DatasetModel
		i.ID = previous.ID

		if err := tx.Save(&i).Error; err != nil {
			return err
		}

		_, err = t.regenerate(tx, dataset)
		return err
	})
	if err != nil {
		return models.Income{}, err
	}

	return i, nil
}

func (t *Tracker) DeleteIncome(ctx context.Context, dataset string, id uuid.UUID) error {
	return t.write(ctx, dataset, func(tx *gorm.DB) error {
		i, err := getIncome(tx, dataset, id)
		if err != nil {
			return err
		}

		err = tx.Where("dataset = ? AND id = ?", dataset, i.ID).Delete(&models.Income{}).Error
		if err != nil {
			return err
		}

		_, err = t.regenerate(tx, dataset)
		return err
	})
}

// ToggleIncomeSuspension suspends an active recurring income or resumes a
// suspended one.
func (t *Tracker) ToggleIncomeSuspension(ctx context.Context, dataset string, id uuid.UUID) (models.Income, error) {
	var i models.Income

	err := t.write(ctx, dataset, func(tx *gorm.DB) (err error) {
		i, err = getIncome(tx, dataset, id)
		if err != nil {
			return err
		}

		if i.Type != models.IncomeRecurring {
			return fmt.Errorf("%w, the income is %s", ErrNotSuspendable, i.Type)
		}

		i.Suspended = !i.Suspended
		if err := tx.Save(&i).Error; err != nil {
			return err
		}

		_, err = t.regenerate(tx, dataset)
		return err
	})
	if err != nil {
		return models.Income{}, err
	}

	return i, nil
}
