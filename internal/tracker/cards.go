package tracker

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/weekly-savings/backend/internal/models"
	"gorm.io/gorm"
)

func (t *Tracker) ListCards(ctx context.Context, dataset string, cardType models.CardType) ([]models.Card, error) {
	db, err := t.read(ctx, dataset)
	if err != nil {
		return nil, err
	}

	q := db.Where("dataset = ?", dataset).Order("rowid")
	if cardType != "" {
		q = q.Where("type = ?", cardType)
	}

	var cards []models.Card
	err = q.Find(&cards).Error
	if err != nil {
		return nil, err
	}

	return cards, nil
}

func getCard(tx *gorm.DB, dataset string, id uuid.UUID) (models.Card, error) {
	var c models.Card
	err := tx.Where("dataset = ? AND id = ?", dataset, id).First(&c).Error
	return c, err
}

func (t *Tracker) GetCard(ctx context.Context, dataset string, id uuid.UUID) (models.Card, error) {
	db, err := t.read(ctx, dataset)
	if err != nil {
		return models.Card{}, err
	}

	return getCard(db, dataset, id)
}

func (t *Tracker) CreateCard(ctx context.Context, dataset string, c models.Card) (models.Card, error) {
	c.Dataset = dataset
	c.ID = uuid.New()

	err := t.write(ctx, dataset, func(tx *gorm.DB) error {
		return tx.Create(&c).Error
	})
	if err != nil {
		return models.Card{}, err
	}

	return c, nil
}

// UpdateCard applies update to the stored card and saves it.
func (t *Tracker) UpdateCard(ctx context.Context, dataset string, id uuid.UUID, update func(*models.Card) error) (models.Card, error) {
	var c models.Card

	err := t.write(ctx, dataset, func(tx *gorm.DB) error {
		previous, err := getCard(tx, dataset, id)
		if err != nil {
			return err
		}

		c = previous
		if err := update(&c); err != nil {
			return err
		}

		c.DatasetModel = previous.DatasetModel
		c.ID = previous.ID

		if previous.Type == models.CardDebit && c.Type == models.CardCredit && previous.Balance.IsPositive() {
			return fmt.Errorf("%w, the balance is %s", ErrBalanceOnTypeChange, previous.Balance)
		}

		return tx.Save(&c).Error
	})
	if err != nil {
		return models.Card{}, err
	}

	return c, nil
}

// DeleteCard deletes a card.
//
// The balance of a debit card is moved to the debit card transferTo first.
// Expenses paid with the card are paid in cash afterwards.
func (t *Tracker) DeleteCard(ctx context.Context, dataset string, id uuid.UUID, transferTo *uuid.UUID) error {
	return t.write(ctx, dataset, func(tx *gorm.DB) error {
		card, err := getCard(tx, dataset, id)
		if err != nil {
			return err
		}

		if card.Type == models.CardDebit && card.Balance.IsPositive() {
			err = transferBalance(tx, dataset, card, transferTo)
			if err != nil {
				return err
			}
		}

		var expenses []models.Expense
		err = tx.Where("dataset = ? AND payment_source_id = ?", dataset, card.ID).Order("rowid").Find(&expenses).Error
		if err != nil {
			return err
		}

		for _, e := range expenses {
			e.PaymentMethod = models.PaymentCash
			e.PaymentSourceID = nil

			if err := tx.Save(&e).Error; err != nil {
				return err
			}
		}

		err = tx.Where("dataset = ? AND id = ?", dataset, card.ID).Delete(&models.Card{}).Error
		if err != nil {
			return err
		}

		_, err = t.regenerate(tx, dataset)
		return err
	})
}

// transferBalance moves the balance of card to the debit card with the ID to.
func transferBalance(tx *gorm.DB, dataset string, card models.Card, to *uuid.UUID) error {
	var others int64
	err := tx.Model(&models.Card{}).Where("dataset = ? AND type = ? AND id != ?", dataset, models.CardDebit, card.ID).Count(&others).Error
	if err != nil {
		return err
	}

	if others == 0 {
		return ErrOnlyDebitCardWithBalance
	}

	if to == nil || *to == card.ID {
		return ErrBalanceTransferRequired
	}

	target, err := getCard(tx, dataset, *to)
	if err != nil {
		return err
	}

	if target.Type != models.CardDebit {
		return ErrNotDebitCard
	}

	target.Balance = target.Balance.Add(card.Balance)
	return tx.Save(&target).Error
}
