package tracker

import (
	"errors"
	"fmt"

	"github.com/weekly-savings/backend/internal/models"
)

var ErrCardNotFound = fmt.Errorf("%w card with this ID", models.ErrResourceNotFound)

var (
	ErrNotSuspendable           = errors.New("only recurring resources and installments can be suspended")
	ErrNoDebitCard              = errors.New("a debit card is needed to put savings aside, please add one")
	ErrDebitCardRequired        = errors.New("there are several debit cards, please choose the one to use")
	ErrNotDebitCard             = errors.New("the card must be a debit card")
	ErrInsufficientFunds        = errors.New("the balance of the debit card does not cover the payment")
	ErrInsufficientSavings      = errors.New("the saved goals of the expense do not cover the payment")
	ErrBalanceTransferRequired  = errors.New("the card has a balance, choose another debit card to transfer it to with the transferTo parameter")
	ErrOnlyDebitCardWithBalance = errors.New("the card has a balance and is the only debit card, add another debit card to transfer the balance to first")
	ErrNothingToPay             = errors.New("the expense has no upcoming payment")
	ErrBalanceOnTypeChange      = errors.New("only debit cards hold a balance, move it to another debit card before changing the type")
)
