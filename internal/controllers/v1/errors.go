package v1

import (
	"errors"

	"github.com/weekly-savings/backend/internal/httperror"
)

type httpError = httperror.Error

// status returns the appropriate status for an error
func status(err error) int {
	return httperror.Status(err)
}

var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
	errCardTypeFilter      = errors.New("the type parameter must be one of 'credit' or 'debit'")
)
