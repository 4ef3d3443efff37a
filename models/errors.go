package models

import "github.com/pkg/errors"

// Pipeline stage errors. Stage implementations wrap these sentinels so
// callers can classify a failure with errors.Is regardless of the
// underlying driver error.
var (
	ErrPersistence = errors.New("submission persistence failed")
	ErrStorage     = errors.New("resume storage failed")
	ErrLedger      = errors.New("ledger append failed")
	ErrMail        = errors.New("notification send failed")
	ErrValidation  = errors.New("invalid submission")
)
