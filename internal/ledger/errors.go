package ledger

import "errors"

var (
	ErrEmptyName           = errors.New("client name is required")
	ErrInvalidCPF          = errors.New("cpf must have exactly 11 digits")
	ErrInvalidPhone        = errors.New("phone must have at least 10 digits")
	ErrClientNotFound      = errors.New("client not found")
	ErrMissingDate         = errors.New("transaction date is required")
	ErrMissingClientID     = errors.New("transaction client id is required")
	ErrInvalidKind         = errors.New("invalid transaction kind")
	ErrInvalidQuantity     = errors.New("quantity must be greater than zero")
	ErrInvalidPrice        = errors.New("price per kg must be greater than zero")
	ErrZeroAmount          = errors.New("total amount must be non-zero")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD")
	ErrUnknownPreference   = errors.New("unknown preference")
)
