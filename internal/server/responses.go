package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dfarias/cacauledger/internal/ledger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func mapError(err error) int {
	switch {
	case errors.Is(err, ledger.ErrClientNotFound), errors.Is(err, ledger.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrEmptyName),
		errors.Is(err, ledger.ErrInvalidCPF),
		errors.Is(err, ledger.ErrInvalidPhone),
		errors.Is(err, ledger.ErrMissingDate),
		errors.Is(err, ledger.ErrMissingClientID),
		errors.Is(err, ledger.ErrInvalidKind),
		errors.Is(err, ledger.ErrInvalidQuantity),
		errors.Is(err, ledger.ErrInvalidPrice),
		errors.Is(err, ledger.ErrZeroAmount),
		errors.Is(err, ledger.ErrInvalidDate),
		errors.Is(err, ledger.ErrUnknownPreference):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
