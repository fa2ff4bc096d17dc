package server

import (
	"encoding/json"
	"net/http"

	"github.com/dfarias/cacauledger/internal/ledger"
	"github.com/dfarias/cacauledger/internal/store"
	"github.com/go-chi/chi/v5"
)

type createTransactionRequest struct {
	ClientID        string      `json:"client_id"`
	Date            ledger.Date `json:"date"`
	Kind            ledger.Kind `json:"kind"`
	QuantityKg      float64     `json:"quantity_kg,omitempty"`
	PricePerKgCents int64       `json:"price_per_kg_cents,omitempty"`
	AmountCents     int64       `json:"amount_cents,omitempty"`
	Note            string      `json:"note,omitempty"`
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	txn := &ledger.Transaction{
		ClientID:        req.ClientID,
		Date:            req.Date,
		Kind:            req.Kind,
		QuantityKg:      req.QuantityKg,
		PricePerKgCents: req.PricePerKgCents,
		AmountCents:     req.AmountCents,
		Note:            req.Note,
	}

	if err := s.store.CreateTransaction(r.Context(), txn); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}

	created, err := s.store.GetTransaction(r.Context(), txn.ID)
	if err != nil {
		writeJSON(w, http.StatusCreated, txn)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	filter := store.TxnFilter{}
	if cid := r.URL.Query().Get("client_id"); cid != "" {
		filter.ClientID = cid
	}

	txns, err := s.store.ListTransactions(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if txns == nil {
		txns = []ledger.Transaction{}
	}
	writeJSON(w, http.StatusOK, txns)
}

func (s *Server) getTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	txn, err := s.store.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, txn)
}
