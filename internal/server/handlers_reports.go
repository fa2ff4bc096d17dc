package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dfarias/cacauledger/internal/ledger"
	"github.com/dfarias/cacauledger/internal/report"
	"github.com/dfarias/cacauledger/internal/store"
	"github.com/go-chi/chi/v5"
)

func (s *Server) getStatement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, err := s.store.GetClient(r.Context(), id)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}

	year := 0
	if y := r.URL.Query().Get("year"); y != "" {
		year, err = strconv.Atoi(y)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year: "+y)
			return
		}
	}

	txns, err := s.store.ListTransactions(r.Context(), store.TxnFilter{ClientID: id})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ledger.BuildStatement(*c, txns, year))
}

func (s *Server) getDashboard(w http.ResponseWriter, r *http.Request) {
	clients, err := s.store.ListClients(r.Context(), store.ClientFilter{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	txns, err := s.store.ListTransactions(r.Context(), store.TxnFilter{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ledger.BuildDashboard(clients, txns))
}

func (s *Server) buildReport(w http.ResponseWriter, r *http.Request) *report.Data {
	id := chi.URLParam(r, "id")

	c, err := s.store.GetClient(r.Context(), id)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return nil
	}

	var from, to ledger.Date
	if f := r.URL.Query().Get("from"); f != "" {
		if from, err = ledger.ParseDate(f); err != nil {
			writeError(w, mapError(err), err.Error())
			return nil
		}
	}
	if t := r.URL.Query().Get("to"); t != "" {
		if to, err = ledger.ParseDate(t); err != nil {
			writeError(w, mapError(err), err.Error())
			return nil
		}
	}

	txns, err := s.store.ListTransactions(r.Context(), store.TxnFilter{ClientID: id})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil
	}

	data := report.Build(*c, txns, from, to)
	if name, err := s.store.GetPreference(r.Context(), ledger.PrefCompanyName); err == nil {
		data.CompanyName = name
	}
	return data
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	data := s.buildReport(w, r)
	if data == nil {
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) exportReport(w http.ResponseWriter, r *http.Request) {
	data := s.buildReport(w, r)
	if data == nil {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", data.Filename(ledger.Today())))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(data.Render()))
}
