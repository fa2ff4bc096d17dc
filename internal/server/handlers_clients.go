package server

import (
	"encoding/json"
	"net/http"

	"github.com/dfarias/cacauledger/internal/ledger"
	"github.com/dfarias/cacauledger/internal/store"
	"github.com/go-chi/chi/v5"
)

type clientRequest struct {
	FullName string `json:"full_name"`
	CPF      string `json:"cpf"`
	Phone    string `json:"phone"`
}

func (s *Server) createClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	c := &ledger.Client{
		FullName: req.FullName,
		CPF:      req.CPF,
		Phone:    req.Phone,
	}

	if err := s.store.CreateClient(r.Context(), c); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}

	created, err := s.store.GetClient(r.Context(), c.ID)
	if err != nil {
		writeJSON(w, http.StatusCreated, c)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) listClients(w http.ResponseWriter, r *http.Request) {
	filter := store.ClientFilter{
		Search: r.URL.Query().Get("search"),
	}

	clients, err := s.store.ListClients(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if clients == nil {
		clients = []ledger.Client{}
	}
	writeJSON(w, http.StatusOK, clients)
}

func (s *Server) getClient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, err := s.store.GetClient(r.Context(), id)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) updateClient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	c := &ledger.Client{
		ID:       id,
		FullName: req.FullName,
		CPF:      req.CPF,
		Phone:    req.Phone,
	}
	if err := s.store.UpdateClient(r.Context(), c); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}

	updated, err := s.store.GetClient(r.Context(), id)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteClient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.DeleteClient(r.Context(), id); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
