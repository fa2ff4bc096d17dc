package server

import (
	"encoding/json"
	"net/http"

	"github.com/dfarias/cacauledger/internal/ledger"
	"github.com/go-chi/chi/v5"
)

func (s *Server) listPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.store.ListPreferences(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if prefs == nil {
		prefs = []ledger.Preference{}
	}
	writeJSON(w, http.StatusOK, prefs)
}

func (s *Server) getPreference(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !ledger.KnownPreference(name) {
		writeError(w, http.StatusBadRequest, "unknown preference: "+name)
		return
	}

	value, err := s.store.GetPreference(r.Context(), name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ledger.Preference{Name: name, Value: value})
}

type setPreferenceRequest struct {
	Value string `json:"value"`
}

func (s *Server) setPreference(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !ledger.KnownPreference(name) {
		writeError(w, http.StatusBadRequest, "unknown preference: "+name)
		return
	}

	var req setPreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if err := s.store.SetPreference(r.Context(), name, req.Value); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ledger.Preference{Name: name, Value: req.Value})
}

func (s *Server) deletePreference(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !ledger.KnownPreference(name) {
		writeError(w, http.StatusBadRequest, "unknown preference: "+name)
		return
	}

	if err := s.store.DeletePreference(r.Context(), name); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
