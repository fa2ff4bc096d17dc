package server

import (
	"net"
	"net/http"
	"time"

	"github.com/dfarias/cacauledger/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Server struct {
	store  store.Store
	router chi.Router
	addr   string
	log    zerolog.Logger
}

func New(st store.Store, addr string, log zerolog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	s := &Server{store: st, router: r, addr: addr, log: log}
	r.Use(s.requestLog)

	r.Route("/api/v1", func(r chi.Router) {
		// Clients
		r.Post("/clients", s.createClient)
		r.Get("/clients", s.listClients)
		r.Get("/clients/{id}", s.getClient)
		r.Put("/clients/{id}", s.updateClient)
		r.Delete("/clients/{id}", s.deleteClient)

		// Running account and reports per client
		r.Get("/clients/{id}/statement", s.getStatement)
		r.Get("/clients/{id}/report", s.getReport)
		r.Get("/clients/{id}/report/export", s.exportReport)

		// Transactions
		r.Post("/transactions", s.createTransaction)
		r.Get("/transactions", s.listTransactions)
		r.Get("/transactions/{id}", s.getTransaction)

		// Cross-client summary
		r.Get("/dashboard", s.getDashboard)

		// Preferences
		r.Get("/preferences", s.listPreferences)
		r.Get("/preferences/{name}", s.getPreference)
		r.Put("/preferences/{name}", s.setPreference)
		r.Delete("/preferences/{name}", s.deletePreference)
	})

	return s
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) ListenAndServe() error {
	s.log.Info().Str("addr", s.addr).Msg("cacauledger server listening")
	return http.ListenAndServe(s.addr, s.router)
}

func (s *Server) Serve(ln net.Listener) error {
	s.log.Info().Stringer("addr", ln.Addr()).Msg("cacauledger server listening")
	return http.Serve(ln, s.router)
}

func (s *Server) Handler() http.Handler {
	return s.router
}
