package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"gatebot/internal/core/domain/command"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Source provides the registered commands. *command.Registry satisfies it.
type Source interface {
	Catalog() command.Catalog
}

type Server struct {
	source Source
}

func NewServer(source Source) *Server {
	return &Server{source: source}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/botCommands", s.commands)
	mux.HandleFunc("/botFunctions", s.functions)
	return mux
}

func (s *Server) commands(w http.ResponseWriter, r *http.Request) {
	if !allowed(w, r) {
		return
	}
	writeJSON(w, s.source.Catalog().Commands)
}

func (s *Server) functions(w http.ResponseWriter, r *http.Request) {
	if !allowed(w, r) {
		return
	}
	writeJSON(w, s.source.Catalog().Functions)
}

func allowed(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	return false
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode catalog response")
	}
}

const shutdownTimeout = 5 * time.Second

// Run serves the catalog on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down catalog server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("catalog server shutdown failed")
		}
	}()

	log.Info().Str("addr", addr).Msg("catalog server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
