// Package server exposes the grouping layer over HTTP: POST a
// condensed-structure document, get back the full grouped summary.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/xtal-tools/xtalsum/internal/codec"
	"github.com/xtal-tools/xtalsum/internal/summary"
	"github.com/xtal-tools/xtalsum/internal/view"
)

// Server answers describe requests using one element-properties provider.
type Server struct {
	props  view.ElementProperties
	logger *slog.Logger
}

// New creates a describe server.
func New(props view.ElementProperties, logger *slog.Logger) *Server {
	return &Server{props: props, logger: logger.With("component", "server")}
}

// Handler builds the HTTP routing for the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/describe", s.handleDescribe)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	return mux
}

// Serve runs the server on the given port. It blocks until the context is
// cancelled or the listener fails.
func (s *Server) Serve(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Handler(),
	}

	s.logger.Info("starting HTTP server", "addr", srv.Addr)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server shutdown error: %w", err)
		}
		return nil
	}
}

func (s *Server) handleDescribe(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("request received", "method", r.Method, "path", r.URL.Path)

	ordering := view.IUPACOrdering
	switch r.URL.Query().Get("ordering") {
	case "", "iupac":
	case "electronegativity":
		ordering = view.ElectronegativityOrdering
	default:
		writeError(w, http.StatusBadRequest,
			fmt.Errorf("unknown ordering %q (valid: iupac, electronegativity)", r.URL.Query().Get("ordering")))
		return
	}
	opts := summary.Options{
		GroupByElement: r.URL.Query().Get("group_by_element") == "true",
	}

	structure, err := codec.NewJSONCodec().Decode(r.Body)
	if err != nil {
		s.logger.Warn("rejected document", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	adapter, err := view.New(structure, s.props, ordering)
	if err != nil {
		// The document itself was well-formed; the element-properties
		// provider could not order one of its elements.
		s.logger.Warn("unorderable document", "error", err)
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	doc, err := summary.Build(adapter, opts)
	if err != nil {
		s.logger.Error("failed to build summary", "error", err)
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
