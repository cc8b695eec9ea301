// Package http exposes stored machines over a small JSON API.
//
// Routes:
//
//	GET  /machines             list stored machine IDs
//	GET  /machines/{id}        the machine's snapshot
//	GET  /machines/{id}/graph  Mermaid (or ?format=tree) rendering
//	POST /machines/{id}/step   load, step one symbol, persist, return output
//	GET  /metrics              Prometheus metrics
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/internal/presentation/graph"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves snapshot inspection and step-with-persist over HTTP.
type Server struct {
	store      ports.SnapshotStore
	logger     *slog.Logger
	steps      *prometheus.CounterVec
	stepErrors *prometheus.CounterVec
}

type stepRequest struct {
	Symbol domain.Symbol `json:"symbol"`
}

type stepResponse struct {
	Output  domain.Symbol `json:"output"`
	Current string        `json:"current"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates the HTTP handler for a snapshot store.
// Metrics are registered on a private registry so multiple handlers can
// coexist in one process.
func NewHandler(store ports.SnapshotStore, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	registry := prometheus.NewRegistry()
	steps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "automata_steps_total",
		Help: "Transducer steps executed via the HTTP API.",
	}, []string{"machine"})
	stepErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "automata_step_errors_total",
		Help: "Transducer steps rejected for an undefined transition.",
	}, []string{"machine"})
	registry.MustRegister(steps, stepErrors)

	s := &Server{
		store:      store,
		logger:     logger,
		steps:      steps,
		stepErrors: stepErrors,
	}

	r := chi.NewRouter()
	r.Get("/machines", s.handleList)
	r.Get("/machines/{id}", s.handleGet)
	r.Get("/machines/{id}/graph", s.handleGraph)
	r.Post("/machines/{id}/step", s.handleStep)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, ids)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}

	var rendered string
	switch r.URL.Query().Get("format") {
	case "tree":
		rendered = graph.Tree(snap)
	default:
		rendered = graph.Mermaid(snap)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(rendered))
}

func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req stepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	snap, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}

	machine, err := automata.Restore(snap)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	output, err := machine.Step(req.Symbol)
	if err != nil {
		var undefined *domain.UndefinedTransitionError
		if errors.As(err, &undefined) {
			s.stepErrors.WithLabelValues(id).Inc()
			s.writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	if err := s.store.Save(r.Context(), id, machine.Snapshot()); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.steps.WithLabelValues(id).Inc()
	s.writeJSON(w, http.StatusOK, stepResponse{
		Output:  output,
		Current: machine.Current().Name,
	})
}

func (s *Server) loadSnapshot(w http.ResponseWriter, r *http.Request) (*domain.Snapshot, bool) {
	id := chi.URLParam(r, "id")
	snap, err := s.store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			s.writeError(w, http.StatusNotFound, err)
		} else {
			s.writeError(w, http.StatusInternalServerError, err)
		}
		return nil, false
	}
	return snap, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
