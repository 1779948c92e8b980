package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/napolitain/solver-pnw/internal/converter"
	"github.com/napolitain/solver-pnw/internal/models"
	"github.com/napolitain/solver-pnw/internal/pnw"
	"github.com/napolitain/solver-pnw/internal/solver/city"
	"github.com/napolitain/solver-pnw/internal/solver/warchest"
	"github.com/napolitain/solver-pnw/internal/store"
)

// nationFetcher is the part of the API client the server needs
type nationFetcher interface {
	Enabled() bool
	Nation(ctx context.Context, id int) (*pnw.Nation, error)
}

// server exposes the allocator, warchest and store over HTTP
type server struct {
	db      *store.DB
	nations nationFetcher
	strict  bool
	log     *slog.Logger
	now     func() time.Time
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/plan", s.handlePlan)
	r.Get("/plans", s.handleHistory)
	r.Post("/feedback", s.handleFeedback)

	r.Route("/nations/{id}", func(r chi.Router) {
		r.Get("/plan", s.handleNationPlan)
		r.Get("/warchest", s.handleWarchest)
		r.Get("/balance", s.handleBalance)
	})
	return r
}

func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"took", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// handlePlan solves a plan request. The optional ?user= tags the plan in
// the history.
func (s *server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req models.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %v", models.ErrInvalidRequest, err))
		return
	}
	if err := models.ValidatePlanRequest(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res := s.solve(req.City(), req.Nation(), req.PlanOverrides())
	s.record(store.PlanEntry{
		UserID:    r.URL.Query().Get("user"),
		Continent: req.City().Continent,
		Plan:      res.Plan.Record(),
	})
	writeJSON(w, http.StatusOK, res)
}

// handleNationPlan plans one of a live nation's cities (?city=name or id,
// default the first)
func (s *server) handleNationPlan(w http.ResponseWriter, r *http.Request) {
	n, ok := s.nation(w, r)
	if !ok {
		return
	}
	if len(n.Cities) == 0 {
		writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("nation %d has no cities", n.ID))
		return
	}

	c := &n.Cities[0]
	if key := r.URL.Query().Get("city"); key != "" {
		if c, ok = n.FindCity(key); !ok {
			writeError(w, http.StatusNotFound, fmt.Errorf("nation %d has no city %q", n.ID, key))
			return
		}
	}

	attrs := n.CityAttributes(c)
	res := s.solve(attrs, n.Profile(), models.NewOverrides())
	s.record(store.PlanEntry{
		UserID:    r.URL.Query().Get("user"),
		NationID:  n.ID,
		City:      c.Name,
		Continent: attrs.Continent,
		Plan:      res.Plan.Record(),
	})
	writeJSON(w, http.StatusOK, res)
}

func (s *server) handleWarchest(w http.ResponseWriter, r *http.Request) {
	days := warchest.DefaultDays
	if v := r.URL.Query().Get("days"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil || d <= 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid days %q", v))
			return
		}
		days = d
	}

	n, ok := s.nation(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, warchest.NewSolverWithConfig(days, s.now()).Solve(n))
}

func (s *server) handleBalance(w http.ResponseWriter, r *http.Request) {
	n, ok := s.nation(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, warchest.Balance(n))
}

func (s *server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l <= 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", v))
			return
		}
		limit = min(l, 200)
	}

	entries, err := s.db.RecentPlans(r.URL.Query().Get("user"), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID  string `json:"user_id"`
		Kind    string `json:"kind"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	kind, ok := store.ParseFeedbackKind(req.Kind)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown feedback kind %q", req.Kind))
		return
	}

	id, err := s.db.AddFeedback(store.Feedback{UserID: req.UserID, Kind: kind, Message: req.Message})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *server) solve(c models.CityAttributes, n models.NationProfile, o models.Overrides) *city.Result {
	opts := city.Options{Strict: s.strict, Logger: s.log}
	return city.NewSolverWithOptions(c, n, o, opts).Solve()
}

// record appends a plan to the history; failures are logged only
func (s *server) record(e store.PlanEntry) {
	if s.db == nil {
		return
	}
	if _, err := s.db.SavePlan(e); err != nil {
		s.log.Warn("plan not saved", "err", err)
	}
}

// nation fetches the nation named by the {id} URL parameter, writing an
// error response on failure
func (s *server) nation(w http.ResponseWriter, r *http.Request) (*models.Nation, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid nation id %q", chi.URLParam(r, "id")))
		return nil, false
	}
	if !s.nations.Enabled() {
		writeError(w, http.StatusServiceUnavailable, pnw.ErrNoAPIKey)
		return nil, false
	}

	raw, err := s.nations.Nation(r.Context(), id)
	switch {
	case errors.Is(err, pnw.ErrNationNotFound):
		writeError(w, http.StatusNotFound, err)
		return nil, false
	case err != nil:
		writeError(w, http.StatusBadGateway, err)
		return nil, false
	}

	n, err := converter.APINationToModel(raw)
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return nil, false
	}
	return n, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
