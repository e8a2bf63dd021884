package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/genielab/genie/internal/dashboard"
	"github.com/genielab/genie/internal/digest"
	"github.com/genielab/genie/internal/genie"
	"github.com/genielab/genie/internal/httputil"
	"github.com/genielab/genie/internal/metrics"
	"github.com/genielab/genie/internal/model"
	"github.com/genielab/genie/internal/repository"
)

type API struct {
	repo    repository.Repository
	engine  *genie.Engine
	digests *digest.Queue
	mux     *http.ServeMux
}

type RecommendationRequest struct {
	UserID string `json:"user_id"`
}

type StartSessionRequest struct {
	UserID string  `json:"user_id"`
	TaskID *string `json:"task_id"`
}

type EndSessionRequest struct {
	FocusScore  *int   `json:"focus_score"`
	EnergyLevel *int   `json:"energy_level"`
	Notes       string `json:"notes"`
}

type EnqueueDigestRequest struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	ScheduleIn *int   `json:"schedule_in"`
}

func NewAPI(repo repository.Repository, digests *digest.Queue) *API {
	api := &API{
		repo:    repo,
		engine:  genie.NewEngine(),
		digests: digests,
		mux:     http.NewServeMux(),
	}

	api.setupRoutes()
	return api
}

func (a *API) setupRoutes() {
	a.mux.HandleFunc("/api/genie/recommendations", a.handleRecommendations)
	a.mux.HandleFunc("/api/sessions", a.handleSessions)
	a.mux.HandleFunc("/api/sessions/", a.handleSessionByID)
	a.mux.HandleFunc("/api/digests", a.handleDigests)
	a.mux.HandleFunc("/health", a.handleHealth)

	dash := dashboard.NewDashboard(a.repo)
	a.mux.HandleFunc("/api/analytics/summary", dash.GetSummary)

	a.mux.Handle("/metrics", promhttp.Handler())
}

func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

func (a *API) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RecommendationRequest
	if err := decodeBody(r, &req); err != nil {
		httputil.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		httputil.WriteJSONError(w, "user_id is required", http.StatusBadRequest)
		return
	}

	if err := a.repo.SpendGenieCredit(r.Context(), req.UserID); err != nil {
		if errors.Is(err, repository.ErrNoGenieCredits) || errors.Is(err, repository.ErrNotFound) {
			metrics.CreditsRejected.Inc()
			httputil.WriteJSONError(w, "No genie credits remaining", http.StatusPaymentRequired)
			return
		}
		httputil.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	metrics.CreditsSpent.Inc()

	tasks, err := a.repo.GetTasks(r.Context(), req.UserID)
	if err != nil {
		httputil.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	logs, err := a.repo.GetProductivityLogs(r.Context(), req.UserID)
	if err != nil {
		httputil.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	start := time.Now()
	rec := a.engine.ComputeRecommendations(tasks, logs)
	metrics.RecordRecommendation(time.Since(start))

	for _, p := range rec.ProcrastinationPatterns {
		metrics.RecordPattern(string(p.Type))
	}
	if len(logs) < 5 {
		metrics.ScheduleFallbacks.Inc()
	}

	httputil.WriteJSON(w, http.StatusOK, rec)
}

func (a *API) handleSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req StartSessionRequest
	if err := decodeBody(r, &req); err != nil {
		httputil.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		httputil.WriteJSONError(w, "user_id is required", http.StatusBadRequest)
		return
	}

	session := model.NewSession(req.UserID, req.TaskID, time.Now())
	if err := a.repo.StartSession(r.Context(), session); err != nil {
		httputil.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	metrics.SessionsStarted.Inc()

	httputil.WriteJSON(w, http.StatusCreated, session)
}

func (a *API) handleSessionByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		httputil.WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	if sessionID == "" {
		httputil.WriteJSONError(w, "Session ID is required", http.StatusBadRequest)
		return
	}

	var req EndSessionRequest
	if err := decodeBody(r, &req); err != nil {
		httputil.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := a.repo.EndSession(r.Context(), sessionID, time.Now(), req.FocusScore, req.EnergyLevel, req.Notes); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httputil.WriteJSONError(w, "Session not found", http.StatusNotFound)
			return
		}
		httputil.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	metrics.SessionsCompleted.Inc()

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleDigests(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if a.digests == nil {
		httputil.WriteJSONError(w, "Digest delivery is not configured", http.StatusServiceUnavailable)
		return
	}

	var req EnqueueDigestRequest
	if err := decodeBody(r, &req); err != nil {
		httputil.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.Email == "" {
		httputil.WriteJSONError(w, "user_id and email are required", http.StatusBadRequest)
		return
	}

	scheduledAt := time.Now()
	if req.ScheduleIn != nil {
		scheduledAt = scheduledAt.Add(time.Duration(*req.ScheduleIn) * time.Second)
	}
	job := digest.NewJob(req.UserID, req.Email, scheduledAt)

	if err := a.digests.Enqueue(job); err != nil {
		httputil.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	metrics.DigestsEnqueued.Inc()

	httputil.WriteJSON(w, http.StatusCreated, job)
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.New("Failed to read request body")
	}

	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Printf("failed to close request body: %v", err)
		}
	}()

	if err := json.Unmarshal(body, v); err != nil {
		return errors.New("Invalid JSON")
	}

	return nil
}
