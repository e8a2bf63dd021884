// Package dashboard implements the analytics summary endpoint backing the app's stats views.
package dashboard

import (
	"net/http"
	"time"

	"github.com/genielab/genie/internal/httputil"
	"github.com/genielab/genie/internal/model"
	"github.com/genielab/genie/internal/repository"
)

type Dashboard struct {
	repo repository.Repository
}

type Summary struct {
	TotalTasks      int            `json:"total_tasks"`
	PendingTasks    int            `json:"pending_tasks"`
	InProgressTasks int            `json:"in_progress_tasks"`
	CompletedTasks  int            `json:"completed_tasks"`
	OverdueTasks    int            `json:"overdue_tasks"`
	TasksByCategory map[string]int `json:"tasks_by_category"`
	CompletionRate  float64        `json:"completion_rate"`
	LoggedSessions  int            `json:"logged_sessions"`
	LoggedFocusTime string         `json:"logged_focus_time"`
	AverageFocus    float64        `json:"average_focus"`
	LastUpdated     time.Time      `json:"last_updated"`
}

func NewDashboard(repo repository.Repository) *Dashboard {
	return &Dashboard{repo: repo}
}

func (d *Dashboard) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		httputil.WriteJSONError(w, "user_id is required", http.StatusBadRequest)
		return
	}

	tasks, err := d.repo.GetTasks(r.Context(), userID)
	if err != nil {
		httputil.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	logs, err := d.repo.GetProductivityLogs(r.Context(), userID)
	if err != nil {
		httputil.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summary := Summary{
		TotalTasks:      len(tasks),
		TasksByCategory: make(map[string]int),
		LastUpdated:     time.Now(),
	}

	now := time.Now()
	for _, task := range tasks {
		switch task.Status {
		case model.StatusPending:
			summary.PendingTasks++
		case model.StatusInProgress:
			summary.InProgressTasks++
		case model.StatusCompleted:
			summary.CompletedTasks++
		}

		if task.Category != "" {
			summary.TasksByCategory[task.Category]++
		}

		if task.Status != model.StatusCompleted && task.DueDate != nil && task.DueDate.Before(now) {
			summary.OverdueTasks++
		}
	}

	if summary.TotalTasks > 0 {
		summary.CompletionRate = float64(summary.CompletedTasks) / float64(summary.TotalTasks) * 100
	}

	var focusTime time.Duration
	var focusTotal, focusCount int
	for _, l := range logs {
		if l.EndTime == nil {
			continue
		}
		summary.LoggedSessions++
		focusTime += l.EndTime.Sub(l.StartTime)

		if l.FocusScore != nil {
			focusTotal += *l.FocusScore
			focusCount++
		}
	}

	if focusTime > 0 {
		summary.LoggedFocusTime = focusTime.Round(time.Minute).String()
	} else {
		summary.LoggedFocusTime = "N/A"
	}
	if focusCount > 0 {
		summary.AverageFocus = float64(focusTotal) / float64(focusCount)
	}

	httputil.WriteJSON(w, http.StatusOK, summary)
}
