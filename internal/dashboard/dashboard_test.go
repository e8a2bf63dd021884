package dashboard

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/genielab/genie/internal/model"
	"github.com/genielab/genie/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDashboard(t *testing.T) (*Dashboard, *repository.MockRepository) {
	mockRepo := repository.NewMockRepository()
	dash := NewDashboard(mockRepo)

	return dash, mockRepo
}

func TestNewDashboard(t *testing.T) {
	dash, _ := setupTestDashboard(t)

	assert.NotNil(t, dash)
	assert.NotNil(t, dash.repo)
}

func TestGetSummary_Empty(t *testing.T) {
	dash, _ := setupTestDashboard(t)

	req := httptest.NewRequest("GET", "/api/analytics/summary?user_id=user-1", nil)
	w := httptest.NewRecorder()

	dash.GetSummary(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var summary Summary
	err := json.Unmarshal(w.Body.Bytes(), &summary)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalTasks)
	assert.Equal(t, 0, summary.LoggedSessions)
	assert.Equal(t, float64(0), summary.CompletionRate)
	assert.Equal(t, "N/A", summary.LoggedFocusTime)
	assert.NotZero(t, summary.LastUpdated)
}

func TestGetSummary_WithTasks(t *testing.T) {
	dash, mockRepo := setupTestDashboard(t)

	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)
	mockRepo.Tasks["user-1"] = []model.Task{
		{ID: "t1", Status: model.StatusPending, Category: "work", DueDate: &past},
		{ID: "t2", Status: model.StatusInProgress, Category: "work"},
		{ID: "t3", Status: model.StatusCompleted, Category: "health", DueDate: &future},
		{ID: "t4", Status: model.StatusCompleted, Category: "health"},
	}

	req := httptest.NewRequest("GET", "/api/analytics/summary?user_id=user-1", nil)
	w := httptest.NewRecorder()

	dash.GetSummary(w, req)

	assert.Equal(t, 200, w.Code)

	var summary Summary
	err := json.Unmarshal(w.Body.Bytes(), &summary)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalTasks)
	assert.Equal(t, 1, summary.PendingTasks)
	assert.Equal(t, 1, summary.InProgressTasks)
	assert.Equal(t, 2, summary.CompletedTasks)
	assert.Equal(t, 1, summary.OverdueTasks)
	assert.Equal(t, float64(50), summary.CompletionRate)
	assert.Equal(t, map[string]int{"work": 2, "health": 2}, summary.TasksByCategory)
}

func TestGetSummary_WithSessions(t *testing.T) {
	dash, mockRepo := setupTestDashboard(t)

	start := time.Now().Add(-2 * time.Hour)
	end1 := start.Add(50 * time.Minute)
	end2 := start.Add(80 * time.Minute)
	focus1, focus2 := 70, 90
	mockRepo.Logs["user-1"] = []model.ProductivityLog{
		{ID: "l1", StartTime: start, EndTime: &end1, FocusScore: &focus1},
		{ID: "l2", StartTime: start, EndTime: &end2, FocusScore: &focus2},
		{ID: "l3", StartTime: start},
	}

	req := httptest.NewRequest("GET", "/api/analytics/summary?user_id=user-1", nil)
	w := httptest.NewRecorder()

	dash.GetSummary(w, req)

	assert.Equal(t, 200, w.Code)

	var summary Summary
	err := json.Unmarshal(w.Body.Bytes(), &summary)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.LoggedSessions)
	assert.Equal(t, "2h10m0s", summary.LoggedFocusTime)
	assert.Equal(t, float64(80), summary.AverageFocus)
}

func TestGetSummary_MissingUserID(t *testing.T) {
	dash, _ := setupTestDashboard(t)

	req := httptest.NewRequest("GET", "/api/analytics/summary", nil)
	w := httptest.NewRecorder()

	dash.GetSummary(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestGetSummary_RepositoryError(t *testing.T) {
	dash, mockRepo := setupTestDashboard(t)
	mockRepo.GetTasksError = errors.New("database connection failed")

	req := httptest.NewRequest("GET", "/api/analytics/summary?user_id=user-1", nil)
	w := httptest.NewRecorder()

	dash.GetSummary(w, req)

	assert.Equal(t, 500, w.Code)

	var errResp map[string]string
	err := json.NewDecoder(w.Body).Decode(&errResp)
	require.NoError(t, err)
	assert.Contains(t, errResp["error"], "database connection failed")
}
