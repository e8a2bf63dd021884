package repository

import (
	"context"
	"sync"
	"time"

	"github.com/genielab/genie/internal/model"
)

// MockRepository is an in-memory Repository for tests. Data maps are keyed by
// user id; error fields force the matching method to fail.
type MockRepository struct {
	mu sync.Mutex

	Tasks    map[string][]model.Task
	Logs     map[string][]model.ProductivityLog
	Profiles map[string]*model.Profile

	StartSessionCalls []model.ProductivityLog
	EndSessionCalls   []EndSessionCall
	CreditSpendCalls  []string

	GetTasksError         error
	GetLogsError          error
	GetProfileError       error
	SpendGenieCreditError error
	StartSessionError     error
	EndSessionError       error
}

type EndSessionCall struct {
	LogID       string
	End         time.Time
	FocusScore  *int
	EnergyLevel *int
	Notes       string
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		Tasks:    make(map[string][]model.Task),
		Logs:     make(map[string][]model.ProductivityLog),
		Profiles: make(map[string]*model.Profile),
	}
}

func (m *MockRepository) GetTasks(_ context.Context, userID string) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetTasksError != nil {
		return nil, m.GetTasksError
	}
	return m.Tasks[userID], nil
}

func (m *MockRepository) GetProductivityLogs(_ context.Context, userID string) ([]model.ProductivityLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetLogsError != nil {
		return nil, m.GetLogsError
	}
	return m.Logs[userID], nil
}

func (m *MockRepository) GetProfile(_ context.Context, userID string) (*model.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetProfileError != nil {
		return nil, m.GetProfileError
	}

	p, ok := m.Profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *MockRepository) SpendGenieCredit(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreditSpendCalls = append(m.CreditSpendCalls, userID)

	if m.SpendGenieCreditError != nil {
		return m.SpendGenieCreditError
	}

	p, ok := m.Profiles[userID]
	if !ok || p.GenieCredits <= 0 {
		return ErrNoGenieCredits
	}
	p.GenieCredits--
	return nil
}

func (m *MockRepository) StartSession(_ context.Context, l *model.ProductivityLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.StartSessionError != nil {
		return m.StartSessionError
	}

	m.StartSessionCalls = append(m.StartSessionCalls, *l)
	m.Logs[l.UserID] = append(m.Logs[l.UserID], *l)
	return nil
}

func (m *MockRepository) EndSession(_ context.Context, logID string, end time.Time, focusScore, energyLevel *int, notes string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.EndSessionError != nil {
		return m.EndSessionError
	}

	m.EndSessionCalls = append(m.EndSessionCalls, EndSessionCall{
		LogID:       logID,
		End:         end,
		FocusScore:  focusScore,
		EnergyLevel: energyLevel,
		Notes:       notes,
	})

	for userID, logs := range m.Logs {
		for i := range logs {
			if logs[i].ID == logID {
				logs[i].EndTime = &end
				logs[i].FocusScore = focusScore
				logs[i].EnergyLevel = energyLevel
				logs[i].Notes = notes
				m.Logs[userID] = logs
				return nil
			}
		}
	}

	return ErrNotFound
}

func (m *MockRepository) Close() error {
	return nil
}
