// Package model defines the task and productivity-session domain types shared
// by the recommendation engine, persistence and API layers.
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type (
	TaskStatus   string
	TaskPriority string
)

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Task is a user-created unit of work. DueDate, CompletedAt and
// EstimatedMinutes are optional; a nil CompletedAt means the task was never
// finished regardless of Status.
type Task struct {
	ID               string       `json:"id"`
	UserID           string       `json:"user_id"`
	Title            string       `json:"title"`
	Description      string       `json:"description,omitempty"`
	Category         string       `json:"category,omitempty"`
	Status           TaskStatus   `json:"status"`
	Priority         TaskPriority `json:"priority"`
	DueDate          *time.Time   `json:"due_date,omitempty"`
	CompletedAt      *time.Time   `json:"completed_at,omitempty"`
	EstimatedMinutes *int         `json:"estimated_minutes,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// ProductivityLog is one recorded work session. A log with no EndTime is an
// open session and is excluded from every duration-based computation.
type ProductivityLog struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	TaskID      *string    `json:"task_id,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	FocusScore  *int       `json:"focus_score,omitempty"`
	EnergyLevel *int       `json:"energy_level,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Profile carries the per-user balances kept in the database. GenieCredits
// gates recommendation requests; Coins belongs to the reward shop and is
// never touched by this service.
type Profile struct {
	ID           string    `json:"id"`
	Username     string    `json:"username,omitempty"`
	Coins        int       `json:"coins"`
	GenieCredits int       `json:"genie_credits"`
	StreakDays   int       `json:"streak_days"`
	CreatedAt    time.Time `json:"created_at"`
}

// Rank orders priorities for sorting: high before medium before low.
// Unknown values sort last.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

func NewSession(userID string, taskID *string, start time.Time) *ProductivityLog {
	return &ProductivityLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		TaskID:    taskID,
		StartTime: start,
		CreatedAt: time.Now(),
	}
}

func (l *ProductivityLog) ToJSON() (string, error) {
	data, err := json.Marshal(l)
	return string(data), err
}

func LogFromJSON(data string) (*ProductivityLog, error) {
	var l ProductivityLog
	err := json.Unmarshal([]byte(data), &l)
	return &l, err
}
