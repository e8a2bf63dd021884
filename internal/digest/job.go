// Package digest delivers scheduled recommendation digests by email. Jobs
// wait in a Redis-backed queue until due; a worker computes a fresh
// recommendation for the user and sends the rendered digest.
package digest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobPending JobStatus = "pending"
	JobSending JobStatus = "sending"
	JobSent    JobStatus = "sent"
	JobFailed  JobStatus = "failed"
)

type Job struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Email       string     `json:"email"`
	Status      JobStatus  `json:"status"`
	Attempts    int        `json:"attempts"`
	MaxAttempts int        `json:"max_attempts"`
	CreatedAt   time.Time  `json:"created_at"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	Error       string     `json:"error,omitempty"`
}

func NewJob(userID, email string, scheduledAt time.Time) *Job {
	return &Job{
		ID:          uuid.New().String(),
		UserID:      userID,
		Email:       email,
		Status:      JobPending,
		MaxAttempts: 3,
		CreatedAt:   time.Now(),
		ScheduledAt: scheduledAt,
	}
}

func (j *Job) ToJSON() (string, error) {
	data, err := json.Marshal(j)
	return string(data), err
}

func JobFromJSON(data string) (*Job, error) {
	var job Job
	err := json.Unmarshal([]byte(data), &job)
	return &job, err
}
