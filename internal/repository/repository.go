package repository

import (
	"context"
	"errors"
	"time"

	"github.com/genielab/genie/internal/model"
)

var (
	// ErrNoGenieCredits is returned when a credit spend finds the balance at
	// zero (or the profile missing).
	ErrNoGenieCredits = errors.New("no genie credits remaining")
	ErrNotFound       = errors.New("record not found")
)

type Repository interface {
	GetTasks(ctx context.Context, userID string) ([]model.Task, error)
	GetProductivityLogs(ctx context.Context, userID string) ([]model.ProductivityLog, error)
	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
	SpendGenieCredit(ctx context.Context, userID string) error
	StartSession(ctx context.Context, log *model.ProductivityLog) error
	EndSession(ctx context.Context, logID string, end time.Time, focusScore, energyLevel *int, notes string) error
	Close() error
}
