// Package repository provides PostgreSQL persistence for tasks, productivity
// session logs and user profiles.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"github.com/genielab/genie/internal/model"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(connectionString string) (*PostgresRepository, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) GetTasks(ctx context.Context, userID string) ([]model.Task, error) {
	query := `
		SELECT id, user_id, title, COALESCE(description, ''), COALESCE(category, ''),
		       status, priority, due_date, completed_at, estimated_minutes,
		       created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		var dueDate, completedAt sql.NullTime
		var estimated sql.NullInt64

		if err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Title,
			&t.Description,
			&t.Category,
			&t.Status,
			&t.Priority,
			&dueDate,
			&completedAt,
			&estimated,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if dueDate.Valid {
			t.DueDate = &dueDate.Time
		}
		if completedAt.Valid {
			t.CompletedAt = &completedAt.Time
		}
		if estimated.Valid {
			minutes := int(estimated.Int64)
			t.EstimatedMinutes = &minutes
		}

		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (r *PostgresRepository) GetProductivityLogs(ctx context.Context, userID string) ([]model.ProductivityLog, error) {
	query := `
		SELECT id, user_id, task_id, start_time, end_time,
		       focus_score, energy_level, COALESCE(notes, ''), created_at
		FROM productivity_logs
		WHERE user_id = $1
		ORDER BY start_time ASC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var logs []model.ProductivityLog
	for rows.Next() {
		var l model.ProductivityLog
		var taskID sql.NullString
		var endTime sql.NullTime
		var focus, energy sql.NullInt64

		if err := rows.Scan(
			&l.ID,
			&l.UserID,
			&taskID,
			&l.StartTime,
			&endTime,
			&focus,
			&energy,
			&l.Notes,
			&l.CreatedAt,
		); err != nil {
			return nil, err
		}

		if taskID.Valid {
			id := taskID.String
			l.TaskID = &id
		}
		if endTime.Valid {
			l.EndTime = &endTime.Time
		}
		if focus.Valid {
			score := int(focus.Int64)
			l.FocusScore = &score
		}
		if energy.Valid {
			level := int(energy.Int64)
			l.EnergyLevel = &level
		}

		logs = append(logs, l)
	}

	return logs, rows.Err()
}

func (r *PostgresRepository) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	query := `
		SELECT id, COALESCE(username, ''), COALESCE(coins, 0),
		       genie_credits, COALESCE(streak_days, 0), created_at
		FROM profiles
		WHERE id = $1
	`

	var p model.Profile
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID,
		&p.Username,
		&p.Coins,
		&p.GenieCredits,
		&p.StreakDays,
		&p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// SpendGenieCredit decrements the balance in a single guarded UPDATE so
// concurrent spends cannot take it below zero.
func (r *PostgresRepository) SpendGenieCredit(ctx context.Context, userID string) error {
	query := `
		UPDATE profiles
		SET genie_credits = genie_credits - 1,
		    updated_at = NOW()
		WHERE id = $1 AND genie_credits > 0
	`
	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoGenieCredits
	}

	return nil
}

func (r *PostgresRepository) StartSession(ctx context.Context, l *model.ProductivityLog) error {
	query := `
		INSERT INTO productivity_logs (id, user_id, task_id, start_time, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	var taskID any
	if l.TaskID != nil {
		taskID = *l.TaskID
	}

	_, err := r.db.ExecContext(ctx, query, l.ID, l.UserID, taskID, l.StartTime, l.CreatedAt)
	return err
}

func (r *PostgresRepository) EndSession(ctx context.Context, logID string, end time.Time, focusScore, energyLevel *int, notes string) error {
	query := `
		UPDATE productivity_logs
		SET end_time = $1,
		    focus_score = $2,
		    energy_level = $3,
		    notes = $4
		WHERE id = $5
	`

	var focus, energy any
	if focusScore != nil {
		focus = *focusScore
	}
	if energyLevel != nil {
		energy = *energyLevel
	}

	result, err := r.db.ExecContext(ctx, query, end, focus, energy, notes, logID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) DB() *sql.DB {
	return r.db
}

func (r *PostgresRepository) Close() error {
	return r.db.Close()
}
