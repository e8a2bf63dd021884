package genie

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genielab/genie/internal/model"
)

func completedSession(id string, start time.Time, minutes int, focus int) model.ProductivityLog {
	end := start.Add(time.Duration(minutes) * time.Minute)
	return model.ProductivityLog{
		ID:         id,
		UserID:     "user-1",
		StartTime:  start,
		EndTime:    &end,
		FocusScore: intPtr(focus),
	}
}

func openSession(id string, start time.Time) model.ProductivityLog {
	return model.ProductivityLog{
		ID:        id,
		UserID:    "user-1",
		StartTime: start,
	}
}

func TestSynthesizeSchedule_DefaultsBelowThreshold(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	logs := []model.ProductivityLog{
		completedSession("1", start, 60, 80),
		completedSession("2", start, 60, 70),
		completedSession("3", start, 60, 60),
		completedSession("4", start, 60, 50),
	}

	sched := synthesizeSchedule(logs)

	assert.Equal(t, defaultTimeBlocks(), sched.TimeBlocks)
	assert.Contains(t, sched.Message, "general productivity patterns")
}

func TestSynthesizeSchedule_EmptyLogs(t *testing.T) {
	sched := synthesizeSchedule(nil)

	require.Len(t, sched.TimeBlocks, 4)
	assert.Equal(t, "09:00", sched.TimeBlocks[0].StartTime)
	assert.Equal(t, "Deep Work", sched.TimeBlocks[0].ActivityType)
	assert.Nil(t, sched.TimeBlocks[0].FocusScore)
}

func TestSynthesizeSchedule_TopThreeByFocusDescending(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	logs := []model.ProductivityLog{
		completedSession("1", day.Add(8*time.Hour), 90, 90),
		completedSession("2", day.Add(11*time.Hour), 60, 40),
		completedSession("3", day.Add(14*time.Hour), 120, 70),
		completedSession("4", day.Add(19*time.Hour), 30, 10),
		openSession("5", day.Add(21*time.Hour)),
		openSession("6", day.Add(22*time.Hour)),
	}

	sched := synthesizeSchedule(logs)

	require.Len(t, sched.TimeBlocks, 3)
	assert.Equal(t, 90, *sched.TimeBlocks[0].FocusScore)
	assert.Equal(t, 70, *sched.TimeBlocks[1].FocusScore)
	assert.Equal(t, 40, *sched.TimeBlocks[2].FocusScore)
	assert.Contains(t, sched.Message, "your productivity patterns")
}

func TestSynthesizeSchedule_BlockClockTimes(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	logs := []model.ProductivityLog{
		completedSession("1", day.Add(8*time.Hour+5*time.Minute), 115, 95),
		openSession("2", day),
		openSession("3", day),
		openSession("4", day),
		openSession("5", day),
	}

	sched := synthesizeSchedule(logs)

	require.Len(t, sched.TimeBlocks, 1)
	assert.Equal(t, "08:05", sched.TimeBlocks[0].StartTime)
	assert.Equal(t, "10:00", sched.TimeBlocks[0].EndTime)
	assert.Equal(t, "Deep Work", sched.TimeBlocks[0].ActivityType)
}

func TestSynthesizeSchedule_OpenSessionsOnlyFallBackToDefaults(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	logs := make([]model.ProductivityLog, 0, 5)
	for i := 0; i < 5; i++ {
		logs = append(logs, openSession("open", day.Add(time.Duration(i)*time.Hour)))
	}

	sched := synthesizeSchedule(logs)

	assert.Equal(t, defaultTimeBlocks(), sched.TimeBlocks)
}
