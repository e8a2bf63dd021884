package genie

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genielab/genie/internal/model"
)

func patternTypes(patterns []ProcrastinationPattern) []PatternType {
	types := make([]PatternType, 0, len(patterns))
	for _, p := range patterns {
		types = append(types, p.Type)
	}
	return types
}

func overdueTasks(now time.Time, n int) []model.Task {
	tasks := make([]model.Task, 0, n)
	for i := 0; i < n; i++ {
		tasks = append(tasks, pendingTask(
			fmt.Sprintf("overdue-%d", i),
			model.PriorityMedium,
			timePtr(now.Add(-time.Duration(i+1)*24*time.Hour)),
		))
	}
	return tasks
}

func TestIdentifyPatterns_InsufficientData(t *testing.T) {
	patterns := identifyPatterns(nil, nil, time.Now())

	require.Len(t, patterns, 1)
	assert.Equal(t, PatternInsufficientData, patterns[0].Type)
	assert.NotEmpty(t, patterns[0].Message)
}

func TestIdentifyPatterns_DeadlineMissingThreshold(t *testing.T) {
	now := time.Now()

	t.Run("two overdue does not fire", func(t *testing.T) {
		patterns := identifyPatterns(overdueTasks(now, 2), nil, now)

		assert.Equal(t, []PatternType{PatternInsufficientData}, patternTypes(patterns))
	})

	t.Run("three overdue fires", func(t *testing.T) {
		patterns := identifyPatterns(overdueTasks(now, 3), nil, now)

		assert.Equal(t, []PatternType{PatternDeadlineMissing}, patternTypes(patterns))
	})
}

func TestIdentifyPatterns_DeadlineMissingIgnoresCompleted(t *testing.T) {
	now := time.Now()
	tasks := overdueTasks(now, 3)
	tasks[0].Status = model.StatusCompleted

	patterns := identifyPatterns(tasks, nil, now)

	assert.Equal(t, []PatternType{PatternInsufficientData}, patternTypes(patterns))
}

func TestIdentifyPatterns_LastMinuteRush(t *testing.T) {
	now := time.Now()

	lastMinute := func(id string, gap time.Duration) model.Task {
		due := now.Add(-24 * time.Hour)
		task := pendingTask(id, model.PriorityMedium, &due)
		task.Status = model.StatusCompleted
		task.CompletedAt = timePtr(due.Add(-gap))
		return task
	}

	t.Run("three completions inside the window fire", func(t *testing.T) {
		tasks := []model.Task{
			lastMinute("a", 30*time.Minute),
			lastMinute("b", 2*time.Hour),
			lastMinute("c", -1*time.Hour), // finished after the deadline
		}

		patterns := identifyPatterns(tasks, nil, now)

		assert.Equal(t, []PatternType{PatternLastMinuteRush}, patternTypes(patterns))
	})

	t.Run("early completions do not fire", func(t *testing.T) {
		tasks := []model.Task{
			lastMinute("a", 48*time.Hour),
			lastMinute("b", 48*time.Hour),
			lastMinute("c", 48*time.Hour),
		}

		patterns := identifyPatterns(tasks, nil, now)

		assert.Equal(t, []PatternType{PatternInsufficientData}, patternTypes(patterns))
	})
}

func TestIdentifyPatterns_PoorTimeEstimation(t *testing.T) {
	now := time.Now()
	start := now.Add(-30 * 24 * time.Hour)

	task := pendingTask("est", model.PriorityMedium, nil)
	task.EstimatedMinutes = intPtr(30)

	overrun := func(id string, minutes int) model.ProductivityLog {
		l := completedSession(id, start, minutes, 50)
		l.TaskID = strPtr("est")
		return l
	}

	t.Run("three overruns fire", func(t *testing.T) {
		logs := []model.ProductivityLog{
			overrun("1", 50), // > 45 = 30 * 1.5
			overrun("2", 90),
			overrun("3", 46),
		}

		patterns := identifyPatterns([]model.Task{task}, logs, now)

		assert.Equal(t, []PatternType{PatternPoorTimeEstimation}, patternTypes(patterns))
	})

	t.Run("two overruns do not fire", func(t *testing.T) {
		logs := []model.ProductivityLog{
			overrun("1", 50),
			overrun("2", 90),
			overrun("3", 45), // exactly 1.5x, not above
		}

		patterns := identifyPatterns([]model.Task{task}, logs, now)

		assert.Equal(t, []PatternType{PatternInsufficientData}, patternTypes(patterns))
	})

	t.Run("logs without a matching task are skipped", func(t *testing.T) {
		orphan := overrun("1", 500)
		orphan.TaskID = strPtr("missing")

		patterns := identifyPatterns([]model.Task{task}, []model.ProductivityLog{orphan, orphan, orphan}, now)

		assert.Equal(t, []PatternType{PatternInsufficientData}, patternTypes(patterns))
	})
}

func TestIdentifyPatterns_EmissionOrder(t *testing.T) {
	now := time.Now()

	tasks := overdueTasks(now, 3)
	for i := 0; i < 3; i++ {
		due := now.Add(-24 * time.Hour)
		task := pendingTask(fmt.Sprintf("rush-%d", i), model.PriorityMedium, &due)
		task.Status = model.StatusCompleted
		task.CompletedAt = timePtr(due.Add(-time.Hour))
		tasks = append(tasks, task)
	}

	patterns := identifyPatterns(tasks, nil, now)

	assert.Equal(t,
		[]PatternType{PatternDeadlineMissing, PatternLastMinuteRush},
		patternTypes(patterns))
}
