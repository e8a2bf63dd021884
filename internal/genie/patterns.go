package genie

import (
	"time"

	"github.com/genielab/genie/internal/model"
)

const (
	overdueThreshold       = 2 // patterns fire strictly above this
	lastMinuteThreshold    = 2
	lastMinuteWindowHours  = 3
	underestimateThreshold = 3 // fires at or above
	underestimateFactor    = 1.5
)

// identifyPatterns detects procrastination signatures from task and session
// history. Rules are evaluated independently and emitted in a fixed order;
// when none fire the insufficient_data fallback guarantees a non-empty
// result.
func identifyPatterns(tasks []model.Task, logs []model.ProductivityLog, now time.Time) []ProcrastinationPattern {
	var patterns []ProcrastinationPattern

	overdue := 0
	for _, t := range tasks {
		if t.Status == model.StatusCompleted || t.DueDate == nil {
			continue
		}
		if t.DueDate.Before(now) {
			overdue++
		}
	}
	if overdue > overdueThreshold {
		patterns = append(patterns, ProcrastinationPattern{
			Type:    PatternDeadlineMissing,
			Message: "You have multiple overdue tasks. Consider setting more realistic deadlines or breaking tasks into smaller pieces.",
		})
	}

	lastMinute := 0
	for _, t := range tasks {
		if t.DueDate == nil || t.CompletedAt == nil {
			continue
		}
		// Signed comparison on purpose: completions past the deadline land
		// in the window too.
		if t.DueDate.Sub(*t.CompletedAt).Hours() <= lastMinuteWindowHours {
			lastMinute++
		}
	}
	if lastMinute > lastMinuteThreshold {
		patterns = append(patterns, ProcrastinationPattern{
			Type:    PatternLastMinuteRush,
			Message: "You tend to complete tasks just before deadlines. Try breaking work into smaller milestones with earlier completion dates.",
		})
	}

	tasksByID := make(map[string]model.Task, len(tasks))
	for _, t := range tasks {
		tasksByID[t.ID] = t
	}
	underestimated := 0
	for _, l := range logs {
		if l.TaskID == nil || l.EndTime == nil || l.StartTime.IsZero() {
			continue
		}
		t, ok := tasksByID[*l.TaskID]
		if !ok || t.EstimatedMinutes == nil {
			continue
		}
		actual := l.EndTime.Sub(l.StartTime).Minutes()
		if actual > float64(*t.EstimatedMinutes)*underestimateFactor {
			underestimated++
		}
	}
	if underestimated >= underestimateThreshold {
		patterns = append(patterns, ProcrastinationPattern{
			Type:    PatternPoorTimeEstimation,
			Message: "You consistently underestimate how long tasks will take. Try multiplying your time estimates by 1.5 for more realistic planning.",
		})
	}

	if len(patterns) == 0 {
		patterns = append(patterns, ProcrastinationPattern{
			Type:    PatternInsufficientData,
			Message: "Not enough data to identify clear procrastination patterns yet. Continue logging your work to receive personalized insights.",
		})
	}

	return patterns
}
