package genie

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/genielab/genie/internal/model"
)

const maxRecommendations = 3

// prioritizeTasks ranks pending tasks into at most three advisory entries.
// Candidates are high-priority tasks plus tasks due within the next 24 hours,
// deduplicated by id with the high-priority set first. When nothing
// qualifies, a single congratulatory entry is returned instead of an empty
// list.
func prioritizeTasks(tasks []model.Task, now time.Time) []TaskRecommendation {
	var pending []model.Task
	for _, t := range tasks {
		if t.Status != model.StatusCompleted {
			pending = append(pending, t)
		}
	}

	dueCutoff := now.Add(24 * time.Hour)
	seen := make(map[string]bool, len(pending))
	var candidates []model.Task
	for _, t := range pending {
		if t.Priority == model.PriorityHigh {
			candidates = append(candidates, t)
			seen[t.ID] = true
		}
	}
	for _, t := range pending {
		if seen[t.ID] || t.DueDate == nil {
			continue
		}
		if !t.DueDate.After(dueCutoff) {
			candidates = append(candidates, t)
		}
	}

	// Tasks with a due date come first, earliest due date wins; the rest
	// order by priority rank.
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		switch {
		case a.DueDate != nil && b.DueDate != nil:
			return a.DueDate.Before(*b.DueDate)
		case a.DueDate != nil:
			return true
		case b.DueDate != nil:
			return false
		default:
			return a.Priority.Rank() < b.Priority.Rank()
		}
	})

	if len(candidates) > maxRecommendations {
		candidates = candidates[:maxRecommendations]
	}

	recs := make([]TaskRecommendation, 0, len(candidates))
	for _, t := range candidates {
		rec := TaskRecommendation{
			TaskID:   t.ID,
			Title:    t.Title,
			Priority: t.Priority,
		}

		if t.DueDate != nil {
			switch days := daysUntil(*t.DueDate, now); {
			case days <= 0:
				rec.Message = "This task is overdue! Make it your top priority."
			case days == 1:
				rec.Message = "Due tomorrow! Complete today to avoid last-minute stress."
			default:
				rec.Message = fmt.Sprintf("Due in %d days. Start now to avoid procrastination.", days)
			}
		} else if t.Priority == model.PriorityHigh {
			rec.Message = "High priority task with no deadline. Schedule it this week."
		}

		if t.EstimatedMinutes != nil {
			rec.TimeEstimate = fmt.Sprintf("%d minutes", *t.EstimatedMinutes)
		}

		recs = append(recs, rec)
	}

	if len(recs) == 0 {
		recs = append(recs, TaskRecommendation{
			Message: "You have no high priority or urgent tasks. Great job staying on top of things!",
		})
	}

	return recs
}

func daysUntil(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}
