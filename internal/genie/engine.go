// Package genie implements the recommendation engine behind the Genie
// feature. From a snapshot of a user's tasks and logged work sessions it
// derives priority recommendations, an optimal daily schedule,
// procrastination diagnostics, productivity tips and tuned Pomodoro
// intervals. Every stage is a pure function of its inputs: missing or
// insufficient data degrades to documented defaults, never to an error.
package genie

import (
	"math/rand"
	"time"

	"github.com/genielab/genie/internal/model"
)

type Engine struct {
	now     func() time.Time
	shuffle func(n int, swap func(i, j int))
}

func NewEngine() *Engine {
	return &Engine{
		now:     time.Now,
		shuffle: rand.Shuffle,
	}
}

// ComputeRecommendations runs all four stages against the same input
// snapshot. Inputs are never mutated, so concurrent calls are safe; tip
// selection is the only intentionally non-deterministic part.
func (e *Engine) ComputeRecommendations(tasks []model.Task, logs []model.ProductivityLog) Recommendation {
	now := e.now()
	patterns := identifyPatterns(tasks, logs, now)

	return Recommendation{
		HighPriorityRecommendations: prioritizeTasks(tasks, now),
		TimeManagement:              synthesizeSchedule(logs),
		ProcrastinationPatterns:     patterns,
		ProductivityTips:            e.selectTips(patterns),
		SuggestedPomodoro:           tunePomodoro(logs),
	}
}
