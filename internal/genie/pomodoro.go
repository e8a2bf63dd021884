package genie

import (
	"fmt"
	"math"

	"github.com/genielab/genie/internal/model"
)

const (
	defaultWorkMinutes  = 25
	defaultBreakMinutes = 5
	minWorkMinutes      = 15
	maxWorkMinutes      = 45
	minBreakMinutes     = 3
	maxBreakMinutes     = 15
	minCompletedForTune = 3
)

// tunePomodoro suggests work/break interval lengths. With at least three
// finished sessions the work interval tracks the user's average session
// length, rounded to the nearest five minutes and clamped to [15, 45]; the
// break is a fifth of that, clamped to [3, 15].
func tunePomodoro(logs []model.ProductivityLog) PomodoroSuggestion {
	work, brk := defaultWorkMinutes, defaultBreakMinutes

	var totalMinutes float64
	completed := 0
	for _, l := range logs {
		if l.EndTime == nil || l.StartTime.IsZero() {
			continue
		}
		totalMinutes += l.EndTime.Sub(l.StartTime).Minutes()
		completed++
	}

	if completed >= minCompletedForTune {
		avg := totalMinutes / float64(completed)
		work = clamp(int(math.Round(avg/5))*5, minWorkMinutes, maxWorkMinutes)
		brk = clamp(int(math.Round(float64(work)/5)), minBreakMinutes, maxBreakMinutes)
	}

	return PomodoroSuggestion{
		WorkDuration:  work,
		BreakDuration: brk,
		Explanation: fmt.Sprintf(
			"Based on your productivity patterns, a %d-minute work session followed by a %d-minute break should be optimal for your focus rhythm.",
			work, brk,
		),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
