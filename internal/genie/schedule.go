package genie

import (
	"sort"

	"github.com/genielab/genie/internal/model"
)

// minLogsForPersonalization counts every log the user has, open sessions
// included. Below it the generic default schedule is returned.
const minLogsForPersonalization = 5

const clockFormat = "15:04"

func defaultTimeBlocks() []TimeBlock {
	return []TimeBlock{
		{StartTime: "09:00", EndTime: "11:00", ActivityType: "Deep Work", Recommendation: "Schedule high priority and complex tasks"},
		{StartTime: "11:00", EndTime: "12:00", ActivityType: "Admin Tasks", Recommendation: "Handle emails and small administrative tasks"},
		{StartTime: "13:30", EndTime: "15:30", ActivityType: "Collaborative Work", Recommendation: "Schedule meetings and collaborative tasks"},
		{StartTime: "15:30", EndTime: "17:00", ActivityType: "Learning & Growth", Recommendation: "Work on personal development tasks"},
	}
}

// synthesizeSchedule derives recommended daily time blocks from the user's
// highest-focus completed sessions, falling back to the fixed default
// schedule when history is thin.
func synthesizeSchedule(logs []model.ProductivityLog) WorkSchedule {
	if len(logs) < minLogsForPersonalization {
		return WorkSchedule{
			Message:    "Based on general productivity patterns, here's a recommended schedule:",
			TimeBlocks: defaultTimeBlocks(),
		}
	}

	var completed []model.ProductivityLog
	for _, l := range logs {
		if l.EndTime != nil && l.FocusScore != nil && !l.StartTime.IsZero() {
			completed = append(completed, l)
		}
	}

	// Stable keeps the original log order on equal scores.
	sort.SliceStable(completed, func(i, j int) bool {
		return *completed[i].FocusScore > *completed[j].FocusScore
	})
	if len(completed) > maxRecommendations {
		completed = completed[:maxRecommendations]
	}

	blocks := make([]TimeBlock, 0, len(completed))
	for _, l := range completed {
		score := *l.FocusScore
		blocks = append(blocks, TimeBlock{
			StartTime:      l.StartTime.Format(clockFormat),
			EndTime:        l.EndTime.Format(clockFormat),
			ActivityType:   "Deep Work",
			Recommendation: "This is your peak productivity time based on past performance",
			FocusScore:     &score,
		})
	}

	// Enough logs overall but none of them finished with a focus score.
	if len(blocks) == 0 {
		blocks = defaultTimeBlocks()
	}

	return WorkSchedule{
		Message:    "Based on your productivity patterns, here are your optimal work times:",
		TimeBlocks: blocks,
	}
}
