package genie

import "github.com/genielab/genie/internal/model"

// Recommendation is the aggregate result of one engine run. It is computed
// fresh on every invocation and never persisted.
type Recommendation struct {
	HighPriorityRecommendations []TaskRecommendation     `json:"highPriorityRecommendations"`
	TimeManagement              WorkSchedule             `json:"timeManagement"`
	ProcrastinationPatterns     []ProcrastinationPattern `json:"procrastinationPatterns"`
	ProductivityTips            []string                 `json:"productivityTips"`
	SuggestedPomodoro           PomodoroSuggestion       `json:"suggestedPomodoro"`
}

// TaskRecommendation is one advisory entry from the prioritizer. The fallback
// entry produced for an empty candidate set carries only a Message.
type TaskRecommendation struct {
	TaskID       string             `json:"taskId,omitempty"`
	Title        string             `json:"title,omitempty"`
	Priority     model.TaskPriority `json:"priority,omitempty"`
	Message      string             `json:"message,omitempty"`
	TimeEstimate string             `json:"timeEstimate,omitempty"`
}

type WorkSchedule struct {
	Message    string      `json:"message"`
	TimeBlocks []TimeBlock `json:"timeBlocks"`
}

// TimeBlock start and end are zero-padded 24-hour clock times ("09:00").
// FocusScore is set only on personalized blocks.
type TimeBlock struct {
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	ActivityType   string `json:"activityType"`
	Recommendation string `json:"recommendation"`
	FocusScore     *int   `json:"focusScore,omitempty"`
}

type PatternType string

const (
	PatternDeadlineMissing    PatternType = "deadline_missing"
	PatternLastMinuteRush     PatternType = "last_minute_rush"
	PatternPoorTimeEstimation PatternType = "poor_time_estimation"
	PatternInsufficientData   PatternType = "insufficient_data"
)

type ProcrastinationPattern struct {
	Type    PatternType `json:"type"`
	Message string      `json:"message"`
}

type PomodoroSuggestion struct {
	WorkDuration  int    `json:"workDuration"`
	BreakDuration int    `json:"breakDuration"`
	Explanation   string `json:"explanation"`
}
