package genie

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/genielab/genie/internal/model"
)

func sessionsOfLength(n, minutes int) []model.ProductivityLog {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	logs := make([]model.ProductivityLog, 0, n)
	for i := 0; i < n; i++ {
		logs = append(logs, completedSession(fmt.Sprintf("s%d", i), start, minutes, 50))
	}
	return logs
}

func TestTunePomodoro_Defaults(t *testing.T) {
	tests := []struct {
		name string
		logs []model.ProductivityLog
	}{
		{name: "no logs", logs: nil},
		{name: "too few completed sessions", logs: sessionsOfLength(2, 30)},
		{
			name: "open sessions do not count",
			logs: append(sessionsOfLength(2, 30),
				openSession("open-1", time.Now()),
				openSession("open-2", time.Now())),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tunePomodoro(tt.logs)

			assert.Equal(t, defaultWorkMinutes, p.WorkDuration)
			assert.Equal(t, defaultBreakMinutes, p.BreakDuration)
		})
	}
}

func TestTunePomodoro_TracksAverageSessionLength(t *testing.T) {
	tests := []struct {
		name      string
		minutes   int
		wantWork  int
		wantBreak int
	}{
		{name: "short sessions clamp up", minutes: 2, wantWork: 15, wantBreak: 3},
		{name: "long sessions clamp down", minutes: 200, wantWork: 45, wantBreak: 9},
		{name: "typical sessions round to nearest five", minutes: 32, wantWork: 30, wantBreak: 6},
		{name: "default-length sessions", minutes: 25, wantWork: 25, wantBreak: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tunePomodoro(sessionsOfLength(3, tt.minutes))

			assert.Equal(t, tt.wantWork, p.WorkDuration)
			assert.Equal(t, tt.wantBreak, p.BreakDuration)
			assert.Contains(t, p.Explanation, fmt.Sprintf("%d-minute work session", tt.wantWork))
			assert.Contains(t, p.Explanation, fmt.Sprintf("%d-minute break", tt.wantBreak))
		})
	}
}
