package genie

const tipCount = 3

var generalTips = []string{
	"Use the Pomodoro technique: 25 minutes of focus followed by a 5-minute break.",
	"Break large tasks into smaller, manageable sub-tasks.",
	"Start your day with your most important task (MIT).",
	"Set specific and realistic goals for each work session.",
	"Remove distractions from your workspace before starting focused work.",
}

var patternTips = map[PatternType][]string{
	PatternDeadlineMissing: {
		"Try the '2-minute rule': If a task takes less than 2 minutes, do it immediately.",
		"Schedule buffer time between tasks to account for unexpected delays.",
	},
	PatternLastMinuteRush: {
		"Set personal deadlines 2-3 days before the actual deadline.",
		"Use a visual progress tracker to motivate consistent work.",
	},
	PatternPoorTimeEstimation: {
		"Log how long tasks actually take to improve future estimates.",
		"Use the 'triple time' rule: estimate your time, then multiply by three.",
	},
}

// selectTips draws exactly three tips, uniformly at random, from the general
// pool extended with tips specific to the detected patterns.
func (e *Engine) selectTips(patterns []ProcrastinationPattern) []string {
	pool := make([]string, 0, len(generalTips)+2*len(patterns))
	pool = append(pool, generalTips...)
	for _, p := range patterns {
		pool = append(pool, patternTips[p.Type]...)
	}

	e.shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	return pool[:tipCount]
}
