package catalog

import "github.com/lixenwraith/abcedion/locale"

// TaskAction labels the task button
type TaskAction int

const (
	ActionClaim TaskAction = iota
	ActionPlay
)

// Task is a daily task that credits Reward once per reset window
type Task struct {
	ID     string
	Title  locale.Text
	Reward float64
	Action TaskAction
}

// Tasks is the daily task list in display order
var Tasks = []Task{
	{
		ID:     "follow_tg",
		Title:  locale.Text{AR: "تابعنا على تيليجرام", EN: "Follow us on Telegram"},
		Reward: 5000,
		Action: ActionClaim,
	},
	{
		ID:     "watch_video",
		Title:  locale.Text{AR: "شاهد فيديو يومي", EN: "Watch Daily Video"},
		Reward: 10000,
		Action: ActionPlay,
	},
}

// TaskByID finds a task by identifier
func TaskByID(id string) (Task, bool) {
	for _, t := range Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}
