package engine

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// ResetSchedule yields the next reset instant after a claim
// cron.Schedule satisfies it
type ResetSchedule interface {
	Next(time.Time) time.Time
}

var taskCronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ParseResetSchedule parses a five-field cron expression
func ParseResetSchedule(expr string) (ResetSchedule, error) {
	sched, err := taskCronParser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("parse task reset schedule %q: %w", expr, err)
	}
	return sched, nil
}

// TaskAvailable reports whether the task can be claimed at now
// A claim stays valid until the first scheduled reset after it
func TaskAvailable(s GameState, taskID string, now time.Time, sched ResetSchedule) bool {
	last, ok := s.TaskClaims[taskID]
	if !ok || last.IsZero() {
		return true
	}
	return !now.Before(sched.Next(last))
}
