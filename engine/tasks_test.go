package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/abcedion/catalog"
)

func TestParseResetSchedule(t *testing.T) {
	sched, err := ParseResetSchedule("0 0 * * *")
	require.NoError(t, err)
	next := sched.Next(baseTime)
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), next)

	_, err = ParseResetSchedule("every day")
	assert.Error(t, err)
}

func TestTaskAvailable(t *testing.T) {
	sched, err := ParseResetSchedule("0 */6 * * *")
	require.NoError(t, err)

	s := DefaultState(baseTime)
	assert.True(t, TaskAvailable(s, "follow_tg", baseTime, sched))

	task, _ := catalog.TaskByID("follow_tg")
	s, err = ClaimTask(s, task, baseTime, sched)
	require.NoError(t, err)

	assert.False(t, TaskAvailable(s, "follow_tg", baseTime.Add(time.Hour), sched))
	assert.True(t, TaskAvailable(s, "follow_tg", baseTime.Add(2*time.Hour), sched))
	assert.True(t, TaskAvailable(s, "watch_video", baseTime, sched))

	_, err = ClaimTask(s, task, baseTime.Add(time.Minute), sched)
	assert.ErrorIs(t, err, ErrTaskClaimed)
}
