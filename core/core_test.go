package core

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScreen struct {
	finished int
}

func (f *fakeScreen) Fini() { f.finished++ }

func stubExit(t *testing.T) *int {
	t.Helper()
	code := -1
	orig := exitFunc
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() {
		exitFunc = orig
		SetScreen(nil)
	})
	return &code
}

func TestHandleCrashFinalizesScreen(t *testing.T) {
	code := stubExit(t)
	screen := &fakeScreen{}
	SetScreen(screen)

	HandleCrash("boom")

	assert.Equal(t, 1, screen.finished)
	assert.Equal(t, 1, *code)
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	code := stubExit(t)
	screen := &fakeScreen{}
	SetScreen(screen)

	HandleCrash(nil)

	assert.Equal(t, 0, screen.finished)
	assert.Equal(t, -1, *code)
}

func TestGoRecoversPanic(t *testing.T) {
	var mu sync.Mutex
	var wg sync.WaitGroup
	code := -1
	orig := exitFunc
	exitFunc = func(c int) {
		mu.Lock()
		code = c
		mu.Unlock()
		wg.Done()
	}
	t.Cleanup(func() { exitFunc = orig })

	wg.Add(1)
	Go(func() { panic("worker failed") })
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, code)
}

func TestNewLoggerDisabled(t *testing.T) {
	logger, err := NewLogger(DisabledLogPath, "info")
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("discarded")
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "game.log")
	logger, err := NewLogger(path, "debug")
	require.NoError(t, err)

	logger.Info("started")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"started"`)
}

func TestNewLoggerBadLevel(t *testing.T) {
	_, err := NewLogger(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)
}
