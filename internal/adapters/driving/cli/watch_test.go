package cli

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCmd_RequiresExistingFile(t *testing.T) {
	setupTestServices(t)

	_, _, err := executeCommand(t, nil, "watch", filepath.Join(t.TempDir(), "missing.csv"))

	assert.Error(t, err)
}

func TestWatchFile_CallsOnChange(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "acqf.csv")
	other := filepath.Join(dir, "other.csv")
	require.NoError(t, os.WriteFile(target, []byte(primaryCSV), 0o600))

	var changes atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, target, func() { changes.Add(1) })
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(other, []byte("x"), 0o600))
	time.Sleep(2 * watchDebounce)
	assert.Zero(t, changes.Load())

	require.NoError(t, os.WriteFile(target, []byte(secondaryCSV), 0o600))
	assert.Eventually(t, func() bool { return changes.Load() >= 1 }, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watchFile did not stop after cancel")
	}
}

func TestWatchFile_MissingDirectory(t *testing.T) {
	err := watchFile(context.Background(), filepath.Join(t.TempDir(), "nope", "a.csv"), func() {})

	assert.Error(t, err)
}
