package orchestrator

import (
	"fmt"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
)

// sessionLockPath lives under .git so it never shows up as an untracked file
// and disappears with the checkout. It is transient coordination, not state.
const sessionLockPath = ".git/retag.lock"

// acquireSessionLock enforces the one-session-at-a-time model: a second
// concurrent session against the same checkout fails fast instead of racing
// the first one's force-pushes.
func acquireSessionLock(path string) (*flock.Flock, error) {
	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire session lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another session is already running in this repository")
	}
	return lock, nil
}

func releaseSessionLock(lock *flock.Flock, log *zap.Logger) {
	if err := lock.Unlock(); err != nil {
		log.Warn("failed to release session lock", zap.Error(err))
	}
}
