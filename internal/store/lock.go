package store

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// lockTimeout bounds how long a history operation waits for another
// sheetsmart process.
var lockTimeout = 5 * time.Second

// withLock runs fn while holding path.lock. A shared lock allows concurrent
// readers; an exclusive one serializes writers.
func withLock(ctx context.Context, path string, shared bool, fn func() error) error {
	fileLock := flock.New(path + ".lock")

	ctx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	kind, try := "lock", fileLock.TryLockContext
	if shared {
		kind, try = "read lock", fileLock.TryRLockContext
	}

	locked, err := try(ctx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("acquiring %s on %s: %w", kind, fileLock.Path(), err)
	}
	if !locked {
		return fmt.Errorf("timed out acquiring %s on %s", kind, fileLock.Path())
	}
	defer fileLock.Unlock()

	return fn()
}
