package locker

import (
	"context"
	"sync"
	"time"

	"github.com/stpnv0/StayBooker/internal/domain"
)

// KeyedMutex hands out one exclusive lock per key (per listing). Acquisition
// waits at most the configured timeout and then fails with ErrLockTimeout, so
// a stuck caller surfaces as a retryable busy error instead of a deadlock.
type KeyedMutex struct {
	mu      sync.Mutex
	sems    map[string]chan struct{}
	timeout time.Duration
}

func New(timeout time.Duration) *KeyedMutex {
	return &KeyedMutex{
		sems:    make(map[string]chan struct{}),
		timeout: timeout,
	}
}

// Lock acquires the key's lock and returns the unlock func. Locks on
// different keys never contend.
func (k *KeyedMutex) Lock(ctx context.Context, key string) (func(), error) {
	sem := k.sem(key)

	timer := time.NewTimer(k.timeout)
	defer timer.Stop()

	select {
	case sem <- struct{}{}:
		return func() { <-sem }, nil
	case <-timer.C:
		return nil, domain.ErrLockTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (k *KeyedMutex) sem(key string) chan struct{} {
	k.mu.Lock()
	defer k.mu.Unlock()

	sem, ok := k.sems[key]
	if !ok {
		sem = make(chan struct{}, 1)
		k.sems[key] = sem
	}
	return sem
}
