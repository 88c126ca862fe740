package storage

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// Interval for cleaning up stale mutexes
	lockCleanupInterval = 10 * time.Minute

	// How long a mutex must be unused before cleanup
	lockStaleThreshold = 10 * time.Minute
)

// KeyLocker hands out one mutex per store key so that a repository's
// read-modify-write of a collection is a single logical transaction.
//
// Locks are process local. Two processes sharing a Redis or Postgres backend
// are not coordinated.
type KeyLocker struct {
	log   *logrus.Logger
	locks sync.Map // map[string]*mutexWithTimestamp

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// mutexWithTimestamp tracks mutex usage for cleanup
type mutexWithTimestamp struct {
	mu       sync.Mutex
	lastUsed atomic.Int64 // Unix timestamp
}

// NewKeyLocker starts the background cleanup goroutine.
// Call Stop() during graceful shutdown.
func NewKeyLocker(log *logrus.Logger) *KeyLocker {
	l := &KeyLocker{
		log:      log,
		stopChan: make(chan struct{}),
	}

	l.wg.Add(1)
	go l.cleanupLoop()

	return l
}

// Lock acquires the mutex for key and returns its release func
func (l *KeyLocker) Lock(key string) func() {
	mt := l.get(key)
	mt.mu.Lock()
	return func() {
		mt.lastUsed.Store(time.Now().Unix())
		mt.mu.Unlock()
	}
}

// Stop gracefully shuts down the cleanup goroutine.
// Safe to call multiple times.
func (l *KeyLocker) Stop() {
	if l.stopped.CompareAndSwap(false, true) {
		close(l.stopChan)
		l.wg.Wait()
		l.log.Debug("KeyLocker stopped")
	}
}

func (l *KeyLocker) get(key string) *mutexWithTimestamp {
	mt, _ := l.locks.LoadOrStore(key, &mutexWithTimestamp{})
	result := mt.(*mutexWithTimestamp)
	result.lastUsed.Store(time.Now().Unix())
	return result
}

func (l *KeyLocker) cleanupLoop() {
	defer l.wg.Done()

	ticker := time.NewTicker(lockCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-ticker.C:
			l.cleanupStale(time.Now().Add(-lockStaleThreshold))
		}
	}
}

// cleanupStale removes mutexes unused since cutoff. lastUsed is checked
// while holding the lock so a concurrent get cannot slip in between.
func (l *KeyLocker) cleanupStale(cutoff time.Time) int {
	cutoffUnix := cutoff.Unix()
	var cleaned int

	l.locks.Range(func(key, value any) bool {
		mt, ok := value.(*mutexWithTimestamp)
		if !ok {
			return true
		}

		if mt.mu.TryLock() {
			if mt.lastUsed.Load() < cutoffUnix {
				l.locks.Delete(key)
				cleaned++
			}
			mt.mu.Unlock()
		}
		return true
	})

	if cleaned > 0 {
		l.log.Debugf("Cleaned up %d stale key locks", cleaned)
	}
	return cleaned
}
