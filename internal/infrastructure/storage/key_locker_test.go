package storage

import (
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestKeyLocker_SerializesSameKey(t *testing.T) {
	l := NewKeyLocker(logrus.New())
	defer l.Stop()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock(KeyCitas)
			defer unlock()
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestKeyLocker_CleanupStale(t *testing.T) {
	l := NewKeyLocker(logrus.New())
	defer l.Stop()

	unlock := l.Lock(KeyDoctors)
	unlock()
	held := l.Lock(KeyPatients)

	// The held lock is skipped, the released one is stale relative to a future cutoff.
	cleaned := l.cleanupStale(time.Now().Add(time.Hour))
	held()

	assert.Equal(t, 1, cleaned)
}

func TestKeyLocker_StopIsIdempotent(t *testing.T) {
	l := NewKeyLocker(logrus.New())

	l.Stop()
	l.Stop()
}
