package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLocalSerializesSameKey(t *testing.T) {
	l := NewLocal()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(context.Background(), "employee:1")
			require.NoError(t, err)
			defer unlock()

			n := atomic.AddInt32(&inside, 1)
			for {
				prev := atomic.LoadInt32(&maxInside)
				if n <= prev || atomic.CompareAndSwapInt32(&maxInside, prev, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), maxInside)
	require.Zero(t, l.size(), "idle keys must be dropped")
}

func TestLocalKeysAreIndependent(t *testing.T) {
	l := NewLocal()

	unlockA, err := l.Lock(context.Background(), "employee:1")
	require.NoError(t, err)
	defer unlockA()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	unlockB, err := l.Lock(ctx, "employee:2")
	require.NoError(t, err)
	unlockB()
}

func TestLocalHonoursContext(t *testing.T) {
	l := NewLocal()

	unlock, err := l.Lock(context.Background(), "employee:1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "employee:1")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	unlock()
	require.Zero(t, l.size())

	again, err := l.Lock(context.Background(), "employee:1")
	require.NoError(t, err)
	again()
}
