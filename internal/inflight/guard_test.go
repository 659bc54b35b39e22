package inflight

import (
    "sync"
    "sync/atomic"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "chaincarbon/internal/domain"
)

func TestGuard_RejectsDuplicate(t *testing.T) {
    t.Parallel()

    g := New()
    key := Key("sess-1", "retire", "CERT-1")

    release, err := g.Acquire(key)
    require.NoError(t, err)
    assert.True(t, g.Busy(key))

    _, err = g.Acquire(key)
    assert.ErrorIs(t, err, domain.ErrInFlight)
    assert.ErrorIs(t, err, domain.ErrConflict)

    other, err := g.Acquire(Key("sess-2", "retire", "CERT-1"))
    require.NoError(t, err)
    other()

    release()
    release()
    assert.False(t, g.Busy(key))

    again, err := g.Acquire(key)
    require.NoError(t, err)
    again()
}

func TestGuard_ConcurrentAcquireSingleWinner(t *testing.T) {
    t.Parallel()

    g := New()
    var wins atomic.Int32
    var wg sync.WaitGroup
    start := make(chan struct{})
    for i := 0; i < 32; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            <-start
            if _, err := g.Acquire("k"); err == nil {
                wins.Add(1)
            }
        }()
    }
    close(start)
    wg.Wait()
    assert.Equal(t, int32(1), wins.Load())
}
