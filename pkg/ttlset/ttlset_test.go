package ttlset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fixed clock the tests can advance manually
func newTestSet(ttl time.Duration, capacity int) (*Set, *time.Time) {
	now := time.Unix(1700000000, 0)
	s := New(ttl, capacity)
	s.now = func() time.Time { return now }

	return s, &now
}

func TestObserve_duplicateWithinTTL(t *testing.T) {
	s, _ := newTestSet(3*time.Second, 0)

	require.False(t, s.Observe("8718452129911"))
	require.True(t, s.Observe("8718452129911"))
	require.False(t, s.Observe("4000417025005"))
}

func TestObserve_expiresAfterTTL(t *testing.T) {
	s, now := newTestSet(3*time.Second, 0)

	require.False(t, s.Observe("111"))
	*now = now.Add(2 * time.Second)
	require.True(t, s.Observe("111"))

	// the duplicate observation above did not extend the window
	*now = now.Add(2 * time.Second)
	require.False(t, s.Observe("111"))
}

func TestObserve_continuousScanningDoesNotSuppressForever(t *testing.T) {
	s, now := newTestSet(3*time.Second, 0)

	require.False(t, s.Observe("111"))
	*now = now.Add(time.Second)
	require.True(t, s.Observe("111"))
	*now = now.Add(time.Second)
	require.True(t, s.Observe("111"))

	// four seconds past the first observation the key is fresh again even
	// though it was observed every second in between
	*now = now.Add(2 * time.Second)
	require.False(t, s.Observe("111"))
}

func TestObserve_capacityEvictsOldest(t *testing.T) {
	s, _ := newTestSet(time.Hour, 2)

	require.False(t, s.Observe("a"))
	require.False(t, s.Observe("b"))
	require.False(t, s.Observe("c")) // evicts a
	require.Equal(t, 2, s.Len())

	require.False(t, s.Observe("a"))
	require.True(t, s.Observe("c"))
}

func TestObserve_reAddAfterForgetSurvivesStaleEviction(t *testing.T) {
	s, _ := newTestSet(time.Hour, 2)

	s.Observe("a")
	s.Observe("b")
	s.Forget("a")
	s.Observe("a") // re-added; the stale queue entry for a must not evict the fresh one
	s.Observe("c") // evicts b, the oldest live key

	require.True(t, s.Observe("a"))
	require.True(t, s.Observe("c"))
}

func TestForget(t *testing.T) {
	s, _ := newTestSet(time.Hour, 0)

	s.Observe("111")
	s.Forget("111")
	require.False(t, s.Observe("111"))
}

func TestLen_prunesExpired(t *testing.T) {
	s, now := newTestSet(time.Second, 0)

	s.Observe("a")
	s.Observe("b")
	require.Equal(t, 2, s.Len())

	*now = now.Add(2 * time.Second)
	require.Zero(t, s.Len())
}
