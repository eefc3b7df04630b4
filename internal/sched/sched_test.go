package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterFiresOnce(t *testing.T) {
	s := New()
	calls := 0
	h := s.After(100*time.Millisecond, func() { calls++ })

	assert.Equal(t, 0, s.Advance(99*time.Millisecond))
	assert.True(t, h.Active())

	assert.Equal(t, 1, s.Advance(time.Millisecond))
	assert.Equal(t, 1, calls)
	assert.False(t, h.Active())

	s.Advance(time.Second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.Pending())
}

func TestEveryCatchesUp(t *testing.T) {
	s := New()
	var at []time.Duration
	s.Every(100*time.Millisecond, func() { at = append(at, s.Now()) })

	fired := s.Advance(350 * time.Millisecond)
	assert.Equal(t, 3, fired)
	assert.Equal(t, []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		300 * time.Millisecond,
	}, at)
	assert.Equal(t, 350*time.Millisecond, s.Now())
}

func TestOrderingByDueThenRegistration(t *testing.T) {
	s := New()
	var order []string
	s.After(20*time.Millisecond, func() { order = append(order, "b") })
	s.After(10*time.Millisecond, func() { order = append(order, "a") })
	s.After(20*time.Millisecond, func() { order = append(order, "c") })

	s.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestCancel(t *testing.T) {
	s := New()
	calls := 0
	h := s.Every(10*time.Millisecond, func() { calls++ })

	s.Advance(25 * time.Millisecond)
	require.Equal(t, 2, calls)

	assert.True(t, h.Cancel())
	assert.False(t, h.Cancel(), "second cancel is a no-op")
	s.Advance(time.Second)
	assert.Equal(t, 2, calls)

	var nilHandle *Handle
	assert.False(t, nilHandle.Cancel())
	assert.False(t, nilHandle.Active())
}

func TestCallbackCanCancelAndSchedule(t *testing.T) {
	s := New()
	var order []string

	var victim *Handle
	s.After(10*time.Millisecond, func() {
		order = append(order, "first")
		victim.Cancel()
		s.After(5*time.Millisecond, func() { order = append(order, "chained") })
	})
	victim = s.After(12*time.Millisecond, func() { order = append(order, "victim") })

	s.Advance(20 * time.Millisecond)
	assert.Equal(t, []string{"first", "chained"}, order)
}

func TestCancelAll(t *testing.T) {
	s := New()
	calls := 0
	s.After(time.Millisecond, func() { calls++ })
	s.Every(time.Millisecond, func() { calls++ })

	s.CancelAll()
	assert.Equal(t, 0, s.Pending())
	s.Advance(time.Second)
	assert.Equal(t, 0, calls)
}

func TestScopeClose(t *testing.T) {
	s := New()
	sc := s.NewScope()
	calls := 0

	sc.After(50*time.Millisecond, func() { calls++ })
	sc.Every(10*time.Millisecond, func() { calls++ })
	outside := s.After(50*time.Millisecond, func() { calls += 100 })

	assert.Equal(t, 2, sc.Active())
	sc.Close()
	assert.True(t, sc.Closed())
	assert.Equal(t, 0, sc.Active())

	s.Advance(time.Second)
	assert.Equal(t, 100, calls, "only the timer outside the scope fires")
	assert.False(t, outside.Active())

	assert.Nil(t, sc.After(time.Millisecond, func() { calls++ }), "closed scope refuses timers")
	assert.Nil(t, sc.Every(time.Millisecond, func() { calls++ }))
	sc.Close()
}

func TestScopeDropsFinishedHandles(t *testing.T) {
	s := New()
	sc := s.NewScope()

	for i := 0; i < 10; i++ {
		sc.After(time.Millisecond, func() {})
		s.Advance(time.Millisecond)
	}
	sc.After(time.Hour, func() {})
	assert.Equal(t, 1, sc.Active())
	assert.LessOrEqual(t, len(sc.handles), 2)
}
