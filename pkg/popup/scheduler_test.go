package popup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_AutoDismiss(t *testing.T) {
	s := NewScheduler(20 * time.Millisecond)

	p := s.Show(3, 10, 20)
	require.Len(t, s.Active(), 1)
	assert.Equal(t, int64(3), p.Points)
	assert.NotEmpty(t, p.ID)

	assert.Eventually(t, func() bool { return len(s.Active()) == 0 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_DismissIdempotent(t *testing.T) {
	s := NewScheduler(time.Hour)
	defer s.Close()

	p := s.Show(1, 0, 0)

	assert.True(t, s.Dismiss(p.ID))
	assert.False(t, s.Dismiss(p.ID))
	assert.False(t, s.Dismiss("unknown"))
	assert.Empty(t, s.Active())
}

func TestScheduler_EarlyDismissThenTimer(t *testing.T) {
	s := NewScheduler(10 * time.Millisecond)

	first := s.Show(1, 0, 0)
	assert.True(t, s.Dismiss(first.ID))

	second := s.Show(2, 0, 0)
	// the first popup's timer must not remove anything else
	time.Sleep(5 * time.Millisecond)
	active := s.Active()
	if len(active) == 1 {
		assert.Equal(t, second.ID, active[0].ID)
	}

	assert.Eventually(t, func() bool { return len(s.Active()) == 0 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_CreationOrder(t *testing.T) {
	s := NewScheduler(time.Hour)
	defer s.Close()

	a := s.Show(1, 0, 0)
	b := s.Show(2, 0, 0)
	c := s.Show(3, 0, 0)
	s.Dismiss(b.ID)

	active := s.Active()
	require.Len(t, active, 2)
	assert.Equal(t, a.ID, active[0].ID)
	assert.Equal(t, c.ID, active[1].ID)
	assert.NotEqual(t, a.ID, c.ID)
}

func TestScheduler_DefaultTTL(t *testing.T) {
	s := NewScheduler(0)
	defer s.Close()
	assert.Equal(t, DefaultTTL, s.ttl)
}

func TestScheduler_Close(t *testing.T) {
	s := NewScheduler(time.Hour)
	s.Show(1, 0, 0)
	s.Show(1, 0, 0)

	s.Close()
	assert.Empty(t, s.Active())
}
