package confirmgate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGate_Acquire(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Gate)
		user  int64
		accnt int64
		want  bool
	}{
		{
			name:  "свободный аккаунт захватывается",
			setup: func(g *Gate) {},
			user:  1,
			accnt: 10,
			want:  true,
		},
		{
			name: "занятый аккаунт не захватывается повторно",
			setup: func(g *Gate) {
				g.Acquire(1, 10)
			},
			user:  2,
			accnt: 10,
			want:  false,
		},
		{
			name: "другой аккаунт захватывается независимо",
			setup: func(g *Gate) {
				g.Acquire(1, 10)
			},
			user:  2,
			accnt: 11,
			want:  true,
		},
		{
			name: "после Release аккаунт снова свободен",
			setup: func(g *Gate) {
				g.Acquire(1, 10)
				g.Release(1)
			},
			user:  2,
			accnt: 10,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			tt.setup(g)
			assert.Equal(t, tt.want, g.Acquire(tt.user, tt.accnt))
		})
	}
}

func TestGate_Acquire_SupersedesPriorGuard(t *testing.T) {
	g := New()

	// one owner with two submissions: the second guard replaces the first
	assert.True(t, g.Acquire(1, 10))
	assert.True(t, g.Acquire(1, 11))

	// the first account's lock was freed, not stranded
	assert.True(t, g.Acquire(2, 10))

	// releasing the owner frees the account the live guard holds
	g.Release(1)
	assert.True(t, g.Acquire(3, 11))
}

func TestGate_IsExpiredAndBlock(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }

	g := NewWithClock(func() time.Time { return clock() })
	assert.True(t, g.Acquire(1, 10))

	// within the timeout the guard is alive
	now = now.Add(179 * time.Second)
	assert.False(t, g.IsExpiredAndBlock(1))
	assert.False(t, g.IsBlocked(1))

	// the first access past the deadline trips the block exactly once
	now = now.Add(2 * time.Second)
	assert.True(t, g.IsExpiredAndBlock(1))
	assert.False(t, g.IsExpiredAndBlock(1))
	assert.True(t, g.IsBlocked(1))
}

func TestGate_IsExpiredAndBlock_NoGuard(t *testing.T) {
	g := New()
	assert.False(t, g.IsExpiredAndBlock(42))
	assert.False(t, g.IsBlocked(42))
}

func TestGate_Release_FreesAccount(t *testing.T) {
	now := time.Now()
	g := NewWithClock(func() time.Time { return now })

	assert.True(t, g.Acquire(1, 10))
	g.Release(1)

	// releasing drops the block state along with the guard
	assert.False(t, g.IsBlocked(1))
	assert.True(t, g.Acquire(3, 10))
}

func TestGate_Release_UnknownUser(t *testing.T) {
	g := New()
	g.Release(99)
	assert.True(t, g.Acquire(99, 5))
}

func TestGate_Acquire_Concurrent(t *testing.T) {
	g := New()

	const workers = 20
	results := make(chan bool, workers)
	for i := 0; i < workers; i++ {
		go func(userID int64) {
			results <- g.Acquire(userID, 10)
		}(int64(i + 1))
	}

	won := 0
	for i := 0; i < workers; i++ {
		if <-results {
			won++
		}
	}
	assert.Equal(t, 1, won)
}
