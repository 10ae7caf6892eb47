package services

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"maka/internal/domain"
)

func TestMarkSeenFirstObservationWins(t *testing.T) {
	set := NewIdentitySet()
	id := domain.Identity{Dev: 1, Ino: 42}

	assert.True(t, set.MarkSeen(id))
	assert.False(t, set.MarkSeen(id))
	assert.True(t, set.Seen(id))

	other := domain.Identity{Dev: 1, Ino: 43}
	assert.False(t, set.Seen(other))
	assert.True(t, set.MarkSeen(other))
}

func TestMarkSeenConcurrentSingleWinner(t *testing.T) {
	set := NewIdentitySet()
	id := domain.Identity{Dev: 7, Ino: 7}

	var winners atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if set.MarkSeen(id) {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), winners.Load())
}
