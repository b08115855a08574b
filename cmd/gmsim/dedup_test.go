package main

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecentSet(t *testing.T) {
	s := newRecentSet(3)

	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("a"))
	assert.True(t, s.Add("b"))
	assert.True(t, s.Add("c"))
	assert.Equal(t, 3, s.Len())

	// d evicts a, the oldest
	assert.True(t, s.Add("d"))
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.Add("b"))
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("d"))
}

func TestRecentSet_Bounded(t *testing.T) {
	s := newRecentSet(100)
	for i := 0; i < 10_000; i++ {
		assert.True(t, s.Add(fmt.Sprintf("sig-%d", i)))
	}
	assert.Equal(t, 100, s.Len())
	assert.False(t, s.Add("sig-9999"))
	assert.True(t, s.Add("sig-0"))
}

func TestRecentSet_Concurrent(t *testing.T) {
	s := newRecentSet(1024)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
	)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if s.Add(fmt.Sprintf("sig-%d", i)) {
					mu.Lock()
					admitted++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 200, admitted)
	assert.Equal(t, 200, s.Len())
}

func TestRecentSet_ZeroCapacity(t *testing.T) {
	s := newRecentSet(0)
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("a"))
	assert.True(t, s.Add("b"))
	assert.Equal(t, 1, s.Len())
}
