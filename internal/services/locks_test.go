package services

import (
	"sync"
	"testing"
	"time"
)

func TestShopperLocksSerialize(t *testing.T) {
	l := NewShopperLocks()
	release := l.Acquire("s1")

	done := make(chan struct{})
	go func() {
		r := l.Acquire("s1")
		r()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("second acquire did not block")
	case <-time.After(20 * time.Millisecond):
	}

	release()
	<-done
}

func TestShopperLocksEvictIdleEntries(t *testing.T) {
	l := NewShopperLocks()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				release := l.Acquire("s1")
				release()
			}
		}()
	}
	release := l.Acquire("s2")
	release()
	wg.Wait()

	l.mu.Lock()
	n := len(l.sems)
	l.mu.Unlock()
	if n != 0 {
		t.Fatalf("want empty lock registry after all releases, got %d entries", n)
	}
}
