package services

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// ShopperLocks serializes one shopper's basket mutations and checkout
// relative to each other. Different shoppers never contend.
type ShopperLocks struct {
	mu   sync.Mutex
	sems map[string]*lockEntry
}

type lockEntry struct {
	sem *semaphore.Weighted
	// holders plus waiters; the entry is dropped when this reaches zero
	refs int
}

func NewShopperLocks() *ShopperLocks {
	return &ShopperLocks{sems: make(map[string]*lockEntry)}
}

// Acquire blocks until the shopper's slot is free. Release via the
// returned func, which evicts the entry once the last holder or waiter
// is done with it.
func (l *ShopperLocks) Acquire(shopperID string) func() {
	l.mu.Lock()
	e, ok := l.sems[shopperID]
	if !ok {
		e = &lockEntry{sem: semaphore.NewWeighted(1)}
		l.sems[shopperID] = e
	}
	e.refs++
	l.mu.Unlock()

	// Background context: operations are short and never cancelled mid-flight.
	_ = e.sem.Acquire(context.Background(), 1)

	return func() {
		e.sem.Release(1)
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.sems, shopperID)
		}
		l.mu.Unlock()
	}
}
