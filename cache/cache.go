package cache

import (
	"sync"
	"tracker-server/entities"
)

// ActivityBuffer holds activity events awaiting their bulk insert,
// grouped per user, with running per-action counters.
type ActivityBuffer struct {
	mu       sync.RWMutex
	events   map[string][]entities.Activity // map[userID][]events
	byAction map[string]int
}

func NewActivityBuffer() *ActivityBuffer {
	return &ActivityBuffer{
		events:   make(map[string][]entities.Activity),
		byAction: make(map[string]int),
	}
}

// Add appends an event to the buffer.
func (b *ActivityBuffer) Add(event entities.Activity) {
	b.mu.Lock()
	defer b.mu.Unlock()

	userID := event.UserID
	if _, exists := b.events[userID]; !exists {
		b.events[userID] = make([]entities.Activity, 0)
	}
	b.events[userID] = append(b.events[userID], event)
	b.byAction[event.Action]++
}

// Recent returns the newest buffered events for one user, most recent
// first, capped at limit.
func (b *ActivityBuffer) Recent(userID string, limit int) []entities.Activity {
	b.mu.RLock()
	defer b.mu.RUnlock()

	buffered := b.events[userID]
	recent := make([]entities.Activity, 0, limit)
	for i := len(buffered) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, buffered[i])
	}
	return recent
}

// All returns a copy of every buffered event grouped by user.
func (b *ActivityBuffer) All() map[string][]entities.Activity {
	b.mu.RLock()
	defer b.mu.RUnlock()

	all := make(map[string][]entities.Activity)
	for userID, events := range b.events {
		all[userID] = make([]entities.Activity, len(events))
		copy(all[userID], events)
	}
	return all
}

// Drain empties the buffer and returns what it held, in one step under
// the write lock. Events added after the swap land in the fresh buffer,
// so nothing recorded during a flush can be lost.
func (b *ActivityBuffer) Drain() map[string][]entities.Activity {
	b.mu.Lock()
	defer b.mu.Unlock()

	drained := b.events
	b.events = make(map[string][]entities.Activity)
	b.byAction = make(map[string]int)
	return drained
}

// Stats returns statistics about the current buffer.
func (b *ActivityBuffer) Stats() map[string]interface{} {
	b.mu.RLock()
	defer b.mu.RUnlock()

	total := 0
	for _, events := range b.events {
		total += len(events)
	}

	byAction := make(map[string]int, len(b.byAction))
	for action, count := range b.byAction {
		byAction[action] = count
	}

	return map[string]interface{}{
		"total_users":  len(b.events),
		"total_events": total,
		"by_action":    byAction,
	}
}

// Clear empties the buffer, counters included.
func (b *ActivityBuffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = make(map[string][]entities.Activity)
	b.byAction = make(map[string]int)
}
