package discord

import (
	"sync"
	"time"
)

// Ventana por usuario para absorber el doble click en los botones: dos nav
// seguidos re-renderizan lo mismo y un doble delete caería en NotFound,
// mejor cortarlo antes de tocar el store.
type clickLimiter struct {
	mu   sync.Mutex
	next map[string]time.Time
	win  time.Duration
}

func newClickLimiter(window time.Duration) *clickLimiter {
	return &clickLimiter{next: map[string]time.Time{}, win: window}
}

func (l *clickLimiter) Allow(userID string) bool {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	if until, ok := l.next[userID]; ok && now.Before(until) {
		return false
	}
	l.next[userID] = now.Add(l.win)
	return true
}
