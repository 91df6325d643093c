package memorylimiter

import (
	"sync"
	"time"
)

// Limit is a fixed-window request budget.
type Limit struct {
	Limit  int
	Window time.Duration
}

type windowState struct {
	count int
	reset time.Time
}

// Limiter is an in-memory fixed-window rate limiter keyed by caller-supplied
// strings. Single-node only; counters are not shared across processes.
type Limiter struct {
	mu      sync.Mutex
	limits  map[string]Limit
	windows map[string]windowState
}

func New(limits map[string]Limit) *Limiter {
	return &Limiter{limits: limits, windows: make(map[string]windowState)}
}

// AllowNamed reports whether the key has budget left in the bucket's current
// window. Unknown buckets fall back to the "default" limit; with no default
// configured the limiter allows everything.
func (l *Limiter) AllowNamed(bucket string, key string) (bool, error) {
	lim, ok := l.limits[bucket]
	if !ok {
		lim, ok = l.limits["default"]
		if !ok {
			return true, nil
		}
	}
	if lim.Limit <= 0 || lim.Window <= 0 {
		return true, nil
	}

	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.After(w.reset) {
		l.windows[key] = windowState{count: 1, reset: now.Add(lim.Window)}
		return true, nil
	}
	if w.count >= lim.Limit {
		return false, nil
	}
	w.count++
	l.windows[key] = w
	return true, nil
}
