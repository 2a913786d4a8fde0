package marketdata

import (
	"log"
	"sync"
	"time"

	"github.com/Lewis310/MyPortfolio/internal/apperrors"
)

// LimiterStore persists the limiter's call counter and last-call timestamp
// across restarts. Implemented by repository.SettingsRepository.
type LimiterStore interface {
	LoadCallState() (calls int, last time.Time, err error)
	SaveCallState(calls int, last time.Time) error
}

// Limiter enforces the market-data API budget: a minimum spacing between
// calls (12s for the 5 calls/minute tier) and a daily call budget. The
// budget is API-key-wide, so one limiter is shared across all symbol
// fetches and its state is mutex-protected.
type Limiter struct {
	mu          sync.Mutex
	minInterval time.Duration
	dailyBudget int
	calls       int
	last        time.Time

	store LimiterStore

	// overridable in tests
	now   func() time.Time
	sleep func(time.Duration)
}

// DefaultMinInterval spaces calls to respect a 5 calls/minute budget.
const DefaultMinInterval = 12 * time.Second

// NewLimiter creates a Limiter with the given spacing and daily budget.
// A non-positive budget means unlimited daily calls.
func NewLimiter(minInterval time.Duration, dailyBudget int) *Limiter {
	return &Limiter{
		minInterval: minInterval,
		dailyBudget: dailyBudget,
		now:         time.Now,
		sleep:       time.Sleep,
	}
}

// WithStore attaches persistence for the call counters and loads any
// previously saved state. A load failure is logged and ignored so a fresh
// database does not block startup.
func (l *Limiter) WithStore(store LimiterStore) *Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.store = store
	calls, last, err := store.LoadCallState()
	if err != nil {
		log.Printf("rate limiter: could not load persisted call state: %v", err)
		return l
	}
	l.calls = calls
	l.last = last
	return l
}

// Acquire reserves one API call. It returns ErrRateLimitExceeded when the
// daily budget is exhausted, otherwise it blocks until the minimum spacing
// since the previous call has elapsed and records the call.
//
// The wait happens under the lock: concurrent fetchers serialize here, which
// is exactly the global spacing the provider budget requires.
func (l *Limiter) Acquire() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.dailyBudget > 0 && l.calls >= l.dailyBudget {
		return apperrors.ErrRateLimitExceeded
	}

	if !l.last.IsZero() {
		if wait := l.minInterval - l.now().Sub(l.last); wait > 0 {
			l.sleep(wait)
		}
	}

	l.calls++
	l.last = l.now()
	l.persistLocked()
	return nil
}

// Remaining returns the number of calls left in the daily budget.
// An unlimited limiter reports a large remainder rather than a sentinel.
func (l *Limiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.dailyBudget <= 0 {
		return int(^uint(0) >> 1)
	}
	remaining := l.dailyBudget - l.calls
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Reset clears the daily call counter. Scheduled at midnight by the refresh
// job.
func (l *Limiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.calls = 0
	l.persistLocked()
}

func (l *Limiter) persistLocked() {
	if l.store == nil {
		return
	}
	if err := l.store.SaveCallState(l.calls, l.last); err != nil {
		log.Printf("rate limiter: could not persist call state: %v", err)
	}
}
