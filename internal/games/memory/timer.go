package memory

import "time"

// Timer is a one-shot countdown driven by elapsed time rather than a clock,
// so the owner decides what "time passing" means (ticks, wall clock, tests).
type Timer struct {
	remaining time.Duration
	active    bool
}

// Start arms the timer, replacing any pending countdown.
func (t *Timer) Start(d time.Duration) {
	t.remaining = max(d, 0)
	t.active = true
}

// Cancel disarms the timer. A cancelled timer never fires.
func (t *Timer) Cancel() {
	t.remaining = 0
	t.active = false
}

// Active reports whether a countdown is pending.
func (t *Timer) Active() bool {
	return t.active
}

// Remaining returns the time left on a pending countdown.
func (t *Timer) Remaining() time.Duration {
	if !t.active {
		return 0
	}
	return t.remaining
}

// Advance moves the countdown forward by dt and reports whether it fired.
// A timer fires at most once per Start.
func (t *Timer) Advance(dt time.Duration) bool {
	if !t.active {
		return false
	}
	t.remaining -= max(dt, 0)
	if t.remaining > 0 {
		return false
	}
	t.Cancel()
	return true
}
