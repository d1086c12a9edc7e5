package physics

// Timer is a one-shot continuation keyed by accumulated simulation time.
// It only progresses when Advance is called, so a host that stops ticking
// (pause, game over) freezes it.
type Timer struct {
	remaining float64
	armed     bool
}

// Schedule arms the timer to fire after d seconds of advanced time.
// Scheduling an armed timer restarts it.
func (t *Timer) Schedule(d float64) {
	t.remaining = d
	t.armed = true
}

// Advance consumes dt seconds and reports whether the timer fired during this call.
// A timer fires exactly once per Schedule.
func (t *Timer) Advance(dt float64) bool {
	if !t.armed {
		return false
	}
	t.remaining -= dt
	if t.remaining > 0 {
		return false
	}
	t.armed = false
	t.remaining = 0
	return true
}

// Cancel disarms the timer without firing.
func (t *Timer) Cancel() {
	t.armed = false
	t.remaining = 0
}

// Armed reports whether the timer is waiting to fire.
func (t *Timer) Armed() bool {
	return t.armed
}

// Remaining returns the seconds left before the timer fires.
func (t *Timer) Remaining() float64 {
	return t.remaining
}
