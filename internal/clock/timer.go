// Package clock wraps github.com/juju/clock so the coordinator's single
// Timeout Timer (spec §4.1) can be driven by a fake clock in tests — in
// particular the load-timeout scenario (S4) needs to observe a softerror
// transition "after 180 s simulated time" without the test actually
// sleeping for three minutes.
package clock

import (
	"sync"
	"time"

	jujuclock "github.com/juju/clock"
)

// Timer is a single-armed, one-shot timer. Arming while armed cancels the
// prior arming (spec §4.1, §5: "at most one timer is armed at a time").
// Firing invokes callback on whatever goroutine the underlying clock's
// AfterFunc uses; callers that need the callback to run on the coordinator's
// own actor goroutine (see internal/coordinator) must have callback send on
// a channel rather than mutate shared state directly.
type Timer struct {
	clock   jujuclock.Clock
	enabled bool

	mu      sync.Mutex
	current jujuclock.Timer
}

// New creates a Timer backed by clk. If enabled is false, Arm and Disarm are
// no-ops, matching spec §4.1's "If timeouts are disabled by configuration,
// both are no-ops."
func New(clk jujuclock.Clock, enabled bool) *Timer {
	return &Timer{clock: clk, enabled: enabled}
}

// Arm schedules callback to run after d. Any previously armed timer is
// disarmed first.
func (t *Timer) Arm(d time.Duration, callback func()) {
	if !t.enabled {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current != nil {
		t.current.Stop()
		t.current = nil
	}
	t.current = t.clock.AfterFunc(d, callback)
}

// Disarm cancels any currently armed timer. Disarming an already-fired or
// never-armed timer is a no-op.
func (t *Timer) Disarm() {
	if !t.enabled {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current != nil {
		t.current.Stop()
		t.current = nil
	}
}
