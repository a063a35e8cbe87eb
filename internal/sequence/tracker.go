// Package sequence implements the Sequence Tracker (spec §4.2): given an
// expected ordered list of states and a set of site IDs, it accepts state
// reports of the form (site_id, state) and completes once every site has
// reported the final expected state. Off-sequence reports invoke an error
// callback and disable the tracker's ability to complete.
//
// Grounded on the original's SequenceContainer usage in master_application.py
// (pendingTransitionsControl / pendingTransitionsTest), generalized to Go.
package sequence

// OnComplete is invoked exactly once, when every site has reached the final
// expected state.
type OnComplete func()

// OnUnexpected is invoked whenever a site reports a state that is neither
// its current expected state nor the next one in sequence.
type OnUnexpected func(site string, state string)

// Tracker tracks each site's progress through an ordered list of expected
// states.
type Tracker struct {
	expected   []string
	onComplete OnComplete
	onBad      OnUnexpected

	index map[string]int // site -> index into expected already reached
	dead  bool            // true once any site has misbehaved
	done  bool            // true once onComplete has fired
}

// New creates a Tracker watching sites for the ordered states in expected.
// expected must be non-empty. sites is the set of site IDs that must all
// reach expected[len(expected)-1] before onComplete fires.
func New(expected []string, sites []string, onComplete OnComplete, onUnexpected OnUnexpected) *Tracker {
	index := make(map[string]int, len(sites))
	for _, s := range sites {
		index[s] = 0
	}
	return &Tracker{
		expected:   expected,
		onComplete: onComplete,
		onBad:      onUnexpected,
		index:      index,
	}
}

// sentinel is a value no real site state can ever equal; NewExpectSequence
// prepends it so that the first real target in a states list is reachable
// via the "advance to i+1" branch on its very first report, rather than
// being mistaken for an idempotent re-report of an already-reached state.
const sentinel = "\x00unreached"

// NewExpectSequence is a convenience constructor for the common case of
// "expect every site to report this ordered list of states, starting from
// none of them reported yet" (e.g. spec §4.5's "expect control
// loading→busy then testapp idle"). It is equivalent to calling New with
// sentinel prepended to states.
func NewExpectSequence(states []string, sites []string, onComplete OnComplete, onUnexpected OnUnexpected) *Tracker {
	expected := make([]string, 0, len(states)+1)
	expected = append(expected, sentinel)
	expected = append(expected, states...)
	return New(expected, sites, onComplete, onUnexpected)
}

// Trigger reports that site reached state. See spec §4.2 for the exact
// semantics:
//   - if state is the next state in the sequence, the site advances;
//     if every site is now at the final index, onComplete fires once.
//   - if state equals the site's current (already-reached) state, the
//     report is idempotent and ignored.
//   - otherwise onUnexpected fires and the tracker can never complete again
//     (though it keeps reporting further unexpected states).
func (t *Tracker) Trigger(site string, state string) {
	i, tracked := t.index[site]
	if !tracked {
		t.onBad(site, state)
		return
	}

	if state == t.expected[i] {
		return // idempotent re-report of the already-reached state
	}

	if i+1 < len(t.expected) && state == t.expected[i+1] {
		t.index[site] = i + 1
		if !t.dead && t.allAtFinal() && !t.done {
			t.done = true
			t.onComplete()
		}
		return
	}

	t.dead = true
	t.onBad(site, state)
}

func (t *Tracker) allAtFinal() bool {
	last := len(t.expected) - 1
	for _, i := range t.index {
		if i != last {
			return false
		}
	}
	return true
}
