// Package sitefsm implements the Per-Site Testing Sub-FSM (spec §4.3): the
// per-site state machine that tracks one site's progress through a single
// test cycle, from the moment the multi-site coordinator dispatches work to
// it until both its result and its idle status have arrived.
//
// Grounded on the original's per-slave state dict in master_application.py
// (MultiSiteTestingFSM's self.siteStates), expressed here as an explicit
// Go state machine rather than a bag of string constants.
package sitefsm

// State is one of the five states a site can occupy during a test cycle.
type State string

const (
	InProgress         State = "inprogress"
	WaitingForResource State = "waiting_for_resource"
	WaitingForTestresult State = "waiting_for_testresult"
	WaitingForIdle     State = "waiting_for_idle"
	Completed          State = "completed"
)

// ResourceRequest is the opaque resource identity/config pair a site may
// request mid-cycle. Equality is structural (spec §4.4 "the same R").
type ResourceRequest struct {
	ResourceID string
	Config     map[string]any
}

// Equal reports whether r and other identify the same resource request.
func (r ResourceRequest) Equal(other ResourceRequest) bool {
	if r.ResourceID != other.ResourceID {
		return false
	}
	if len(r.Config) != len(other.Config) {
		return false
	}
	for k, v := range r.Config {
		ov, ok := other.Config[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// FSM is one site's sub-FSM for the current test cycle.
type FSM struct {
	Site  string
	state State

	request ResourceRequest
	hasRequest bool
	result  any
}

// New creates a site sub-FSM for site, starting in InProgress.
func New(site string) *FSM {
	return &FSM{Site: site, state: InProgress}
}

// State returns the sub-FSM's current state.
func (f *FSM) State() State { return f.state }

// Request returns the currently stored resource request, if any.
func (f *FSM) Request() (ResourceRequest, bool) { return f.request, f.hasRequest }

// Result returns the stored testresult payload, if any (nil if none yet).
func (f *FSM) Result() any { return f.result }

// ResourceRequested handles testapp_resource_request(resource_request).
// Valid only from InProgress; spec §4.3: inprogress -> waiting_for_resource.
func (f *FSM) ResourceRequested(req ResourceRequest) bool {
	if f.state != InProgress {
		return false
	}
	f.request = req
	f.hasRequest = true
	f.state = WaitingForResource
	return true
}

// ResourceReady handles the coordinator's resource_ready push once a
// quorum's apply_resource_config callback has fired. Valid only from
// WaitingForResource; spec §4.3: waiting_for_resource -> inprogress.
func (f *FSM) ResourceReady() bool {
	if f.state != WaitingForResource {
		return false
	}
	f.hasRequest = false
	f.state = InProgress
	return true
}

// TestresultReceived handles testapp_testresult(r). Valid from InProgress,
// WaitingForResource (-> waiting_for_idle) and from WaitingForTestresult
// (-> completed), per spec §4.3.
func (f *FSM) TestresultReceived(result any) bool {
	switch f.state {
	case InProgress, WaitingForResource:
		f.result = result
		f.state = WaitingForIdle
		return true
	case WaitingForTestresult:
		f.result = result
		f.state = Completed
		return true
	default:
		return false
	}
}

// StatusIdle handles testapp_status(idle). Valid from InProgress,
// WaitingForResource (-> waiting_for_testresult) and from WaitingForIdle
// (-> completed), per spec §4.3.
func (f *FSM) StatusIdle() bool {
	switch f.state {
	case InProgress, WaitingForResource:
		f.state = WaitingForTestresult
		return true
	case WaitingForIdle:
		f.state = Completed
		return true
	default:
		return false
	}
}

// Reset returns a completed site sub-FSM to InProgress for the next cycle,
// clearing its stored result. Valid only from Completed.
func (f *FSM) Reset() bool {
	if f.state != Completed {
		return false
	}
	f.result = nil
	f.hasRequest = false
	f.state = InProgress
	return true
}
