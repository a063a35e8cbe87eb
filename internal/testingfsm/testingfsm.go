// Package testingfsm implements the Multi-Site Testing FSM and its resource
// negotiation protocol (spec §4.4): the outer per-cycle state machine that
// aggregates every site's sitefsm.FSM, arbitrates resource requests across
// sites, and notifies the coordinator once every site has completed.
//
// Grounded on master_application.py's MultiSiteTestingFSM, generalized from
// the original's implicit polling over a dict of site states into an
// explicit recheck pass run after every per-site event, as spec §4.4
// describes ("the check runs again after every site event").
package testingfsm

import (
	"github.com/juju/errors"

	"cellmaster/internal/sitefsm"
)

// State is the Multi-Site Testing FSM's own top-level state.
type State string

const (
	InProgress         State = "inprogress"
	WaitingForResource State = "waiting_for_resource"
	Completed          State = "completed"
)

// ApplyResourceConfig is the host callback invoked once a quorum of sites
// agree on a single resource request. done must be invoked (exactly once)
// when the host has finished applying the configuration; invocations of
// done after the quorum period has ended are ignored (spec §4.4 point 3).
type ApplyResourceConfig func(req sitefsm.ResourceRequest, done func())

// FSM is the Multi-Site Testing FSM for one test cycle.
type FSM struct {
	state State
	sites map[string]*sitefsm.FSM
	order []string

	applyResourceConfig ApplyResourceConfig
	onComplete          func()

	activeRequest     sitefsm.ResourceRequest
	activeRequestSite string
	hasActiveRequest  bool
	quorumToken       int // bumped every time a quorum period ends, to invalidate late done callbacks
}

// New creates a Multi-Site Testing FSM for sites, all starting InProgress.
// onComplete is invoked exactly once, when every site's sub-FSM reaches
// sitefsm.Completed. applyResourceConfig is the host callback for resource
// negotiation quorum.
func New(sites []string, applyResourceConfig ApplyResourceConfig, onComplete func()) *FSM {
	f := &FSM{
		state:               InProgress,
		sites:               make(map[string]*sitefsm.FSM, len(sites)),
		order:               append([]string(nil), sites...),
		applyResourceConfig: applyResourceConfig,
		onComplete:          onComplete,
	}
	for _, s := range sites {
		f.sites[s] = sitefsm.New(s)
	}
	return f
}

// State returns the Multi-Site FSM's own state.
func (f *FSM) State() State { return f.state }

// Site returns the per-site sub-FSM for site, or nil if unknown.
func (f *FSM) Site(site string) *sitefsm.FSM { return f.sites[site] }

// ResourceRequested handles testapp_resource_request(site, req). Returns an
// error if this request conflicts with another site's already-active
// request for this cycle (spec §4.4 point 2 — the "protocol error").
func (f *FSM) ResourceRequested(site string, req sitefsm.ResourceRequest) error {
	sf, ok := f.sites[site]
	if !ok {
		return errors.Errorf("resource request from unknown site %q", site)
	}
	if !sf.ResourceRequested(req) {
		return errors.Errorf("site %q requested a resource while not inprogress (state=%s)", site, sf.State())
	}

	if f.hasActiveRequest && !f.activeRequest.Equal(req) {
		return errors.Errorf("resource request mismatch: site %q requested %+v, site %q already requested %+v", site, req, f.activeRequestSite, f.activeRequest)
	}
	if !f.hasActiveRequest {
		f.activeRequest = req
		f.activeRequestSite = site
		f.hasActiveRequest = true
	}

	f.recheck()
	return nil
}

// resourceReady runs once a resource quorum's apply_resource_config
// callback has fired; it pushes resource_ready into every site sub-FSM
// currently WaitingForResource.
func (f *FSM) resourceReady() {
	for _, site := range f.order {
		sf := f.sites[site]
		if sf.State() == sitefsm.WaitingForResource {
			sf.ResourceReady()
		}
	}
	f.hasActiveRequest = false
	f.state = InProgress
	f.recheck()
}

// TestresultReceived handles testapp_testresult(site, r) while this FSM's
// cycle is active.
func (f *FSM) TestresultReceived(site string, result any) error {
	sf, ok := f.sites[site]
	if !ok {
		return errors.Errorf("testresult from unknown site %q", site)
	}
	if !sf.TestresultReceived(result) {
		return errors.Errorf("site %q reported a testresult in an unexpected state (%s)", site, sf.State())
	}
	f.recheck()
	return nil
}

// StatusIdle handles testapp_status(site, idle) while this FSM's cycle is
// active.
func (f *FSM) StatusIdle(site string) error {
	sf, ok := f.sites[site]
	if !ok {
		return errors.Errorf("idle status from unknown site %q", site)
	}
	if !sf.StatusIdle() {
		return errors.Errorf("site %q reported idle in an unexpected state (%s)", site, sf.State())
	}
	f.recheck()
	return nil
}

// recheck runs the quorum and completion checks described in spec §4.4; it
// is invoked after every per-site event.
func (f *FSM) recheck() {
	if f.state == Completed {
		return
	}

	if f.allCompleted() {
		f.state = Completed
		f.onComplete()
		return
	}

	if f.state == WaitingForResource {
		return // a quorum round is already pending a done_cb
	}

	if f.hasActiveRequest && f.quorumReached() {
		f.state = WaitingForResource
		token := f.quorumToken
		req := f.activeRequest
		f.applyResourceConfig(req, func() {
			if token != f.quorumToken {
				return // late callback from a quorum period that has already ended
			}
			f.quorumToken++
			f.resourceReady()
		})
	}
}

// quorumReached reports whether every site is non-inprogress and at least
// one is waiting_for_resource (spec §4.4 point 3).
func (f *FSM) quorumReached() bool {
	anyWaiting := false
	for _, site := range f.order {
		switch f.sites[site].State() {
		case sitefsm.InProgress:
			return false
		case sitefsm.WaitingForResource:
			anyWaiting = true
		}
	}
	return anyWaiting
}

func (f *FSM) allCompleted() bool {
	for _, site := range f.order {
		if f.sites[site].State() != sitefsm.Completed {
			return false
		}
	}
	return true
}

// ResetForNextCycle resets every completed per-site sub-FSM back to
// InProgress and this FSM back to InProgress, ready for the next `next`.
// Valid only after Completed.
func (f *FSM) ResetForNextCycle() error {
	if f.state != Completed {
		return errors.Errorf("cannot reset multi-site testing fsm from state %s", f.state)
	}
	for _, site := range f.order {
		if !f.sites[site].Reset() {
			return errors.Errorf("site %q failed to reset from completed", site)
		}
	}
	f.state = InProgress
	f.hasActiveRequest = false
	f.quorumToken++
	return nil
}

// String implements fmt.Stringer for debug logging.
func (s State) String() string { return string(s) }
