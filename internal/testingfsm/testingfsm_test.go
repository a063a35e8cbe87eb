package testingfsm

import (
	"testing"

	"cellmaster/internal/sitefsm"
)

func TestFSM_CompletesWhenAllSitesComplete(t *testing.T) {
	completed := 0
	f := New([]string{"s1", "s2"}, func(sitefsm.ResourceRequest, func()) {}, func() { completed++ })

	if err := f.StatusIdle("s1"); err != nil {
		t.Fatal(err)
	}
	if err := f.TestresultReceived("s1", "r1"); err != nil {
		t.Fatal(err)
	}
	if f.State() != InProgress {
		t.Fatalf("state = %v before s2 completes", f.State())
	}

	if err := f.TestresultReceived("s2", "r2"); err != nil {
		t.Fatal(err)
	}
	if err := f.StatusIdle("s2"); err != nil {
		t.Fatal(err)
	}

	if f.State() != Completed {
		t.Fatalf("state = %v, want %v", f.State(), Completed)
	}
	if completed != 1 {
		t.Errorf("onComplete invoked %d times, want 1", completed)
	}
}

// S2 — matching resource requests from both sites: exactly one
// apply_resource_config call, and the cycle completes normally afterward.
func TestFSM_ResourceNegotiation_MatchingQuorumAppliesOnce(t *testing.T) {
	applyCount := 0
	var pendingDone func()
	apply := func(req sitefsm.ResourceRequest, done func()) {
		applyCount++
		if req.ResourceID != "R" {
			t.Errorf("unexpected resource id %q", req.ResourceID)
		}
		pendingDone = done
	}

	completed := 0
	f := New([]string{"s1", "s2"}, apply, func() { completed++ })

	req := sitefsm.ResourceRequest{ResourceID: "R", Config: map[string]any{"v": 1}}
	if err := f.ResourceRequested("s1", req); err != nil {
		t.Fatal(err)
	}
	if applyCount != 0 {
		t.Fatalf("apply called before quorum reached (only s1 waiting, s2 still inprogress)")
	}

	if err := f.ResourceRequested("s2", req); err != nil {
		t.Fatal(err)
	}
	if applyCount != 1 {
		t.Fatalf("apply called %d times, want exactly 1 once quorum reached", applyCount)
	}
	if f.State() != WaitingForResource {
		t.Fatalf("state = %v, want %v", f.State(), WaitingForResource)
	}

	pendingDone()
	if f.State() != InProgress {
		t.Fatalf("state = %v, want %v after done_cb", f.State(), InProgress)
	}
	if f.Site("s1").State() != sitefsm.InProgress || f.Site("s2").State() != sitefsm.InProgress {
		t.Fatal("expected both sites back to inprogress after resource_ready")
	}

	if err := f.TestresultReceived("s1", "r1"); err != nil {
		t.Fatal(err)
	}
	if err := f.StatusIdle("s1"); err != nil {
		t.Fatal(err)
	}
	if err := f.TestresultReceived("s2", "r2"); err != nil {
		t.Fatal(err)
	}
	if err := f.StatusIdle("s2"); err != nil {
		t.Fatal(err)
	}

	if f.State() != Completed {
		t.Fatalf("state = %v, want %v", f.State(), Completed)
	}
	if completed != 1 {
		t.Errorf("onComplete invoked %d times, want 1", completed)
	}
	if applyCount != 1 {
		t.Errorf("apply invoked %d times across the whole cycle, want 1", applyCount)
	}
}

// S3 — mismatched resource requests: the second request must fail with a
// protocol error identifying the conflict.
func TestFSM_ResourceNegotiation_Mismatch(t *testing.T) {
	f := New([]string{"s1", "s2"}, func(sitefsm.ResourceRequest, func()) {}, func() {})

	if err := f.ResourceRequested("s1", sitefsm.ResourceRequest{ResourceID: "R", Config: map[string]any{"v": 1}}); err != nil {
		t.Fatal(err)
	}
	err := f.ResourceRequested("s2", sitefsm.ResourceRequest{ResourceID: "R", Config: map[string]any{"v": 2}})
	if err == nil {
		t.Fatal("expected a protocol error for mismatched resource requests")
	}
}

func TestFSM_QuorumNotReachedWhileAnySiteInProgress(t *testing.T) {
	applyCount := 0
	f := New([]string{"s1", "s2", "s3"}, func(sitefsm.ResourceRequest, func()) { applyCount++ }, func() {})

	req := sitefsm.ResourceRequest{ResourceID: "R"}
	if err := f.ResourceRequested("s1", req); err != nil {
		t.Fatal(err)
	}
	if err := f.ResourceRequested("s2", req); err != nil {
		t.Fatal(err)
	}
	// s3 still inprogress: quorum must not be reached yet.
	if applyCount != 0 {
		t.Fatalf("apply called while s3 still inprogress")
	}

	if err := f.StatusIdle("s3"); err != nil {
		t.Fatal(err)
	}
	if applyCount != 1 {
		t.Fatalf("apply called %d times once s3 left inprogress, want 1", applyCount)
	}
}

func TestFSM_LateDoneCallbackIgnored(t *testing.T) {
	var firstDone func()
	calls := 0
	apply := func(req sitefsm.ResourceRequest, done func()) {
		calls++
		firstDone = done
	}

	f := New([]string{"s1", "s2"}, apply, func() {})
	req := sitefsm.ResourceRequest{ResourceID: "R"}
	if err := f.ResourceRequested("s1", req); err != nil {
		t.Fatal(err)
	}
	if err := f.ResourceRequested("s2", req); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("apply called %d times", calls)
	}

	firstDone() // ends the quorum period normally
	if f.State() != InProgress {
		t.Fatalf("state = %v after done_cb", f.State())
	}

	// A second, stale invocation of the same callback must be a no-op.
	before := f.State()
	firstDone()
	if f.State() != before {
		t.Errorf("late done_cb mutated state: %v -> %v", before, f.State())
	}
}

func TestFSM_ResetForNextCycle(t *testing.T) {
	f := New([]string{"s1"}, func(sitefsm.ResourceRequest, func()) {}, func() {})
	f.TestresultReceived("s1", "r")
	f.StatusIdle("s1")
	if f.State() != Completed {
		t.Fatalf("precondition: state = %v", f.State())
	}

	if err := f.ResetForNextCycle(); err != nil {
		t.Fatal(err)
	}
	if f.State() != InProgress {
		t.Fatalf("state = %v, want %v", f.State(), InProgress)
	}
	if f.Site("s1").State() != sitefsm.InProgress {
		t.Errorf("site state = %v, want %v", f.Site("s1").State(), sitefsm.InProgress)
	}
}

func TestFSM_ResetForNextCycleRejectedUnlessCompleted(t *testing.T) {
	f := New([]string{"s1"}, func(sitefsm.ResourceRequest, func()) {}, func() {})
	if err := f.ResetForNextCycle(); err == nil {
		t.Error("expected reset to be rejected before the cycle completes")
	}
}

func TestFSM_UnknownSiteRejected(t *testing.T) {
	f := New([]string{"s1"}, func(sitefsm.ResourceRequest, func()) {}, func() {})
	if err := f.StatusIdle("ghost"); err == nil {
		t.Error("expected an error for an unknown site")
	}
	if err := f.TestresultReceived("ghost", nil); err == nil {
		t.Error("expected an error for an unknown site")
	}
	if err := f.ResourceRequested("ghost", sitefsm.ResourceRequest{}); err == nil {
		t.Error("expected an error for an unknown site")
	}
}
