package sequence

import "testing"

func TestTracker_CompletesWhenAllSitesReachFinalState(t *testing.T) {
	var completed bool
	var unexpected []string

	tr := New(
		[]string{"loading", "loaded"},
		[]string{"site1", "site2"},
		func() { completed = true },
		func(site, state string) { unexpected = append(unexpected, site+":"+state) },
	)

	tr.Trigger("site1", "loading")
	tr.Trigger("site2", "loading")
	if completed {
		t.Fatal("must not complete before every site reaches the final state")
	}

	tr.Trigger("site1", "loaded")
	if completed {
		t.Fatal("must not complete until ALL sites reach the final state")
	}

	tr.Trigger("site2", "loaded")
	if !completed {
		t.Fatal("expected completion once every site reached the final state")
	}
	if len(unexpected) != 0 {
		t.Errorf("unexpected calls: %v", unexpected)
	}
}

func TestTracker_IdempotentReportIgnored(t *testing.T) {
	var completed bool
	var unexpectedCount int

	tr := New(
		[]string{"loading", "loaded"},
		[]string{"site1"},
		func() { completed = true },
		func(site, state string) { unexpectedCount++ },
	)

	tr.Trigger("site1", "loading")
	tr.Trigger("site1", "loading") // re-report of current state: ignored
	tr.Trigger("site1", "loaded")

	if !completed {
		t.Fatal("expected completion")
	}
	if unexpectedCount != 0 {
		t.Errorf("expected no unexpected calls, got %d", unexpectedCount)
	}
}

func TestTracker_OutOfOrderInvokesOnUnexpected(t *testing.T) {
	var completed bool
	var gotSite, gotState string

	tr := New(
		[]string{"loading", "loaded", "ready"},
		[]string{"site1"},
		func() { completed = true },
		func(site, state string) { gotSite, gotState = site, state },
	)

	tr.Trigger("site1", "ready") // skips ahead: out of sequence
	if completed {
		t.Fatal("must not complete on an out-of-sequence report")
	}
	if gotSite != "site1" || gotState != "ready" {
		t.Errorf("onUnexpected got (%q, %q)", gotSite, gotState)
	}
}

func TestTracker_UnknownSiteInvokesOnUnexpected(t *testing.T) {
	var gotSite string

	tr := New(
		[]string{"loading"},
		[]string{"site1"},
		func() {},
		func(site, state string) { gotSite = site },
	)

	tr.Trigger("site-unknown", "loading")
	if gotSite != "site-unknown" {
		t.Errorf("expected onUnexpected for unknown site, got %q", gotSite)
	}
}

func TestTracker_GoesDeadAfterUnexpected(t *testing.T) {
	var completeCount int

	tr := New(
		[]string{"loading", "loaded"},
		[]string{"site1", "site2"},
		func() { completeCount++ },
		func(site, state string) {},
	)

	tr.Trigger("site1", "ready") // bad report from site1, tracker goes dead
	tr.Trigger("site1", "loading")
	tr.Trigger("site1", "loaded")
	tr.Trigger("site2", "loading")
	tr.Trigger("site2", "loaded")

	if completeCount != 0 {
		t.Error("a tracker that has seen an unexpected report must never complete")
	}
}

func TestTracker_CompletesOnlyOnce(t *testing.T) {
	completeCount := 0

	tr := NewExpectSequence(
		[]string{"loading"},
		[]string{"site1"},
		func() { completeCount++ },
		func(site, state string) {},
	)

	tr.Trigger("site1", "loading")
	tr.Trigger("site1", "loading")

	if completeCount != 1 {
		t.Errorf("expected onComplete exactly once, got %d", completeCount)
	}
}

func TestNewExpectSequence_SingleTargetCompletesOnFirstMatchingReport(t *testing.T) {
	var completed bool
	tr := NewExpectSequence([]string{"idle"}, []string{"s1", "s2"}, func() { completed = true }, func(string, string) {})

	tr.Trigger("s1", "idle")
	if completed {
		t.Fatal("must not complete before s2 reports idle")
	}
	tr.Trigger("s2", "idle")
	if !completed {
		t.Fatal("expected completion once both sites reported idle")
	}
}

func TestNewExpectSequence_MultiStateSequence(t *testing.T) {
	var completed bool
	tr := NewExpectSequence([]string{"loading", "busy"}, []string{"s1"}, func() { completed = true }, func(string, string) {})

	tr.Trigger("s1", "loading")
	if completed {
		t.Fatal("must not complete after only the first state")
	}
	tr.Trigger("s1", "busy")
	if !completed {
		t.Fatal("expected completion after the full sequence")
	}
}
