package resource

import (
	"testing"
	"time"

	"cellmaster/internal/sitefsm"
	"cellmaster/internal/transport"
)

func TestApplier_BroadcastsAndInvokesDone(t *testing.T) {
	bus := transport.NewFakeBus()
	a := New(bus)

	done := make(chan struct{})
	a.Apply(sitefsm.ResourceRequest{ResourceID: "R", Config: map[string]any{"v": 1}}, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected done to be invoked")
	}
	broadcasts := bus.Broadcasts()
	if len(broadcasts) != 1 || broadcasts[0].Kind != transport.CommandResourceConfig {
		t.Errorf("broadcasts = %+v", broadcasts)
	}
}
