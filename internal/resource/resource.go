// Package resource implements the host side of resource negotiation (spec
// §4.4): the apply_resource_config callback the testingfsm.FSM invokes
// once a quorum of sites has agreed on a single resource request, and the
// broadcast of resource_config to every site (only the ones waiting on it
// act on the message; the rest ignore it).
//
// Grounded on the original's resource-application hook referenced from
// MultiSiteTestingMachine (apply_resource_config bubbling up to the
// Coordinator, which owns the transport); here it is a small adapter that
// turns a sitefsm.ResourceRequest into a transport.Bus broadcast to every
// site, decoupling testingfsm from transport.
package resource

import (
	"context"

	"cellmaster/internal/sitefsm"
	"cellmaster/internal/transport"
)

// Applier applies a negotiated resource configuration by broadcasting it
// to every site, then invoking done once the host considers the
// configuration live.
type Applier struct {
	bus transport.Bus
}

// New creates an Applier that broadcasts resource_config over bus.
func New(bus transport.Bus) *Applier {
	return &Applier{bus: bus}
}

// Apply sends resource_config(req) to every site and invokes done once the
// host considers the configuration live. It matches the
// testingfsm.ApplyResourceConfig signature so it can be wired directly
// into testingfsm.New.
//
// The broadcast and the done callback run on a separate goroutine:
// apply_resource_config is a host callback that may legitimately take time
// (real resource hardware is out of scope, SPEC_FULL.md Non-goals:
// "peripheral hardware adapters", but the contract still models it as
// asynchronous relative to the coordinator's actor loop, per SPEC_FULL.md
// §5's resource-negotiation done-callback channel). Callers must route
// done back onto the coordinator's own goroutine rather than invoke
// testingfsm state transitions directly from here.
func (a *Applier) Apply(req sitefsm.ResourceRequest, done func()) {
	cmd := transport.SiteCommand{
		Kind: transport.CommandResourceConfig,
		Payload: struct {
			ResourceID string
			Config     map[string]any
		}{ResourceID: req.ResourceID, Config: req.Config},
	}
	go func() {
		_ = a.bus.Broadcast(context.Background(), cmd)
		done()
	}()
}
