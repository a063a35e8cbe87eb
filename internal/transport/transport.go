// Package transport abstracts the Coordinator's connection to site
// processes (spec §6: site messages consumed / site commands produced).
// The spec leaves the actual wire protocol out of scope ("the core calls
// a settings store" / "the core treats the message bus as given"); this
// package supplies the channel-based bus the single-actor coordinator
// selects over (spec §5's cooperative event loop), grounded on the
// request/response bridge channel style used by muster's
// internal/reconciler queue.
package transport

import "context"

// SiteMessage is one inbound message from a site, tagged with its kind so
// the coordinator's dispatch switch does not need a type switch per call
// site.
type SiteMessage struct {
	Site string
	Kind MessageKind
	Body any
}

// MessageKind enumerates the site message types consumed by the
// Coordinator (spec §6).
type MessageKind int

const (
	ControlStatus MessageKind = iota
	TestappStatus
	TestappTestresult
	TestappTestsummary
	TestappResourceRequest
	SiteDisconnected
)

// ControlStatusBody is the payload of a ControlStatus message.
type ControlStatusBody struct {
	InterfaceVersion int
	State            string // loading | busy | idle | crash
}

// TestappStatusBody is the payload of a TestappStatus message.
type TestappStatusBody struct {
	State string // idle | testing | crash | terminated
}

// ResourceRequestBody is the payload of a TestappResourceRequest message.
type ResourceRequestBody struct {
	ResourceID string
	Config     map[string]any
}

// SiteCommand is one outbound command broadcast to all sites (spec §6).
type SiteCommand struct {
	Kind    CommandKind
	Payload any
}

// CommandKind enumerates the site commands produced by the Coordinator.
type CommandKind int

const (
	CommandLoad CommandKind = iota
	CommandNext
	CommandTerminate
	CommandReset
	CommandResourceConfig
)

// Bus is the Coordinator's exclusive connection to every site (spec §5:
// "transport connection ... exclusively owned by the Coordinator"). Most
// calls come from the coordinator's actor goroutine, but resource.Applier
// calls Broadcast from a goroutine of its own, so implementations must be
// safe for concurrent use; Inbox delivery may originate from other
// goroutines.
type Bus interface {
	// Inbox returns the channel of inbound site messages. Closed when the
	// underlying connection is torn down.
	Inbox() <-chan SiteMessage
	// Broadcast sends cmd to every configured site.
	Broadcast(ctx context.Context, cmd SiteCommand) error
	// Send sends cmd to a single site. resource_config does not go this
	// way: resource.Applier broadcasts it to every site.
	Send(ctx context.Context, site string, cmd SiteCommand) error
	// Close releases the bus's resources. Safe to call more than once.
	Close() error
}
