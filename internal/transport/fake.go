package transport

import (
	"context"
	"sync"
)

// FakeBus is an in-memory Bus for tests: Deliver pushes a SiteMessage into
// the inbox as if it arrived from the wire, and SentTo/Broadcasts record
// every outbound command for assertions.
type FakeBus struct {
	inbox chan SiteMessage

	mu         sync.Mutex
	broadcasts []SiteCommand
	sent       map[string][]SiteCommand
	closed     bool
}

// NewFakeBus creates a FakeBus with a buffered inbox large enough for
// typical test scenarios.
func NewFakeBus() *FakeBus {
	return &FakeBus{
		inbox: make(chan SiteMessage, 256),
		sent:  make(map[string][]SiteCommand),
	}
}

// Deliver injects msg into the inbox as if a site had sent it.
func (b *FakeBus) Deliver(msg SiteMessage) {
	b.inbox <- msg
}

func (b *FakeBus) Inbox() <-chan SiteMessage { return b.inbox }

func (b *FakeBus) Broadcast(ctx context.Context, cmd SiteCommand) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.broadcasts = append(b.broadcasts, cmd)
	return nil
}

func (b *FakeBus) Send(ctx context.Context, site string, cmd SiteCommand) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent[site] = append(b.sent[site], cmd)
	return nil
}

func (b *FakeBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		close(b.inbox)
		b.closed = true
	}
	return nil
}

// Broadcasts returns every command broadcast so far, in order.
func (b *FakeBus) Broadcasts() []SiteCommand {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]SiteCommand, len(b.broadcasts))
	copy(out, b.broadcasts)
	return out
}

// SentTo returns every command sent directly to site, in order.
func (b *FakeBus) SentTo(site string) []SiteCommand {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]SiteCommand, len(b.sent[site]))
	copy(out, b.sent[site])
	return out
}
