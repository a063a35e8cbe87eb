package results

// PendingList accumulates per-site results received during one `next`
// cycle; the UI background task drains it on every tick, pushing each item
// as its own testresult message (spec §4.6, §4.7).
type PendingList struct {
	items []any
}

// Add appends item to the pending list.
func (p *PendingList) Add(item any) { p.items = append(p.items, item) }

// Drain returns every item added since the last Drain, clearing the list.
func (p *PendingList) Drain() []any {
	if len(p.items) == 0 {
		return nil
	}
	out := p.items
	p.items = nil
	return out
}

// Len reports how many items are currently pending.
func (p *PendingList) Len() int { return len(p.items) }
