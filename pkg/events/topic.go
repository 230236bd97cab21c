package events

import "slices"

// cursor is the progress of one in-flight live dispatch.
type cursor struct {
	next  int    // index of the next binding to call
	steps int    // bindings called so far
	last  uint64 // newest binding seq when the dispatch began
	done  bool
}

// topic holds the ordered bindings of one key. All methods require the
// bus mutex.
type topic[K comparable] struct {
	subs    []*subscription[K]
	cursors []*cursor
	seq     uint64
}

func (t *topic[K]) append(sub *subscription[K]) {
	t.seq++
	sub.seq = t.seq
	t.subs = append(t.subs, sub)
}

// advance returns the binding c calls next and its index, or nil once the
// dispatch is over. A binding added after c began is reached only while
// fewer calls than len(subs) were made, so a listener that re-registers
// itself is not called again by the same dispatch.
func (t *topic[K]) advance(c *cursor) (*subscription[K], int) {
	if c.done || c.next >= len(t.subs) {
		return nil, -1
	}
	sub := t.subs[c.next]
	if sub.seq > c.last && c.steps >= len(t.subs) {
		return nil, -1
	}
	index := c.next
	c.next++
	c.steps++
	return sub, index
}

// removeAt drops the binding at i and shifts in-flight cursors that are
// already past it, so the binding that slides into i is not skipped.
func (t *topic[K]) removeAt(i int) {
	t.subs[i].active = false
	t.subs = slices.Delete(t.subs, i, i+1)
	for _, c := range t.cursors {
		if i < c.next {
			c.next--
		}
	}
}

// clear empties the sequence and ends every in-flight dispatch on it.
func (t *topic[K]) clear() {
	for _, s := range t.subs {
		s.active = false
	}
	clear(t.subs)
	t.subs = t.subs[:0]
	for _, c := range t.cursors {
		c.done = true
	}
}

func (t *topic[K]) indexOf(sub *subscription[K]) int {
	for i := len(t.subs) - 1; i >= 0; i-- {
		if t.subs[i] == sub {
			return i
		}
	}
	return -1
}

func (t *topic[K]) track() *cursor {
	c := &cursor{last: t.seq}
	t.cursors = append(t.cursors, c)
	return c
}

func (t *topic[K]) untrack(c *cursor) {
	if i := slices.Index(t.cursors, c); i >= 0 {
		t.cursors = slices.Delete(t.cursors, i, i+1)
	}
}
