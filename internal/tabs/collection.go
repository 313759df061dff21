package tabs

import "slices"

// collection stores tab records in an arena keyed by Handle and keeps the
// layout order as a separate slice of handles.
type collection struct {
	arena   map[Handle]*Tab
	order   []Handle
	current Handle
	next    Handle
}

func newCollection() *collection {
	return &collection{arena: make(map[Handle]*Tab)}
}

func (c *collection) len() int { return len(c.order) }

func (c *collection) get(h Handle) *Tab { return c.arena[h] }

func (c *collection) index(h Handle) int {
	if _, ok := c.arena[h]; !ok {
		return -1
	}
	return slices.Index(c.order, h)
}

func (c *collection) at(i int) *Tab {
	if i < 0 || i >= len(c.order) {
		return nil
	}
	return c.arena[c.order[i]]
}

// append creates a tab at the end of the order.
func (c *collection) append(t *Tab) *Tab {
	c.next++
	t.Handle = c.next
	c.arena[t.Handle] = t
	c.order = append(c.order, t.Handle)
	return t
}

// remove deletes h and reports its former index, or -1 when unknown.
func (c *collection) remove(h Handle) int {
	i := c.index(h)
	if i < 0 {
		return -1
	}
	c.order = slices.Delete(c.order, i, i+1)
	delete(c.arena, h)
	if c.current == h {
		c.current = 0
	}
	return i
}

// setCurrent moves the current flag to h. It reports false when h is unknown
// or already current.
func (c *collection) setCurrent(h Handle) bool {
	t := c.arena[h]
	if t == nil || c.current == h {
		return false
	}
	if prev := c.arena[c.current]; prev != nil {
		prev.clear(FlagCurrent)
	}
	t.set(FlagCurrent)
	c.current = h
	return true
}

// successor picks the tab that becomes current when h goes away: the next
// sibling, else the previous one, else none.
func (c *collection) successor(h Handle) Handle {
	i := c.index(h)
	switch {
	case i < 0:
		return 0
	case i+1 < len(c.order):
		return c.order[i+1]
	case i > 0:
		return c.order[i-1]
	}
	return 0
}

// reorder moves h next to the tab occupying dest. Moving backward places h
// before that tab; moving forward places it after. Anchoring on the neighbor's
// handle rather than its index absorbs the shift caused by taking h out.
func (c *collection) reorder(h Handle, dest int) bool {
	origin := c.index(h)
	if origin < 0 || dest == origin || dest < 0 {
		return false
	}

	var anchor Handle
	if dest < origin {
		anchor = c.order[dest]
	} else if dest+1 < len(c.order) {
		anchor = c.order[dest+1]
	}

	if anchor == 0 && origin == len(c.order)-1 {
		return false
	}

	c.order = slices.Delete(c.order, origin, origin+1)
	if anchor == 0 {
		c.order = append(c.order, h)
		return true
	}
	c.order = slices.Insert(c.order, slices.Index(c.order, anchor), h)
	return true
}
