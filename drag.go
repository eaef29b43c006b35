package flexlay

import (
	"math"
	"time"

	"github.com/tobyns/go-flexlay/internal/debug"
	"github.com/tobyns/go-flexlay/pkg/layout"
)

// DefaultDragThreshold is the distance in pixels the pointer must
// travel from its origin before a session starts reordering. Below it
// a press-and-release reads as a click, not a drag.
const DefaultDragThreshold = 4.0

// DragSession captures one press-to-release interaction. Exactly one
// session exists per controller at a time; a press while a session is
// active is rejected, not queued.
type DragSession struct {
	DraggedID string
	Origin    layout.Point
	Current   layout.Point
	StartedAt time.Time

	original []string
	current  []string
	moving   bool // pointer has exceeded the drag threshold
}

// Order returns a copy of the session's live item order.
func (s *DragSession) Order() []string {
	out := make([]string, len(s.current))
	copy(out, s.current)
	return out
}

// DragController maps pointer motion during an active session onto
// live permutations of the item order. It consumes the latest solver
// geometry via SetGeometry and holds no other layout state.
//
// The controller is driven from a single event loop and is not safe
// for concurrent use.
type DragController struct {
	// Draggable decides whether a press on the given item may start a
	// session. nil means every item is draggable.
	Draggable func(id string) bool

	// Threshold is the pixel distance before reordering begins.
	Threshold float64

	direction layout.Direction
	order     []string
	rects     map[string]layout.Rect
	session   *DragSession
}

// NewDragController creates a controller with the default threshold.
func NewDragController() *DragController {
	return &DragController{
		Threshold: DefaultDragThreshold,
		rects:     make(map[string]layout.Rect),
	}
}

// SetGeometry installs the latest layout pass: the item order and the
// rects index-aligned with it. Call after every solve so move events
// map against current midpoints.
func (c *DragController) SetGeometry(order []string, rects []layout.Rect, dir layout.Direction) {
	c.order = make([]string, len(order))
	copy(c.order, order)
	c.direction = dir
	c.rects = make(map[string]layout.Rect, len(rects))
	for i, id := range order {
		if i < len(rects) {
			c.rects[id] = rects[i]
		}
	}
}

// Active reports whether a drag session is in progress.
func (c *DragController) Active() bool {
	return c.session != nil
}

// Session returns a copy of the active session, if any.
func (c *DragController) Session() (DragSession, bool) {
	if c.session == nil {
		return DragSession{}, false
	}
	return *c.session, true
}

// Press starts a session if hitID names a draggable item and no
// session is active. Returns true when a session started.
func (c *DragController) Press(p layout.Point, hitID string, at time.Time) bool {
	if c.session != nil {
		debug.Log("DragController.Press: session for %q active, ignoring press on %q",
			c.session.DraggedID, hitID)
		return false
	}
	if _, ok := c.rects[hitID]; !ok {
		return false
	}
	if c.Draggable != nil && !c.Draggable(hitID) {
		return false
	}

	order := make([]string, len(c.order))
	copy(order, c.order)
	c.session = &DragSession{
		DraggedID: hitID,
		Origin:    p,
		Current:   p,
		StartedAt: at,
		original:  order,
		current:   append([]string(nil), order...),
	}
	debug.Log("DragController.Press: picked %q at (%v, %v)", hitID, p.X, p.Y)
	return true
}

// Move recomputes the live order for the new pointer position and
// returns it. Every move is applied immediately; there is no debounce.
// Without an active session the committed order is returned unchanged.
func (c *DragController) Move(p layout.Point) []string {
	s := c.session
	if s == nil {
		return append([]string(nil), c.order...)
	}
	s.Current = p

	if !s.moving {
		if math.Hypot(p.X-s.Origin.X, p.Y-s.Origin.Y) < c.Threshold {
			return s.Order()
		}
		s.moving = true
	}

	idx := c.targetIndex(p, s.DraggedID)
	s.current = insertAt(withoutID(s.original, s.DraggedID), s.DraggedID, idx)
	return s.Order()
}

// Release commits the live order and destroys the session.
func (c *DragController) Release(p layout.Point) []string {
	s := c.session
	if s == nil {
		return append([]string(nil), c.order...)
	}
	s.Current = p
	final := s.Order()
	c.session = nil
	debug.Log("DragController.Release: dropped %q, order %v", s.DraggedID, final)
	return final
}

// Cancel restores the order captured at press time and destroys the
// session.
func (c *DragController) Cancel() []string {
	s := c.session
	if s == nil {
		return append([]string(nil), c.order...)
	}
	c.session = nil
	debug.Log("DragController.Cancel: restored order for %q", s.DraggedID)
	return append([]string(nil), s.original...)
}

// DraggedRect returns the dragged item's rect translated to follow the
// pointer, rather than its slot-based rect from the solver.
func (c *DragController) DraggedRect() (layout.Rect, bool) {
	s := c.session
	if s == nil {
		return layout.Rect{}, false
	}
	r, ok := c.rects[s.DraggedID]
	if !ok {
		return layout.Rect{}, false
	}
	return r.Translate(s.Current.X-s.Origin.X, s.Current.Y-s.Origin.Y), true
}

// targetIndex maps the pointer to an insertion slot: the position of
// the first other item whose main-axis midpoint lies at or past the
// pointer. On an exact midpoint tie the earlier slot wins.
func (c *DragController) targetIndex(p layout.Point, draggedID string) int {
	pointer := p.X
	if c.direction == layout.Column {
		pointer = p.Y
	}

	idx := 0
	for _, id := range c.order {
		if id == draggedID {
			continue
		}
		r, ok := c.rects[id]
		if !ok {
			continue
		}
		mid := r.Center().X
		if c.direction == layout.Column {
			mid = r.Center().Y
		}
		if mid >= pointer {
			break
		}
		idx++
	}
	return idx
}

// withoutID returns a copy of order with id removed.
func withoutID(order []string, id string) []string {
	out := make([]string, 0, len(order))
	for _, o := range order {
		if o != id {
			out = append(out, o)
		}
	}
	return out
}

// insertAt returns order with id inserted at idx, clamped to the ends.
func insertAt(order []string, id string, idx int) []string {
	if idx < 0 {
		idx = 0
	}
	if idx > len(order) {
		idx = len(order)
	}
	out := make([]string, 0, len(order)+1)
	out = append(out, order[:idx]...)
	out = append(out, id)
	out = append(out, order[idx:]...)
	return out
}
