package flexlay

import (
	"github.com/tobyns/go-flexlay/internal/debug"
	"github.com/tobyns/go-flexlay/pkg/layout"
)

// ReorderPhase tags the lifecycle step a ReorderEvent describes.
type ReorderPhase uint8

const (
	ReorderPicked   ReorderPhase = iota // Session started
	ReorderMoved                        // Live order changed mid-drag
	ReorderDropped                      // Session committed
	ReorderCanceled                     // Session aborted, order restored
)

// ReorderEvent describes one step of a drag-reorder interaction.
type ReorderEvent struct {
	Phase     ReorderPhase
	DraggedID string
	From      int // Index of the dragged item when the session started
	To        int // Index of the dragged item in Order
	Order     []string
}

// FocusRequest asks the host to move keyboard focus to TargetID. The
// engine only names the target; the host owns the actual transition
// (and the blur/focus notifications that go with it).
type FocusRequest struct {
	TargetID  string
	Direction FocusDirection
}

// Surface is one interaction surface: an ordered set of items laid out
// by the flex solver, with drag reordering and focus navigation wired
// on top.
//
// All methods must be called from the host's single event-processing
// goroutine. The underlying solver is pure, so independent surfaces
// never interfere with each other.
type Surface struct {
	rules layout.Rules
	items []layout.Item
	rects []layout.Rect // Latest pass, index-aligned with items

	drag *DragController

	// Reorders emits one event per order change during a drag session.
	Reorders *Events[ReorderEvent]

	// FocusRequests emits the target chosen by focus navigation.
	FocusRequests *Events[FocusRequest]

	// Tree supplies the focus snapshot for FocusNext/FocusPrev.
	// nil disables focus navigation.
	Tree func() Node

	// OnPress and OnRelease are optional forwarding hooks, called with
	// the hit item and pointer position before drag handling runs.
	OnPress   func(id string, p layout.Point)
	OnRelease func(id string, p layout.Point)

	focused string
}

// NewSurface creates a surface over the given items. Items without an
// ID are assigned one.
func NewSurface(rules layout.Rules, items ...layout.Item) *Surface {
	owned := make([]layout.Item, len(items))
	copy(owned, items)
	for i := range owned {
		if owned[i].ID == "" {
			owned[i].ID = NewID()
		}
	}
	return &Surface{
		rules:         rules,
		items:         owned,
		drag:          NewDragController(),
		Reorders:      NewEvents[ReorderEvent](),
		FocusRequests: NewEvents[FocusRequest](),
	}
}

// Drag returns the surface's drag controller, e.g. to install a
// Draggable strategy or adjust the threshold.
func (s *Surface) Drag() *DragController {
	return s.drag
}

// Rules returns the current container rules.
func (s *Surface) Rules() layout.Rules {
	return s.rules
}

// SetRules replaces the container rules. Takes effect on the next
// Layout call.
func (s *Surface) SetRules(rules layout.Rules) {
	s.rules = rules
}

// SetSize updates the container dimensions along the main and cross
// axes.
func (s *Surface) SetSize(mainSize, crossSize float64) {
	s.rules.MainSize = mainSize
	s.rules.CrossSize = crossSize
}

// Items returns a copy of the items in their current order.
func (s *Surface) Items() []layout.Item {
	out := make([]layout.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Order returns the item IDs in their current order.
func (s *Surface) Order() []string {
	out := make([]string, len(s.items))
	for i := range s.items {
		out[i] = s.items[i].ID
	}
	return out
}

// Layout runs the solver over the current order and caches the
// geometry for hit testing and drag mapping. Call once per layout pass,
// whenever items, order, or container size change.
func (s *Surface) Layout() ([]layout.Rect, error) {
	rects, err := layout.Solve(s.items, s.rules)
	if err != nil {
		return nil, err
	}
	s.rects = rects
	s.drag.SetGeometry(s.Order(), rects, s.rules.Direction)
	return rects, nil
}

// RectOf returns the latest rect computed for the given item. During
// an active session the dragged item's rect follows the pointer
// instead of its solver slot.
func (s *Surface) RectOf(id string) (layout.Rect, bool) {
	if sess, ok := s.drag.Session(); ok && sess.DraggedID == id {
		return s.drag.DraggedRect()
	}
	for i := range s.items {
		if s.items[i].ID == id && i < len(s.rects) {
			return s.rects[i], true
		}
	}
	return layout.Rect{}, false
}

// HitTest returns the topmost item containing the point, if any.
// Items never overlap in solver output, so first match wins.
func (s *Surface) HitTest(p layout.Point) (string, bool) {
	for i := range s.items {
		if i < len(s.rects) && s.rects[i].Contains(p) {
			return s.items[i].ID, true
		}
	}
	return "", false
}

// HandlePointer routes one pointer event into the drag controller and
// the forwarding hooks. Order changes are applied to the surface
// immediately and emitted on Reorders; the host re-runs Layout to
// refresh geometry.
func (s *Surface) HandlePointer(ev PointerEvent) {
	switch ev.Kind {
	case PointerPress:
		id, ok := s.HitTest(ev.Point)
		if !ok {
			return
		}
		if s.OnPress != nil {
			s.OnPress(id, ev.Point)
		}
		if s.drag.Press(ev.Point, id, ev.Time) {
			idx := s.indexOf(id)
			s.Reorders.Emit(ReorderEvent{
				Phase:     ReorderPicked,
				DraggedID: id,
				From:      idx,
				To:        idx,
				Order:     s.Order(),
			})
		}

	case PointerMove:
		sess, ok := s.drag.Session()
		if !ok {
			return
		}
		from := indexIn(sess.original, sess.DraggedID)
		before := s.Order()
		after := s.drag.Move(ev.Point)
		if ordersEqual(before, after) {
			return
		}
		s.applyOrder(after)
		s.Reorders.Emit(ReorderEvent{
			Phase:     ReorderMoved,
			DraggedID: sess.DraggedID,
			From:      from,
			To:        indexIn(after, sess.DraggedID),
			Order:     after,
		})

	case PointerRelease:
		if s.OnRelease != nil {
			if id, ok := s.HitTest(ev.Point); ok {
				s.OnRelease(id, ev.Point)
			}
		}
		sess, ok := s.drag.Session()
		if !ok {
			return
		}
		final := s.drag.Release(ev.Point)
		s.applyOrder(final)
		s.Reorders.Emit(ReorderEvent{
			Phase:     ReorderDropped,
			DraggedID: sess.DraggedID,
			From:      indexIn(sess.original, sess.DraggedID),
			To:        indexIn(final, sess.DraggedID),
			Order:     final,
		})

	case PointerCancel:
		sess, ok := s.drag.Session()
		if !ok {
			return
		}
		restored := s.drag.Cancel()
		s.applyOrder(restored)
		s.Reorders.Emit(ReorderEvent{
			Phase:     ReorderCanceled,
			DraggedID: sess.DraggedID,
			From:      indexIn(sess.original, sess.DraggedID),
			To:        indexIn(restored, sess.DraggedID),
			Order:     restored,
		})
	}
}

// FocusNext requests focus for the next focusable element in document
// order, wrapping at the end.
func (s *Surface) FocusNext() {
	s.navigate(FocusForward)
}

// FocusPrev requests focus for the previous focusable element in
// document order, wrapping at the start.
func (s *Surface) FocusPrev() {
	s.navigate(FocusBackward)
}

func (s *Surface) navigate(dir FocusDirection) {
	if s.Tree == nil {
		return
	}
	target, ok := FindFocusTarget(s.Tree(), s.focused, dir)
	if !ok {
		debug.Log("Surface.navigate: no focusable elements")
		return
	}
	s.FocusRequests.Emit(FocusRequest{TargetID: target, Direction: dir})
}

// SetFocused records the element the host actually focused. Called by
// the host after it performs a requested transition.
func (s *Surface) SetFocused(id string) {
	s.focused = id
}

// Focused returns the last recorded focus holder.
func (s *Surface) Focused() string {
	return s.focused
}

// applyOrder reorders items to match the given ID sequence. IDs that
// no longer exist are dropped; missing items keep relative order at
// the end.
func (s *Surface) applyOrder(order []string) {
	byID := make(map[string]layout.Item, len(s.items))
	for _, it := range s.items {
		byID[it.ID] = it
	}
	next := make([]layout.Item, 0, len(s.items))
	for _, id := range order {
		if it, ok := byID[id]; ok {
			next = append(next, it)
			delete(byID, id)
		}
	}
	for _, it := range s.items {
		if _, left := byID[it.ID]; left {
			next = append(next, it)
		}
	}
	s.items = next
}

func (s *Surface) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func indexIn(order []string, id string) int {
	for i, o := range order {
		if o == id {
			return i
		}
	}
	return -1
}

func ordersEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
