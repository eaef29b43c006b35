// Package flexlay is a layout-and-interaction engine for dynamic
// collections of rectangular items.
//
// Three pieces compose it: the flex solver in pkg/layout computes item
// geometry from sizing constraints and container rules; DragController
// reinterprets pointer motion during a drag as live permutations of the
// item order; and FindFocusTarget walks an arbitrary element tree to
// pick the next or previous focusable element in document order.
// Surface ties the three together for hosts that want a single entry
// point for layout passes and pointer events.
//
// The engine renders nothing and owns no event loop: hosts deliver
// pointer events and perform the focus transitions the engine requests.
package flexlay
