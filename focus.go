package flexlay

import "github.com/tobyns/go-flexlay/internal/debug"

// FocusDirection selects which neighbor of the focused element a
// traversal lands on.
type FocusDirection uint8

const (
	FocusForward  FocusDirection = iota // Next focusable in document order
	FocusBackward                       // Previous focusable in document order
)

// Node is a read-only snapshot of one element in the host's tree.
// The traversal never mutates nodes or retains references to them;
// hosts rebuild the snapshot per call (or reuse one if the tree hasn't
// changed).
type Node struct {
	// ID is the element's stable identifier.
	ID string

	// Focusable marks the element as eligible for keyboard focus.
	Focusable bool

	// Children in document order.
	Children []Node
}

// FocusOrder flattens the tree into document (pre-order) order,
// keeping focusable IDs only. Focusable descendants of a non-focusable
// container are included; the container itself is not.
func FocusOrder(root Node) []string {
	var ids []string
	collectFocusable(root, &ids)
	return ids
}

func collectFocusable(n Node, ids *[]string) {
	if n.Focusable {
		*ids = append(*ids, n.ID)
	}
	for _, child := range n.Children {
		collectFocusable(child, ids)
	}
}

// FindFocusTarget returns the ID that should receive focus when moving
// in the given direction from currentID.
//
//   - With no current focus (empty currentID), forward picks the first
//     focusable ID and backward the last.
//   - From a focused element, the traversal wraps: forward from the
//     last element returns the first, backward from the first returns
//     the last.
//   - A stale currentID (element removed since it was focused) falls
//     back to the first focusable ID in either direction.
//
// The second return is false only when the tree holds no focusable
// elements at all. Performing the focus transition is the caller's job;
// this operation only names the target.
func FindFocusTarget(root Node, currentID string, dir FocusDirection) (string, bool) {
	ids := FocusOrder(root)
	if len(ids) == 0 {
		return "", false
	}

	if currentID == "" {
		if dir == FocusBackward {
			return ids[len(ids)-1], true
		}
		return ids[0], true
	}

	pos := -1
	for i, id := range ids {
		if id == currentID {
			pos = i
			break
		}
	}
	if pos == -1 {
		debug.Log("FindFocusTarget: stale focus id %q, falling back to first", currentID)
		return ids[0], true
	}

	if dir == FocusBackward {
		return ids[(pos-1+len(ids))%len(ids)], true
	}
	return ids[(pos+1)%len(ids)], true
}
