package flexlay

import (
	"time"

	"github.com/tobyns/go-flexlay/pkg/layout"
)

// PointerKind identifies a pointer transition delivered by the host.
type PointerKind uint8

const (
	PointerPress   PointerKind = iota // Button or touch down
	PointerMove                       // Motion, pressed or not
	PointerRelease                    // Button or touch up
	PointerCancel                     // Host aborted the interaction
)

// PointerEvent is a single pointer transition in surface-local pixel
// coordinates. The engine never polls; hosts push these into
// Surface.HandlePointer in the order they occur.
type PointerEvent struct {
	Kind  PointerKind
	Point layout.Point
	Time  time.Time
}
