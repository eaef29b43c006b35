package flexlay

import "github.com/google/uuid"

// NewID returns a fresh opaque identifier for callers that do not
// bring their own. The engine never interprets IDs; any string that is
// stable across layout passes works.
func NewID() string {
	return uuid.New().String()
}
