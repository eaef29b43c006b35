package flexlay

import (
	"reflect"
	"testing"
)

// focusTree is a root container with two focusable children and one
// non-focusable panel whose own children are focusable:
//
//	root
//	├── A (focusable)
//	├── panel
//	│   ├── B (focusable)
//	│   └── C (focusable)
//	└── D (focusable)
func focusTree() Node {
	return Node{
		ID: "root",
		Children: []Node{
			{ID: "A", Focusable: true},
			{ID: "panel", Children: []Node{
				{ID: "B", Focusable: true},
				{ID: "C", Focusable: true},
			}},
			{ID: "D", Focusable: true},
		},
	}
}

func TestFocusOrder(t *testing.T) {
	tests := map[string]struct {
		root Node
		want []string
	}{
		"nested containers flatten in document order": {
			root: focusTree(),
			want: []string{"A", "B", "C", "D"},
		},
		"focusable root comes first": {
			root: Node{ID: "root", Focusable: true, Children: []Node{
				{ID: "A", Focusable: true},
			}},
			want: []string{"root", "A"},
		},
		"nothing focusable": {
			root: Node{ID: "root", Children: []Node{{ID: "A"}}},
			want: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := FocusOrder(tt.root)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected order %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFindFocusTarget(t *testing.T) {
	tests := map[string]struct {
		current string
		dir     FocusDirection
		want    string
	}{
		"forward from middle":        {current: "B", dir: FocusForward, want: "C"},
		"backward from middle":       {current: "C", dir: FocusBackward, want: "B"},
		"forward wraps at end":       {current: "D", dir: FocusForward, want: "A"},
		"backward wraps at start":    {current: "A", dir: FocusBackward, want: "D"},
		"no focus forward to first":  {current: "", dir: FocusForward, want: "A"},
		"no focus backward to last":  {current: "", dir: FocusBackward, want: "D"},
		"stale id falls back first":  {current: "gone", dir: FocusForward, want: "A"},
		"stale id backward to first": {current: "gone", dir: FocusBackward, want: "A"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := FindFocusTarget(focusTree(), tt.current, tt.dir)
			if !ok {
				t.Fatal("expected a focus target")
			}
			if got != tt.want {
				t.Errorf("expected target %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFindFocusTarget_SingleElement(t *testing.T) {
	root := Node{ID: "root", Children: []Node{{ID: "only", Focusable: true}}}

	for _, dir := range []FocusDirection{FocusForward, FocusBackward} {
		got, ok := FindFocusTarget(root, "only", dir)
		if !ok || got != "only" {
			t.Errorf("expected single element to wrap onto itself, got %q ok=%v", got, ok)
		}
	}
}

func TestFindFocusTarget_Empty(t *testing.T) {
	root := Node{ID: "root", Children: []Node{{ID: "A"}, {ID: "B"}}}

	if got, ok := FindFocusTarget(root, "", FocusForward); ok {
		t.Errorf("expected no target in a tree without focusables, got %q", got)
	}
	if got, ok := FindFocusTarget(root, "A", FocusBackward); ok {
		t.Errorf("expected no target even with a current id, got %q", got)
	}
}
