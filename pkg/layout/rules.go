package layout

import "fmt"

// Direction specifies the main axis for laying out items.
type Direction uint8

const (
	Row    Direction = iota // Items laid out left-to-right
	Column                  // Items laid out top-to-bottom
)

// main returns the main-axis component of a size or point pair.
func (d Direction) main(x, y float64) float64 {
	if d == Row {
		return x
	}
	return y
}

// pack maps (main, cross) components back to (x, y).
func (d Direction) pack(main, cross float64) (x, y float64) {
	if d == Row {
		return main, cross
	}
	return cross, main
}

// Justify specifies how items are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center items
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each item
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how items are positioned on the cross axis.
//
// Start, End, and Center size the item to its intrinsic cross size
// clamped to the line's thickness. FitStart and FitEnd use the intrinsic
// size unclamped, so an oversized item overflows the line instead of
// being squeezed.
type Align uint8

const (
	AlignStart    Align = iota // Align to start of cross axis
	AlignEnd                   // Align to end of cross axis
	AlignCenter                // Center on cross axis
	AlignStretch               // Stretch to fill cross axis
	AlignFitStart              // Start-aligned at intrinsic size, never squeezed
	AlignFitEnd                // End-aligned at intrinsic size, never squeezed
)

// Rules holds the container-level layout properties.
type Rules struct {
	Direction Direction
	Wrap      bool
	Justify   Justify
	Align     Align
	Gap       float64 // Space between items on the main axis, and between lines

	// MainSize and CrossSize are the container dimensions mapped onto
	// the main/cross axes (for Row: width/height).
	MainSize  float64
	CrossSize float64
}

// DefaultRules returns Rules with sensible defaults: a non-wrapping row
// packing items at the start and stretching them across.
func DefaultRules() Rules {
	return Rules{
		Direction: Row,
		Justify:   JustifyStart,
		Align:     AlignStretch,
	}
}

// validate reports caller-contract violations in container rules.
func (r Rules) validate() error {
	if r.Gap < 0 {
		return fmt.Errorf("layout: negative gap %v", r.Gap)
	}
	if r.MainSize < 0 {
		return fmt.Errorf("layout: negative main size %v", r.MainSize)
	}
	if r.CrossSize < 0 {
		return fmt.Errorf("layout: negative cross size %v", r.CrossSize)
	}
	return nil
}
