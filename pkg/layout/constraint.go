package layout

import "fmt"

// Basis specifies how an item's main-axis size is determined.
type Basis uint8

const (
	BasisFixed Basis = iota // Literal pixel size
	BasisFlex               // Share of leftover space, proportional to weight
	BasisHug                // Item's intrinsic content size
)

// Constraint describes one axis's sizing rule for an item.
//
// The zero value is a fixed size of 0. Use Fixed, Flex, or Hug to
// construct constraints, and WithMin/WithMax to bound them.
type Constraint struct {
	Basis  Basis
	Size   float64 // Main-axis pixels for BasisFixed
	Weight float64 // Proportionality factor for BasisFlex

	Min, Max       float64
	HasMin, HasMax bool
}

// Fixed returns a constraint with a literal main-axis size in pixels.
func Fixed(px float64) Constraint {
	return Constraint{Basis: BasisFixed, Size: px}
}

// Flex returns a constraint that takes a share of leftover space
// proportional to weight. A weight of 0 never grows.
func Flex(weight float64) Constraint {
	return Constraint{Basis: BasisFlex, Weight: weight}
}

// Hug returns a constraint that sizes to the item's intrinsic content
// size (Item.Intrinsic).
func Hug() Constraint {
	return Constraint{Basis: BasisHug}
}

// WithMin returns a copy of the constraint with a lower bound in pixels.
func (c Constraint) WithMin(px float64) Constraint {
	c.Min = px
	c.HasMin = true
	return c
}

// WithMax returns a copy of the constraint with an upper bound in pixels.
func (c Constraint) WithMax(px float64) Constraint {
	c.Max = px
	c.HasMax = true
	return c
}

// validate reports caller-contract violations. These are configuration
// errors surfaced when the solver is invoked, never mid-solve.
func (c Constraint) validate() error {
	if c.HasMin && c.HasMax && c.Min > c.Max {
		return fmt.Errorf("layout: constraint min %v exceeds max %v", c.Min, c.Max)
	}
	if c.Weight < 0 {
		return fmt.Errorf("layout: negative flex weight %v", c.Weight)
	}
	if c.Basis == BasisFixed && c.Size < 0 {
		return fmt.Errorf("layout: negative fixed size %v", c.Size)
	}
	return nil
}

// clamp restricts v to the constraint's bounds. If min exceeds max the
// validation error fires first, so the order here never matters.
func (c Constraint) clamp(v float64) float64 {
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v
}

// floor returns the smallest size the constraint permits.
func (c Constraint) floor() float64 {
	if c.HasMin {
		return c.Min
	}
	return 0
}

// Item pairs a stable identifier with its sizing inputs.
// The solver never mutates items, only computes geometry per ID.
type Item struct {
	// ID is an opaque, caller-owned identifier. It must be stable
	// across layout passes.
	ID string

	// Constraint is the main-axis sizing rule.
	Constraint Constraint

	// Intrinsic is the item's content size. The main-axis component is
	// used by Hug constraints; the cross-axis component by non-stretch
	// alignment.
	Intrinsic Size

	// Align overrides the container's cross-axis alignment for this
	// item (nil = inherit).
	Align *Align
}
