package layout

import "fmt"

// epsilon is the tolerance below which leftover space is treated as
// consumed. Distribution arithmetic is float64, so exact zero is rare.
const epsilon = 1e-6

// Solve computes one Rect per item, index-aligned with the input.
//
// Items are partitioned into lines (a single line unless rules.Wrap is
// set), sized along the main axis (fixed and hug items at their base
// size, flex items sharing leftover space by weight), positioned
// according to rules.Justify, and aligned on the cross axis according
// to rules.Align or each item's override.
//
// Solve is pure: identical input produces identical output, and no
// state is retained between calls. Invalid constraints or rules are
// reported before any geometry is computed.
func Solve(items []Item, rules Rules) ([]Rect, error) {
	if err := rules.validate(); err != nil {
		return nil, err
	}
	for i := range items {
		if err := items[i].Constraint.validate(); err != nil {
			return nil, fmt.Errorf("item %d (%q): %w", i, items[i].ID, err)
		}
	}
	if len(items) == 0 {
		return nil, nil
	}

	lines := partitionLines(items, rules)

	rects := make([]Rect, len(items))
	crossOffset := 0.0
	for _, line := range lines {
		sizes := mainSizes(items, line, rules)
		thickness := lineThickness(items, line, rules)

		used := rules.Gap * float64(len(line)-1)
		for _, s := range sizes {
			used += s
		}
		free := rules.MainSize - used
		if free < 0 {
			// Overflow: items extend past the container, unclipped.
			free = 0
		}
		lead, spacing := justifySpacing(rules.Justify, free, len(line))

		mainPos := lead
		for k, idx := range line {
			if k > 0 {
				mainPos += rules.Gap + spacing
			}
			crossSize, crossPos := alignCross(items[idx], rules, thickness)
			x, y := rules.Direction.pack(mainPos, crossOffset+crossPos)
			w, h := rules.Direction.pack(sizes[k], crossSize)
			rects[idx] = Rect{X: x, Y: y, Width: w, Height: h}
			mainPos += sizes[k]
		}

		crossOffset += thickness + rules.Gap
	}

	return rects, nil
}

// baseMain returns an item's main-axis base size: the literal pixels
// for fixed, the intrinsic content size for hug, and 0 for flex (flex
// sizes are resolved against leftover space later). Bounds apply to
// the base size as well.
func baseMain(it Item, dir Direction) float64 {
	switch it.Constraint.Basis {
	case BasisFixed:
		return it.Constraint.clamp(it.Constraint.Size)
	case BasisHug:
		return it.Constraint.clamp(dir.main(it.Intrinsic.Width, it.Intrinsic.Height))
	default:
		return 0
	}
}

// partitionLines splits items into lines of index runs. Without wrap,
// one line holds everything. With wrap, items pack greedily into the
// current line while the cumulative fixed+hug size plus gaps fits
// MainSize; flex items contribute nothing to packing. A line always
// holds at least one item even if it overflows.
func partitionLines(items []Item, rules Rules) [][]int {
	if !rules.Wrap {
		line := make([]int, len(items))
		for i := range items {
			line[i] = i
		}
		return [][]int{line}
	}

	var lines [][]int
	var line []int
	used := 0.0
	for i := range items {
		base := baseMain(items[i], rules.Direction)
		needed := base
		if len(line) > 0 {
			needed += rules.Gap
		}
		if len(line) > 0 && used+needed > rules.MainSize {
			lines = append(lines, line)
			line = []int{i}
			used = base
			continue
		}
		line = append(line, i)
		used += needed
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// mainSizes resolves the main-axis size of every item in a line.
// Returned sizes are index-aligned with the line.
func mainSizes(items []Item, line []int, rules Rules) []float64 {
	sizes := make([]float64, len(line))
	cons := make([]Constraint, len(line))

	var flex []int // positions within the line
	nonFlex := 0.0
	for k, idx := range line {
		cons[k] = items[idx].Constraint
		if cons[k].Basis == BasisFlex {
			flex = append(flex, k)
			continue
		}
		sizes[k] = baseMain(items[idx], rules.Direction)
		nonFlex += sizes[k]
	}

	gaps := rules.Gap * float64(len(line)-1)
	leftover := rules.MainSize - gaps - nonFlex

	if leftover > 0 && len(flex) > 0 {
		growFlex(cons, sizes, flex, leftover)
		return sizes
	}

	// No space to distribute: flex items collapse to their minimum.
	for _, k := range flex {
		sizes[k] = cons[k].clamp(0)
	}

	used := gaps
	for _, s := range sizes {
		used += s
	}
	if used > rules.MainSize {
		shrinkOverflow(cons, sizes, used-rules.MainSize)
	}
	return sizes
}

// growFlex distributes leftover space among flex items proportionally
// to weight, clamping each to its bounds. An item whose share violates
// its bounds freezes at the bound and the remainder is redistributed to
// the rest. Each pass freezes at least one item, so the explicit loop
// is bounded by the flex item count.
func growFlex(cons []Constraint, sizes []float64, flex []int, leftover float64) {
	frozen := make([]bool, len(cons))
	remaining := leftover

	for iter := 0; iter < len(flex); iter++ {
		totalWeight := 0.0
		for _, k := range flex {
			if !frozen[k] {
				totalWeight += cons[k].Weight
			}
		}
		if totalWeight <= 0 {
			// Only zero-weight items left: they get no leftover.
			for _, k := range flex {
				if !frozen[k] {
					sizes[k] = cons[k].clamp(0)
				}
			}
			return
		}

		budget := remaining
		froze := false
		for _, k := range flex {
			if frozen[k] {
				continue
			}
			raw := budget * cons[k].Weight / totalWeight
			share := raw
			if share < 0 {
				share = 0
			}
			clamped := cons[k].clamp(share)
			sizes[k] = clamped
			if clamped != raw {
				frozen[k] = true
				remaining -= clamped
				froze = true
			}
		}
		if !froze {
			return
		}
	}
}

// shrinkOverflow reduces non-fixed items proportionally to their
// current size (not weight) until the deficit is recovered or every
// item reaches its minimum. Items that hit their floor freeze and the
// rest absorb the remainder; the loop is bounded by the item count.
// If nothing can shrink, items simply overflow.
func shrinkOverflow(cons []Constraint, sizes []float64, deficit float64) {
	frozen := make([]bool, len(cons))
	for k := range cons {
		if cons[k].Basis == BasisFixed {
			frozen[k] = true
		}
	}

	for iter := 0; iter < len(cons) && deficit > epsilon; iter++ {
		totalSize := 0.0
		for k := range cons {
			if !frozen[k] {
				totalSize += sizes[k]
			}
		}
		if totalSize <= 0 {
			return
		}

		cuts := make([]float64, len(cons))
		for k := range cons {
			if !frozen[k] {
				cuts[k] = deficit * sizes[k] / totalSize
			}
		}

		froze := false
		for k := range cons {
			if frozen[k] {
				continue
			}
			floor := cons[k].floor()
			if sizes[k]-cuts[k] < floor {
				deficit -= sizes[k] - floor
				sizes[k] = floor
				frozen[k] = true
				froze = true
			}
		}
		if !froze {
			for k := range cons {
				if !frozen[k] {
					sizes[k] -= cuts[k]
				}
			}
			return
		}
	}
}

// justifySpacing returns the leading offset and the extra spacing
// inserted between adjacent items for the given justify mode. With a
// single item, SpaceBetween behaves as Start.
func justifySpacing(justify Justify, free float64, count int) (lead, spacing float64) {
	if free <= 0 || count == 0 {
		return 0, 0
	}
	switch justify {
	case JustifyEnd:
		return free, 0
	case JustifyCenter:
		return free / 2, 0
	case JustifySpaceBetween:
		if count <= 1 {
			return 0, 0
		}
		return 0, free / float64(count-1)
	case JustifySpaceAround:
		space := free / float64(count)
		return space / 2, space
	case JustifySpaceEvenly:
		space := free / float64(count+1)
		return space, space
	default: // JustifyStart
		return 0, 0
	}
}

// lineThickness returns the cross-axis extent of a line: the container
// cross size when not wrapping, otherwise the tallest intrinsic cross
// size among the line's items.
func lineThickness(items []Item, line []int, rules Rules) float64 {
	if !rules.Wrap {
		return rules.CrossSize
	}
	thickness := 0.0
	for _, idx := range line {
		cross := items[idx].Intrinsic.Height
		if rules.Direction == Column {
			cross = items[idx].Intrinsic.Width
		}
		if cross > thickness {
			thickness = cross
		}
	}
	return thickness
}

// alignCross resolves an item's cross-axis size and offset within its
// line. Stretch fills the line; FitStart/FitEnd keep the intrinsic size
// even when it overflows the line; Start/End/Center clamp the intrinsic
// size to the line.
func alignCross(it Item, rules Rules, thickness float64) (size, pos float64) {
	align := rules.Align
	if it.Align != nil {
		align = *it.Align
	}

	intrinsic := it.Intrinsic.Height
	if rules.Direction == Column {
		intrinsic = it.Intrinsic.Width
	}

	switch align {
	case AlignStretch:
		return thickness, 0
	case AlignFitStart:
		return intrinsic, 0
	case AlignFitEnd:
		return intrinsic, thickness - intrinsic
	}

	size = intrinsic
	if size > thickness {
		size = thickness
	}
	switch align {
	case AlignEnd:
		pos = thickness - size
	case AlignCenter:
		pos = (thickness - size) / 2
	}
	return size, pos
}
