package layout

import "testing"

func TestSolve_WrapBreaksLines(t *testing.T) {
	rules := DefaultRules()
	rules.Wrap = true
	rules.MainSize = 100
	rules.CrossSize = 100
	rules.Align = AlignFitStart

	items := []Item{
		{ID: "a", Constraint: Hug(), Intrinsic: Size{Width: 60, Height: 20}},
		{ID: "b", Constraint: Hug(), Intrinsic: Size{Width: 50, Height: 30}},
		{ID: "c", Constraint: Hug(), Intrinsic: Size{Width: 40, Height: 10}},
	}

	rects, err := Solve(items, rules)
	if err != nil {
		t.Fatalf("Solve error = %v", err)
	}

	// 60 fits; 60+50 overflows, so b starts line two; 50+40 fits beside it.
	if rects[0].Y != 0 {
		t.Errorf("a y = %v, want 0 (line one)", rects[0].Y)
	}
	if !approxEq(rects[1].Y, 20) || !approxEq(rects[1].X, 0) {
		t.Errorf("b = %+v, want x=0 y=20 (line two)", rects[1])
	}
	if !approxEq(rects[2].X, 50) || !approxEq(rects[2].Y, 20) {
		t.Errorf("c = %+v, want x=50 y=20 (beside b)", rects[2])
	}
}

func TestSolve_WrapLineThickness(t *testing.T) {
	rules := DefaultRules()
	rules.Wrap = true
	rules.MainSize = 100
	rules.CrossSize = 100
	rules.Gap = 5

	items := []Item{
		{ID: "a", Constraint: Hug(), Intrinsic: Size{Width: 70, Height: 20}},
		{ID: "b", Constraint: Hug(), Intrinsic: Size{Width: 70, Height: 35}},
	}

	rects, err := Solve(items, rules)
	if err != nil {
		t.Fatalf("Solve error = %v", err)
	}

	// Line one is 20 thick; line two starts after the cross-axis gap.
	if !approxEq(rects[1].Y, 25) {
		t.Errorf("b y = %v, want 25 (line thickness 20 + gap 5)", rects[1].Y)
	}
	// Stretch fills the line's thickness, not the whole container.
	if !approxEq(rects[0].Height, 20) {
		t.Errorf("a height = %v, want 20", rects[0].Height)
	}
	if !approxEq(rects[1].Height, 35) {
		t.Errorf("b height = %v, want 35", rects[1].Height)
	}
}

func TestSolve_WrapOversizedItemGetsOwnLine(t *testing.T) {
	rules := DefaultRules()
	rules.Wrap = true
	rules.MainSize = 100
	rules.CrossSize = 100

	items := []Item{
		{ID: "huge", Constraint: Hug(), Intrinsic: Size{Width: 150, Height: 10}},
		{ID: "next", Constraint: Hug(), Intrinsic: Size{Width: 30, Height: 10}},
	}

	rects, err := Solve(items, rules)
	if err != nil {
		t.Fatalf("Solve error = %v", err)
	}
	// A line always holds at least one item, even one that overflows.
	if !approxEq(rects[0].Width, 150) || rects[0].Y != 0 {
		t.Errorf("huge = %+v, want full 150 on line one", rects[0])
	}
	if !approxEq(rects[1].Y, 10) {
		t.Errorf("next y = %v, want 10 (line two)", rects[1].Y)
	}
}

func TestSolve_WrapKeepsInputOrder(t *testing.T) {
	rules := DefaultRules()
	rules.Wrap = true
	rules.MainSize = 50
	rules.CrossSize = 100

	items := []Item{
		{ID: "a", Constraint: Hug(), Intrinsic: Size{Width: 30, Height: 10}},
		{ID: "b", Constraint: Hug(), Intrinsic: Size{Width: 30, Height: 10}},
		{ID: "c", Constraint: Hug(), Intrinsic: Size{Width: 30, Height: 10}},
	}

	rects, err := Solve(items, rules)
	if err != nil {
		t.Fatalf("Solve error = %v", err)
	}
	if len(rects) != 3 {
		t.Fatalf("got %d rects, want 3", len(rects))
	}
	// Index i of the output always describes items[i], wrap or not.
	for i := 1; i < len(rects); i++ {
		if rects[i].Y < rects[i-1].Y {
			t.Errorf("rect %d on an earlier line than rect %d", i, i-1)
		}
	}
}
