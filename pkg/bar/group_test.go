package bar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// resolve is a test shorthand: items through the normalizer and resolver.
func resolve(items ...ActionItem) []Element {
	return ResolveElements(Normalize(items))
}

func TestResolveNoSpacersSingleGroup(t *testing.T) {
	elements := resolve(IconButton("a"), LabelButton("b"), IconButton("c"))

	if len(elements) != 1 || elements[0].Group == nil {
		t.Fatalf("expected exactly one group, got %+v", elements)
	}
	g := elements[0].Group
	if len(g.Buttons) != 3 {
		t.Fatalf("group size = %d, want 3", len(g.Buttons))
	}
	for i, b := range g.Buttons {
		if b.Index != i {
			t.Errorf("button %d has slot index %d, order not preserved", i, b.Index)
		}
	}
}

func TestResolveFixedSpacerSymmetry(t *testing.T) {
	elements := resolve(LabelButton("A"), FixedSpace(10), LabelButton("B"))

	if len(elements) != 1 || elements[0].Group == nil {
		t.Fatalf("fixed spacer must not split the group, got %+v", elements)
	}
	g := elements[0].Group
	if len(g.Buttons) != 2 {
		t.Fatalf("group size = %d, want 2", len(g.Buttons))
	}
	a, b := g.Buttons[0], g.Buttons[1]
	if a.Trailing != 5 {
		t.Errorf("A trailing = %v, want 5", a.Trailing)
	}
	if b.Leading != 5 {
		t.Errorf("B leading = %v, want 5", b.Leading)
	}
	if a.Trailing != b.Leading {
		t.Errorf("gap not centered: trailing %v != leading %v", a.Trailing, b.Leading)
	}
	if a.Leading != 0 || b.Trailing != 0 {
		t.Errorf("outer edges must be untouched: %+v %+v", a, b)
	}
}

func TestResolveFlexibleSplitsGroups(t *testing.T) {
	elements := resolve(LabelButton("A"), FlexibleSpace(), LabelButton("B"))

	if len(elements) != 3 {
		t.Fatalf("expected group/spacer/group, got %d elements", len(elements))
	}
	if elements[0].Group == nil || len(elements[0].Group.Buttons) != 1 {
		t.Errorf("first element should be a single-button group")
	}
	if elements[1].Spacer == nil || elements[1].Spacer.Kind != SpacerFlexible {
		t.Errorf("middle element should be a flexible spacer, got %+v", elements[1])
	}
	if elements[2].Group == nil || len(elements[2].Group.Buttons) != 1 {
		t.Errorf("last element should be a single-button group")
	}
	// No padding is altered by a flexible spacer.
	for _, g := range Groups(elements) {
		for _, b := range g.Buttons {
			if b.Leading != 0 || b.Trailing != 0 {
				t.Errorf("flexible spacer altered padding: %+v", b)
			}
		}
	}
}

func TestResolveLeadingFixedSpacer(t *testing.T) {
	// No trailing side exists yet, so only the pending half reaches the
	// next button.
	elements := resolve(FixedSpace(10), LabelButton("A"))

	if len(elements) != 1 || elements[0].Group == nil {
		t.Fatalf("expected one group, got %+v", elements)
	}
	a := elements[0].Group.Buttons[0]
	if a.Leading != 5 {
		t.Errorf("A leading = %v, want 5", a.Leading)
	}
}

func TestResolveAdjacentSpacersAccumulatePending(t *testing.T) {
	elements := resolve(FixedSpace(10), FixedSpace(6), LabelButton("A"))

	a := elements[0].Group.Buttons[0]
	if a.Leading != 8 {
		t.Errorf("pending should accumulate across adjacent spacers: leading = %v, want 8", a.Leading)
	}
}

func TestResolvePendingSurvivesFlexible(t *testing.T) {
	elements := resolve(LabelButton("A"), FixedSpace(10), FlexibleSpace(), LabelButton("B"))

	groups := Groups(elements)
	if len(groups) != 2 {
		t.Fatalf("expected two groups, got %d", len(groups))
	}
	if got := groups[0].Buttons[0].Trailing; got != 5 {
		t.Errorf("A trailing = %v, want 5", got)
	}
	if got := groups[1].Buttons[0].Leading; got != 5 {
		t.Errorf("pending half should cross the flexible gap: B leading = %v, want 5", got)
	}
}

func TestResolveTrailingPendingSilentlyDropped(t *testing.T) {
	elements := resolve(LabelButton("A"), FixedSpace(10))

	if len(elements) != 1 {
		t.Fatalf("expected one group, got %+v", elements)
	}
	a := elements[0].Group.Buttons[0]
	if a.Trailing != 5 {
		t.Errorf("A trailing = %v, want 5", a.Trailing)
	}
	// The pending half has no button to attach to and vanishes.
}

func TestResolveButtonBasePaddingBothSides(t *testing.T) {
	elements := resolve(ActionItem{Kind: KindButton, Label: "A", Padding: 4})

	a := elements[0].Group.Buttons[0]
	want := ButtonSlot{Index: 0, Base: 4, Leading: 4, Trailing: 4}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("button slot mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveUnknownMarkerIsButton(t *testing.T) {
	c := Normalize([]ActionItem{IconButton("a"), IconButton("b")})
	c.Spacers[1] = "accordion" // future spacer kind: fail open, render as button

	elements := ResolveElements(c)
	if len(elements) != 1 || len(elements[0].Group.Buttons) != 2 {
		t.Errorf("unknown marker should behave as a button slot, got %+v", elements)
	}
}

func TestResolveEmptyInput(t *testing.T) {
	if elements := ResolveElements(Normalize(nil)); len(elements) != 0 {
		t.Errorf("empty input should resolve to no elements, got %+v", elements)
	}
}

func TestResolveOnlyFlexible(t *testing.T) {
	elements := resolve(FlexibleSpace(), FlexibleSpace())
	if len(elements) != 2 {
		t.Fatalf("expected two spacers, got %+v", elements)
	}
	for _, el := range elements {
		if el.Spacer == nil || el.Spacer.Kind != SpacerFlexible {
			t.Errorf("expected flexible spacer, got %+v", el)
		}
	}
}
