package bar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizePreservesOrderAndLength(t *testing.T) {
	items := []ActionItem{
		IconButton("gear"),
		FixedSpace(20),
		LabelButton("Edit"),
		FlexibleSpace(),
	}
	c := Normalize(items)

	if c.Len() != len(items) {
		t.Fatalf("Len = %d, want %d", c.Len(), len(items))
	}
	for _, arr := range [][]string{c.Icons, c.Labels, c.Spacers} {
		if len(arr) != len(items) {
			t.Fatalf("string array length %d, want %d", len(arr), len(items))
		}
	}
	for _, arr := range [][]float64{c.Paddings, c.LabelSizes, c.IconSizes} {
		if len(arr) != len(items) {
			t.Fatalf("number array length %d, want %d", len(arr), len(items))
		}
	}

	want := CanonicalArrays{
		Icons:      []string{"gear", "", "", ""},
		Labels:     []string{"", "", "Edit", ""},
		Paddings:   []float64{0, 20, 0, 0},
		LabelSizes: []float64{0, 0, 0, 0},
		IconSizes:  []float64{0, 0, 0, 0},
		Spacers:    []string{"", SpacerFixed, "", SpacerFlexible},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeIconWinsOverLabel(t *testing.T) {
	c := Normalize([]ActionItem{{Kind: KindButton, Icon: "share", Label: "Share"}})
	if c.Icons[0] != "share" {
		t.Errorf("icon = %q", c.Icons[0])
	}
	if c.Labels[0] != "" {
		t.Errorf("label should be suppressed when an icon is set, got %q", c.Labels[0])
	}
}

func TestNormalizeEmptyButtonStillOccupiesSlot(t *testing.T) {
	c := Normalize([]ActionItem{{Kind: KindButton}})
	if c.Len() != 1 {
		t.Fatalf("Len = %d", c.Len())
	}
	if c.Spacers[0] != "" {
		t.Errorf("empty button should not be a spacer, got %q", c.Spacers[0])
	}
}

func TestNormalizeNegativePaddingClamps(t *testing.T) {
	c := Normalize([]ActionItem{
		{Kind: KindFixedSpace, Padding: -5},
		{Kind: KindButton, Padding: -3, LabelSize: -1, IconSize: -2},
	})
	if c.Paddings[0] != 0 || c.Paddings[1] != 0 {
		t.Errorf("negative paddings should clamp to zero: %v", c.Paddings)
	}
	if c.LabelSizes[1] != 0 || c.IconSizes[1] != 0 {
		t.Errorf("negative sizes should clamp to zero")
	}
}

func TestNormalizeFlexibleCarriesNothing(t *testing.T) {
	c := Normalize([]ActionItem{{Kind: KindFlexibleSpace, Icon: "x", Label: "y", Padding: 7}})
	if c.Icons[0] != "" || c.Labels[0] != "" || c.Paddings[0] != 0 {
		t.Errorf("flexible spacer must carry sentinels only: %+v", c)
	}
	if c.Spacers[0] != SpacerFlexible {
		t.Errorf("spacer marker = %q", c.Spacers[0])
	}
}

func TestCanonicalArraysEqual(t *testing.T) {
	a := Normalize([]ActionItem{IconButton("a"), FixedSpace(10)})
	b := Normalize([]ActionItem{IconButton("a"), FixedSpace(10)})
	if !a.Equal(b) {
		t.Error("identical inputs should normalize equal")
	}

	c := Normalize([]ActionItem{IconButton("a"), FixedSpace(12)})
	if a.Equal(c) {
		t.Error("differing padding should not compare equal")
	}

	d := Normalize([]ActionItem{IconButton("a")})
	if a.Equal(d) {
		t.Error("differing length should not compare equal")
	}
}
