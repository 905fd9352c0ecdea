package bar

import "testing"

func TestPillGeometryWidths(t *testing.T) {
	elements := resolve(
		ActionItem{Kind: KindButton, Label: "A", Padding: 3},
		FixedSpace(10),
		LabelButton("B"),
	)
	g := elements[0].Group

	m := PillGeometry(g, nil)
	if len(m.ButtonWidths) != 2 {
		t.Fatalf("widths = %v", m.ButtonWidths)
	}
	// A: base 44 + leading 3 + trailing (3 + 5)
	if m.ButtonWidths[0] != BaseControlWidth+3+8 {
		t.Errorf("A width = %v", m.ButtonWidths[0])
	}
	// B: base 44 + leading 5 + trailing 0
	if m.ButtonWidths[1] != BaseControlWidth+5 {
		t.Errorf("B width = %v", m.ButtonWidths[1])
	}
	if m.Width != m.ButtonWidths[0]+m.ButtonWidths[1] {
		t.Errorf("pill width %v != sum of button widths", m.Width)
	}
}

func TestPillGeometrySharedHeight(t *testing.T) {
	elements := resolve(
		ActionItem{Kind: KindButton, Label: "A", Padding: 2},
		ActionItem{Kind: KindButton, Label: "B", Padding: 6},
	)
	m := PillGeometry(elements[0].Group, nil)

	// The tallest member decides for the whole capsule.
	if want := BaseControlHeight + 12; m.Height != want {
		t.Errorf("height = %v, want %v", m.Height, want)
	}
	if m.CornerRadius != m.Height/2 {
		t.Errorf("corner radius = %v, want height/2", m.CornerRadius)
	}
}

func TestPillGeometryExplicitHeight(t *testing.T) {
	elements := resolve(ActionItem{Kind: KindButton, Label: "A", Padding: 9})
	h := 50.0
	m := PillGeometry(elements[0].Group, &h)

	if m.Height != 50 {
		t.Errorf("height = %v, want explicit 50", m.Height)
	}
	if m.CornerRadius != 25 {
		t.Errorf("corner radius = %v, want 25", m.CornerRadius)
	}
}

func TestPillGeometryNilGroup(t *testing.T) {
	m := PillGeometry(nil, nil)
	if m.Width != 0 || m.Height != 0 || len(m.ButtonWidths) != 0 {
		t.Errorf("nil group should produce zero metrics: %+v", m)
	}
}
