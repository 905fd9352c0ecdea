package graphics

import "testing"

func TestPackedRoundTrip(t *testing.T) {
	c := RGBA8(0x12, 0x34, 0x56, 0x78)
	if got := FromPacked(c.Packed()); got != c {
		t.Errorf("round trip changed color: %08x != %08x", got, c)
	}
	if c.Packed() != 0x78123456 {
		t.Errorf("unexpected packing: %08x", c.Packed())
	}
}

func TestRGBIsOpaque(t *testing.T) {
	if a := RGB(10, 20, 30).Alpha(); a != 1.0 {
		t.Errorf("RGB alpha = %v, want 1", a)
	}
}

func TestWithAlpha(t *testing.T) {
	c := ColorBlack.WithAlpha(0)
	if c != ColorTransparent {
		t.Errorf("WithAlpha(0) = %08x, want transparent black", uint32(c))
	}
	if got := RGB(1, 2, 3).WithAlpha(2.0); got.Alpha() != 1.0 {
		t.Errorf("alpha should clamp to 1, got %v", got.Alpha())
	}
}
