package bar

// Base control dimensions in logical pixels, before padding. These match the
// native control metrics the pills wrap; padding grows outward from them.
const (
	BaseControlWidth  = 44.0
	BaseControlHeight = 34.0
)

// PillMetrics is the computed geometry of one pill group.
type PillMetrics struct {
	// ButtonWidths holds one width per button, in group order.
	ButtonWidths []float64
	// Width is the total pill width.
	Width float64
	// Height is shared by every button in the group so the enclosing
	// background renders as a single seamless capsule.
	Height float64
	// CornerRadius is always Height/2: pills are capsules, not a
	// configurable shape.
	CornerRadius float64
}

// PillGeometry computes per-button and overall geometry for a group.
// pillHeight, when non-nil, overrides the derived height; otherwise the
// height is the base control height grown by the largest per-button padding
// in the group, so the tallest member decides for all.
func PillGeometry(g *Group, pillHeight *float64) PillMetrics {
	var m PillMetrics
	if g == nil || len(g.Buttons) == 0 {
		return m
	}

	m.ButtonWidths = make([]float64, len(g.Buttons))
	maxBase := 0.0
	for i, b := range g.Buttons {
		w := BaseControlWidth + b.Leading + b.Trailing
		m.ButtonWidths[i] = w
		m.Width += w
		if b.Base > maxBase {
			maxBase = b.Base
		}
	}

	if pillHeight != nil && *pillHeight > 0 {
		m.Height = *pillHeight
	} else {
		m.Height = BaseControlHeight + 2*maxBase
	}
	m.CornerRadius = m.Height / 2
	return m
}
