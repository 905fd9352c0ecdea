package bar

// CanonicalArrays is the wire-shaped form of an action list: parallel
// sequences of equal length, one slot per original item. Spacer slots carry
// empty-string/zero sentinels in the non-spacer arrays so index i refers to
// the same logical item across all six arrays.
type CanonicalArrays struct {
	Icons      []string
	Labels     []string
	Paddings   []float64
	LabelSizes []float64
	IconSizes  []float64
	Spacers    []string
}

// Normalize converts an action list into canonical arrays. Malformed items
// never fail: missing fields resolve to empty/zero sentinels, because partial
// configuration during incremental UI work must not crash rendering.
func Normalize(items []ActionItem) CanonicalArrays {
	n := len(items)
	c := CanonicalArrays{
		Icons:      make([]string, n),
		Labels:     make([]string, n),
		Paddings:   make([]float64, n),
		LabelSizes: make([]float64, n),
		IconSizes:  make([]float64, n),
		Spacers:    make([]string, n),
	}
	for i, item := range items {
		switch item.Kind {
		case KindFixedSpace:
			c.Spacers[i] = SpacerFixed
			if item.Padding > 0 {
				c.Paddings[i] = item.Padding
			}
		case KindFlexibleSpace:
			c.Spacers[i] = SpacerFlexible
		default:
			c.Icons[i] = item.Icon
			if item.Icon == "" {
				// Native controls render a single glyph; the icon wins when
				// both are set.
				c.Labels[i] = item.Label
			}
			if item.Padding > 0 {
				c.Paddings[i] = item.Padding
			}
			if item.LabelSize > 0 {
				c.LabelSizes[i] = item.LabelSize
			}
			if item.IconSize > 0 {
				c.IconSizes[i] = item.IconSize
			}
		}
	}
	return c
}

// Len returns the number of slots.
func (c CanonicalArrays) Len() int {
	return len(c.Spacers)
}

// spacerAt returns the spacer marker for slot i, defensively tolerating
// short arrays.
func (c CanonicalArrays) spacerAt(i int) string {
	if i < 0 || i >= len(c.Spacers) {
		return ""
	}
	return c.Spacers[i]
}

// paddingAt returns the padding for slot i, defensively tolerating short
// arrays and negative values.
func (c CanonicalArrays) paddingAt(i int) float64 {
	if i < 0 || i >= len(c.Paddings) {
		return 0
	}
	if p := c.Paddings[i]; p > 0 {
		return p
	}
	return 0
}

// Equal reports whether two canonical arrays are value-identical. Used by
// the diff engine to decide whether a setItems operation is needed.
func (c CanonicalArrays) Equal(o CanonicalArrays) bool {
	if c.Len() != o.Len() {
		return false
	}
	for i := range c.Spacers {
		if c.Icons[i] != o.Icons[i] ||
			c.Labels[i] != o.Labels[i] ||
			c.Paddings[i] != o.Paddings[i] ||
			c.LabelSizes[i] != o.LabelSizes[i] ||
			c.IconSizes[i] != o.IconSizes[i] ||
			c.Spacers[i] != o.Spacers[i] {
			return false
		}
	}
	return true
}
