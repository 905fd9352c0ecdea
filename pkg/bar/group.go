package bar

// ButtonSlot is one button inside a Group, with its padding resolved per
// side. Base is the item's own symmetric padding; Leading and Trailing start
// from Base and absorb the halves of adjacent fixed spacers.
type ButtonSlot struct {
	Index    int
	Base     float64
	Leading  float64
	Trailing float64
}

// Group is an ordered, non-empty run of buttons rendering as one contiguous
// pill. It never contains a spacer slot.
type Group struct {
	Buttons []ButtonSlot
}

// Spacer separates groups. The resolver only ever emits flexible spacers:
// a fixed spacer's width is folded into the padding of its neighbors, so it
// never survives as a standalone element. Width is meaningful for fixed
// spacers only.
type Spacer struct {
	Kind  string
	Width float64
}

// Element is one entry of a resolved section: exactly one of Group or
// Spacer is non-nil.
type Element struct {
	Group  *Group
	Spacer *Spacer
}

// GroupElement wraps a group as an element.
func GroupElement(g *Group) Element {
	return Element{Group: g}
}

// FlexibleElement returns a flexible-gap element.
func FlexibleElement() Element {
	return Element{Spacer: &Spacer{Kind: SpacerFlexible}}
}

// ResolveElements partitions canonical arrays into an ordered sequence of
// groups and spacers.
//
// A fixed spacer does not break the open group: its width is split in half,
// the first half added to the trailing padding of the last button already
// accumulated, the second half carried as pending padding for the next
// button. This centers the gap between its neighbors instead of biasing it
// to one side. Pending padding survives adjacent spacers of either kind and
// is silently dropped if no button ever follows.
//
// A flexible spacer closes the open group and emits an expanding gap.
// Unknown spacer markers are treated as button slots so future spacer kinds
// fail open.
func ResolveElements(c CanonicalArrays) []Element {
	var elements []Element
	var open *Group
	pending := 0.0

	closeOpen := func() {
		if open != nil && len(open.Buttons) > 0 {
			elements = append(elements, Element{Group: open})
		}
		open = nil
	}

	for i := 0; i < c.Len(); i++ {
		switch c.spacerAt(i) {
		case SpacerFlexible:
			closeOpen()
			elements = append(elements, FlexibleElement())

		case SpacerFixed:
			w := c.paddingAt(i)
			half := w / 2
			if open != nil && len(open.Buttons) > 0 {
				open.Buttons[len(open.Buttons)-1].Trailing += half
			}
			// With no button on the trailing side, that half has no home
			// and only the pending half reaches the next button.
			pending += half

		default:
			base := c.paddingAt(i)
			if open == nil {
				open = &Group{}
			}
			open.Buttons = append(open.Buttons, ButtonSlot{
				Index:    i,
				Base:     base,
				Leading:  base + pending,
				Trailing: base,
			})
			pending = 0
		}
	}
	closeOpen()
	return elements
}

// Groups returns only the group elements, in order.
func Groups(elements []Element) []*Group {
	var out []*Group
	for _, el := range elements {
		if el.Group != nil {
			out = append(out, el.Group)
		}
	}
	return out
}
