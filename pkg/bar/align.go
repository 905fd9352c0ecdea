package bar

// Alignment positions the middle section relative to leading and trailing
// content. The string values are the wire contract.
type Alignment string

const (
	// AlignLeading anchors the middle section right after the leading one.
	AlignLeading Alignment = "leading"
	// AlignCenter centers the middle section between two expanding gaps.
	AlignCenter Alignment = "center"
	// AlignTrailing merges the middle section into the trailing one.
	AlignTrailing Alignment = "trailing"
)

// normalized returns a valid alignment, defaulting unknown values to center.
func (a Alignment) normalized() Alignment {
	switch a {
	case AlignLeading, AlignTrailing:
		return a
	default:
		return AlignCenter
	}
}

// ResolveAlignment merges the three resolved sections into a single element
// sequence according to the middle alignment mode.
//
// Leading mode places middle directly after leading and absorbs the rest of
// the width on the right; it requires leading content and otherwise falls
// back to center. Trailing mode pushes middle against the trailing section;
// it requires trailing content and otherwise falls back to center. Center
// mode surrounds middle with two independent expanding gaps, which centers
// it regardless of how wide the outer sections are.
func ResolveAlignment(leading, middle, trailing []Element, mode Alignment) []Element {
	mode = mode.normalized()
	if mode == AlignLeading && len(leading) == 0 {
		mode = AlignCenter
	}
	if mode == AlignTrailing && len(trailing) == 0 {
		mode = AlignCenter
	}

	out := make([]Element, 0, len(leading)+len(middle)+len(trailing)+2)
	out = append(out, leading...)

	switch mode {
	case AlignLeading:
		out = append(out, middle...)
		out = append(out, FlexibleElement())
		out = append(out, trailing...)

	case AlignTrailing:
		out = append(out, FlexibleElement())
		out = append(out, middle...)
		out = append(out, trailing...)

	default: // AlignCenter
		if len(leading) > 0 {
			out = append(out, FlexibleElement())
		}
		out = append(out, middle...)
		out = append(out, FlexibleElement())
		out = append(out, trailing...)
	}
	return out
}
