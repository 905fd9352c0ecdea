// Package bar implements the action-bar layout and synchronization engine
// shared by every bar kind: normalization of heterogeneous action lists into
// canonical parallel arrays, resolution of button groups and spacers, pill
// geometry, middle-section alignment, namespaced tap-index routing, and
// snapshot diffing into minimal update operations.
package bar

// ItemKind distinguishes the kinds of entries in an action list.
type ItemKind int

const (
	// KindButton is a tappable control rendered inside a pill group.
	KindButton ItemKind = iota
	// KindFixedSpace is a gap of exact width, split between its neighbors.
	KindFixedSpace
	// KindFlexibleSpace expands to consume the remaining width.
	KindFlexibleSpace
)

// Spacer markers as they appear in canonical arrays and on the wire. Any
// other non-empty marker is treated as a button slot so future spacer kinds
// degrade gracefully instead of breaking rendering.
const (
	SpacerFixed    = "fixed"
	SpacerFlexible = "flexible"
)

// ActionItem describes one entry of a bar section. Items are plain values,
// created fresh on every rebuild and never mutated in place.
//
// A button carrying both Icon and Label renders the icon only, matching
// native single-glyph controls. A FixedSpace interprets Padding as the total
// gap width; a FlexibleSpace carries no other fields.
type ActionItem struct {
	Kind      ItemKind
	Icon      string
	Label     string
	LabelSize float64
	IconSize  float64
	Padding   float64
}

// IconButton returns a button item rendering the named icon.
func IconButton(icon string) ActionItem {
	return ActionItem{Kind: KindButton, Icon: icon}
}

// LabelButton returns a button item rendering a text label.
func LabelButton(label string) ActionItem {
	return ActionItem{Kind: KindButton, Label: label}
}

// FixedSpace returns a spacer consuming exactly width logical pixels.
func FixedSpace(width float64) ActionItem {
	return ActionItem{Kind: KindFixedSpace, Padding: width}
}

// FlexibleSpace returns a spacer that expands to the remaining width.
func FlexibleSpace() ActionItem {
	return ActionItem{Kind: KindFlexibleSpace}
}
