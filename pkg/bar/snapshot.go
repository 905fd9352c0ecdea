package bar

import "github.com/go-drift/nativebar/pkg/graphics"

// LayoutSpec holds the layout knobs that travel over setLayout: split mode
// for bars that divide their items into a left and right cluster, the number
// of items on the right, and the spacing between the two clusters.
type LayoutSpec struct {
	Split        bool
	RightCount   int
	SplitSpacing float64
}

// Snapshot captures the full declarative state of one bar instance as last
// sent to (and optimistically acknowledged by) the native side. It is the
// baseline the diff engine compares candidates against. A snapshot is
// created when construction succeeds, updated field-by-field after each
// emitted operation, and discarded at teardown.
type Snapshot struct {
	Title           string
	Tint            *graphics.Color
	Transparent     bool
	IsDark          bool
	PillHeight      *float64
	MiddleAlignment Alignment
	Sections        [sectionCount]CanonicalArrays
	SelectedIndex   int
	Layout          LayoutSpec
}

// ConstructionPayload builds the wire payload sent once at creation. The
// field names are the wire contract shared with the native implementations.
func (s Snapshot) ConstructionPayload() map[string]any {
	payload := map[string]any{
		"title":           s.Title,
		"middleAlignment": string(s.MiddleAlignment.normalized()),
		"transparent":     s.Transparent,
		"isDark":          s.IsDark,
		"tint":            tintValue(s.Tint),
		"pillHeight":      pillHeightValue(s.PillHeight),
	}
	s.putSectionArrays(payload)
	return payload
}

// itemsArgs builds the setItems payload: every section's arrays plus the
// alignment and selection that depend on them.
func (s Snapshot) itemsArgs() map[string]any {
	args := map[string]any{
		"middleAlignment": string(s.MiddleAlignment.normalized()),
		"selectedIndex":   s.SelectedIndex,
	}
	s.putSectionArrays(args)
	return args
}

// layoutArgs builds the setLayout payload.
func (s Snapshot) layoutArgs() map[string]any {
	return map[string]any{
		"split":         s.Layout.Split,
		"rightCount":    s.Layout.RightCount,
		"splitSpacing":  s.Layout.SplitSpacing,
		"selectedIndex": s.SelectedIndex,
	}
}

// putSectionArrays writes the six parallel arrays of every section into the
// payload under the "{section}{Field}" wire keys.
func (s Snapshot) putSectionArrays(payload map[string]any) {
	for section := SectionLeading; section < sectionCount; section++ {
		c := s.Sections[section]
		prefix := section.String()
		payload[prefix+"Icons"] = c.Icons
		payload[prefix+"Labels"] = c.Labels
		payload[prefix+"Paddings"] = c.Paddings
		payload[prefix+"LabelSizes"] = c.LabelSizes
		payload[prefix+"IconSizes"] = c.IconSizes
		payload[prefix+"Spacers"] = c.Spacers
	}
}

// tintValue converts an optional tint into its wire value: the packed ARGB
// number, or nil for "use the platform default".
func tintValue(tint *graphics.Color) any {
	if tint == nil {
		return nil
	}
	return tint.Packed()
}

// pillHeightValue converts an optional pill height override into its wire
// value.
func pillHeightValue(h *float64) any {
	if h == nil {
		return nil
	}
	return *h
}

// equalTint compares two optional tints by value.
func equalTint(a, b *graphics.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
