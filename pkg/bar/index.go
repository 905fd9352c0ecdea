package bar

// Section identifies one of the three bar sections.
type Section int

const (
	SectionLeading Section = iota
	SectionMiddle
	SectionTrailing
	sectionCount
)

func (s Section) String() string {
	switch s {
	case SectionLeading:
		return "leading"
	case SectionMiddle:
		return "middle"
	case SectionTrailing:
		return "trailing"
	default:
		return "unknown"
	}
}

// sectionStride namespaces tap indices per section so one event channel can
// carry all three sections without collisions. A section holding 1000 or
// more items would overflow into its neighbor; that precondition is not
// enforced here.
const sectionStride = 1000

// EncodeIndex maps a (section, slot) pair to the wire-level tag carried by
// the rendered control. slot must be below sectionStride.
func EncodeIndex(section Section, slot int) int {
	return int(section)*sectionStride + slot
}

// DecodeIndex recovers the section and original slot index from a wire tag.
// It reports false for tags outside the three section namespaces.
func DecodeIndex(tag int) (Section, int, bool) {
	if tag < 0 || tag >= int(sectionCount)*sectionStride {
		return 0, 0, false
	}
	return Section(tag / sectionStride), tag % sectionStride, true
}

// Router dispatches de-namespaced tap indices to per-section callbacks.
// Slot counts bound the accepted indices: a tag decoding past the current
// item count is a stale native callback (the rebuild shrank the section)
// and is dropped rather than propagated.
type Router struct {
	counts    [sectionCount]int
	callbacks [sectionCount]func(slot int)
}

// SetSection configures the slot count and tap callback for a section.
func (r *Router) SetSection(section Section, count int, callback func(slot int)) {
	if section < 0 || section >= sectionCount {
		return
	}
	r.counts[section] = count
	r.callbacks[section] = callback
}

// Dispatch routes a raw wire tag to the owning section's callback, handing
// it the original slot index. It reports whether a callback was invoked.
func (r *Router) Dispatch(tag int) bool {
	section, slot, ok := DecodeIndex(tag)
	if !ok {
		return false
	}
	if slot >= r.counts[section] {
		return false
	}
	cb := r.callbacks[section]
	if cb == nil {
		return false
	}
	cb(slot)
	return true
}
