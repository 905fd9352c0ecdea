package bar

// Wire method names of the targeted update operations.
const (
	MethodSetTitle      = "setTitle"
	MethodSetStyle      = "setStyle"
	MethodSetBrightness = "setBrightness"
	MethodSetItems      = "setItems"
	MethodSetLayout     = "setLayout"
)

// State tracks a bar instance through its lifecycle.
type State int

const (
	// StateUninitialized means construction has not succeeded yet; there is
	// no snapshot to diff against and updates are dropped.
	StateUninitialized State = iota
	// StateCreated means the construction payload was sent and seeded the
	// snapshot; no diff has run yet.
	StateCreated
	// StateSynced means at least one diff pass has completed. Terminal
	// until teardown.
	StateSynced
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateSynced:
		return "synced"
	default:
		return "uninitialized"
	}
}

// Op is one targeted update operation bound for the native side.
type Op struct {
	Method string
	Args   map[string]any
}

// Syncer diffs candidate snapshots against the last acknowledged one and
// emits the minimal set of update operations. Operations are fire-and-forget:
// the stored snapshot is updated optimistically as each op is emitted, an
// accepted trade-off — a dropped message leaves native state stale until the
// next change to the same field group forces a resend.
//
// A Syncer is owned by exactly one bar instance and is not safe for
// concurrent use; all updates happen within one rebuild pass.
type Syncer struct {
	state State
	last  Snapshot
}

// State returns the current lifecycle state.
func (s *Syncer) State() State {
	return s.state
}

// Last returns the snapshot the next sync will diff against.
func (s *Syncer) Last() Snapshot {
	return s.last
}

// Seed installs the snapshot sent at construction time. No diff is needed:
// the construction payload carried every field.
func (s *Syncer) Seed(snap Snapshot) {
	s.last = snap
	s.state = StateCreated
}

// Reset discards the snapshot at teardown.
func (s *Syncer) Reset() {
	s.last = Snapshot{}
	s.state = StateUninitialized
}

// Sync compares a candidate snapshot against the stored one and returns one
// targeted operation per changed field group, in a fixed order that places
// setItems before setLayout — layout recomputation on the native side reads
// the most recently set items, so the item count must land first. An
// identical candidate yields no operations.
//
// PillHeight is part of the construction payload only; the wire contract has
// no post-construction operation for it, so changes to it are ignored here.
func (s *Syncer) Sync(candidate Snapshot) []Op {
	if s.state == StateUninitialized {
		return nil
	}

	var ops []Op

	if candidate.Title != s.last.Title {
		ops = append(ops, Op{Method: MethodSetTitle, Args: map[string]any{
			"title": candidate.Title,
		}})
		s.last.Title = candidate.Title
	}

	if !equalTint(candidate.Tint, s.last.Tint) || candidate.Transparent != s.last.Transparent {
		ops = append(ops, Op{Method: MethodSetStyle, Args: map[string]any{
			"tint":        tintValue(candidate.Tint),
			"transparent": candidate.Transparent,
		}})
		s.last.Tint = candidate.Tint
		s.last.Transparent = candidate.Transparent
	}

	if candidate.IsDark != s.last.IsDark {
		ops = append(ops, Op{Method: MethodSetBrightness, Args: map[string]any{
			"isDark": candidate.IsDark,
		}})
		s.last.IsDark = candidate.IsDark
	}

	itemsChanged := candidate.MiddleAlignment.normalized() != s.last.MiddleAlignment.normalized()
	for section := SectionLeading; section < sectionCount && !itemsChanged; section++ {
		itemsChanged = !candidate.Sections[section].Equal(s.last.Sections[section])
	}
	if itemsChanged {
		ops = append(ops, Op{Method: MethodSetItems, Args: candidate.itemsArgs()})
		s.last.Sections = candidate.Sections
		s.last.MiddleAlignment = candidate.MiddleAlignment
		s.last.SelectedIndex = candidate.SelectedIndex
	}

	layoutChanged := candidate.Layout != s.last.Layout
	selectionChanged := candidate.SelectedIndex != s.last.SelectedIndex
	if layoutChanged || selectionChanged {
		ops = append(ops, Op{Method: MethodSetLayout, Args: candidate.layoutArgs()})
		s.last.Layout = candidate.Layout
		s.last.SelectedIndex = candidate.SelectedIndex
	}

	s.state = StateSynced
	return ops
}
