package views

import (
	"github.com/go-drift/nativebar/pkg/bar"
	"github.com/go-drift/nativebar/pkg/graphics"
	"github.com/go-drift/nativebar/pkg/platform"
)

// Config is the declarative description of a bar. Callers build a fresh
// Config for every rebuild and hand it to Update; the view diffs it against
// the last acknowledged state and sends only what changed.
type Config struct {
	// Title is shown when the middle section holds no items. Rendering both
	// is not supported: middle items win and the title is suppressed.
	Title string

	// Leading, Middle and Trailing hold the action items per section.
	Leading  []bar.ActionItem
	Middle   []bar.ActionItem
	Trailing []bar.ActionItem

	// MiddleAlignment positions the middle section. Empty defaults to center.
	MiddleAlignment bar.Alignment

	// Transparent removes the bar background.
	Transparent bool

	// IsDark selects the dark appearance.
	IsDark bool

	// Tint overrides the control tint; nil keeps the platform default.
	Tint *graphics.Color

	// PillHeight overrides the derived pill height. Construction-only: the
	// wire contract has no update operation for it.
	PillHeight *float64

	// SelectedIndex marks the selected control for bars with selection.
	SelectedIndex int

	// Layout configures split placement for bars that support it.
	Layout bar.LayoutSpec

	// Attributes are forwarded opaquely to the native implementation:
	// blur material names, search-field keyboard flags, sheet chrome hints.
	// The engine never interprets them.
	Attributes map[string]any

	// Per-section tap callbacks, invoked with the original slot index.
	OnLeadingTap  func(index int)
	OnMiddleTap   func(index int)
	OnTrailingTap func(index int)

	// OnIntrinsicSize receives the one-shot native measurement. Until it
	// fires the bar renders at a provisional default size.
	OnIntrinsicSize func(size graphics.Size)
}

// snapshot converts the config into the engine's snapshot form.
func (c Config) snapshot() bar.Snapshot {
	var s bar.Snapshot
	s.Sections[bar.SectionLeading] = bar.Normalize(c.Leading)
	s.Sections[bar.SectionMiddle] = bar.Normalize(c.Middle)
	s.Sections[bar.SectionTrailing] = bar.Normalize(c.Trailing)
	if len(c.Middle) == 0 {
		s.Title = c.Title
	}
	s.MiddleAlignment = c.MiddleAlignment
	s.Transparent = c.Transparent
	s.IsDark = c.IsDark
	s.Tint = c.Tint
	s.PillHeight = c.PillHeight
	s.SelectedIndex = c.SelectedIndex
	s.Layout = c.Layout
	return s
}

// BarView is the shared core of every bar kind: it owns the instance's
// snapshot, routes inbound taps and negotiates the intrinsic size. A view
// belongs to the UI thread; its methods are not safe for concurrent use
// beyond the inbound dispatch the registry performs.
type BarView struct {
	id         int64
	barType    string
	registry   *BarRegistry
	config     Config
	syncer     bar.Syncer
	router     bar.Router
	negotiator bar.SizeNegotiator
	disposed   bool
}

// newBarView constructs a bar of the given type and sends the construction
// payload. The returned view is already live: taps route and the intrinsic
// size request is in flight.
func newBarView(barType string, cfg Config) (*BarView, error) {
	v := &BarView{
		barType:  barType,
		registry: Registry(),
		config:   cfg,
	}
	snap := cfg.snapshot()
	if err := v.registry.create(v, barType, snap, cfg.Attributes); err != nil {
		return nil, err
	}
	v.syncer.Seed(snap)
	v.configureRouting(cfg)
	v.requestIntrinsicSize(cfg.OnIntrinsicSize)
	return v, nil
}

// ViewID returns the instance identifier shared with the native side.
func (v *BarView) ViewID() int64 {
	return v.id
}

// BarType returns the bar kind identifier.
func (v *BarView) BarType() string {
	return v.barType
}

// State exposes the sync lifecycle state.
func (v *BarView) State() bar.State {
	return v.syncer.State()
}

// Config returns the most recently applied configuration.
func (v *BarView) Config() Config {
	return v.config
}

// Update diffs the new configuration against the last acknowledged snapshot
// and dispatches one targeted operation per changed field group. Updating a
// disposed view is a no-op.
func (v *BarView) Update(cfg Config) {
	if v.disposed {
		return
	}
	v.config = cfg
	ops := v.syncer.Sync(cfg.snapshot())
	v.configureRouting(cfg)
	for _, op := range ops {
		v.registry.invoke(v.id, op.Method, op.Args)
	}
}

// Dispose tears the bar down. No further inbound events are dispatched and
// an in-flight intrinsic size response is dropped.
func (v *BarView) Dispose() {
	if v.disposed {
		return
	}
	v.disposed = true
	v.syncer.Reset()
	v.negotiator.Close()
	v.registry.dispose(v.id)
}

// IntrinsicSize returns the cached native measurement, if resolved.
func (v *BarView) IntrinsicSize() (graphics.Size, bool) {
	return v.negotiator.Size()
}

// BindAppearance keeps the bar's brightness in sync with the system
// appearance reported by native. The returned function unbinds.
func (v *BarView) BindAppearance() func() {
	return platform.Appearance.AddHandler(func(isDark bool) {
		if v.disposed {
			return
		}
		cfg := v.config
		cfg.IsDark = isDark
		v.Update(cfg)
	})
}

// configureRouting points the tap router at the current callbacks and item
// counts. Counts bound the accepted indices so stale native callbacks from
// before a shrinking rebuild are dropped.
func (v *BarView) configureRouting(cfg Config) {
	v.router.SetSection(bar.SectionLeading, len(cfg.Leading), cfg.OnLeadingTap)
	v.router.SetSection(bar.SectionMiddle, len(cfg.Middle), cfg.OnMiddleTap)
	v.router.SetSection(bar.SectionTrailing, len(cfg.Trailing), cfg.OnTrailingTap)
}

// handleTap routes a raw namespaced tag from native to the owning section's
// callback. Out-of-range tags are ignored.
func (v *BarView) handleTap(tag int) {
	if v.disposed {
		return
	}
	v.router.Dispatch(tag)
}

// requestIntrinsicSize issues the one-shot measurement round trip. The
// result is delivered on the UI thread when a dispatcher is registered.
func (v *BarView) requestIntrinsicSize(onSize func(graphics.Size)) {
	v.negotiator.Request(
		func() (graphics.Size, error) {
			result, err := v.registry.invoke(v.id, "getIntrinsicSize", nil)
			if err != nil {
				return graphics.Size{}, err
			}
			m := platform.ParseMap(result)
			width, _ := platform.ToFloat64(m["width"])
			height, _ := platform.ToFloat64(m["height"])
			return graphics.Size{Width: width, Height: height}, nil
		},
		func(size graphics.Size) {
			if onSize == nil {
				return
			}
			if !platform.Dispatch(func() { onSize(size) }) {
				onSize(size)
			}
		},
	)
}
