package views

import "github.com/go-drift/nativebar/pkg/bar"

// ScrollableNavigationBar mirrors a native navigation bar whose middle
// items scroll horizontally, optionally split into a left and right cluster.
type ScrollableNavigationBar struct {
	*BarView
}

// NewScrollableNavigationBar creates a scrollable navigation bar and sends
// its construction payload.
func NewScrollableNavigationBar(cfg Config) (*ScrollableNavigationBar, error) {
	v, err := newBarView(BarTypeScrollableNavigationBar, cfg)
	if err != nil {
		return nil, err
	}
	return &ScrollableNavigationBar{BarView: v}, nil
}

// SetSplit reconfigures the left/right clustering. Layout recomputation on
// the native side reads the most recently set items, so callers changing
// items and split together should do both in one Update.
func (s *ScrollableNavigationBar) SetSplit(split bool, rightCount int, spacing float64) {
	cfg := s.config
	cfg.Layout = bar.LayoutSpec{Split: split, RightCount: rightCount, SplitSpacing: spacing}
	s.Update(cfg)
}

// Select moves the selection within the scrollable items.
func (s *ScrollableNavigationBar) Select(index int) {
	cfg := s.config
	cfg.SelectedIndex = index
	s.Update(cfg)
}
