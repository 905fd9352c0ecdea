package views

// TabBar mirrors a native tab bar. Tabs live in the middle section; the
// selected one is tracked by SelectedIndex.
type TabBar struct {
	*BarView
}

// NewTabBar creates a tab bar and sends its construction payload.
func NewTabBar(cfg Config) (*TabBar, error) {
	v, err := newBarView(BarTypeTabBar, cfg)
	if err != nil {
		return nil, err
	}
	return &TabBar{BarView: v}, nil
}

// SelectTab moves the selection. A selection-only change travels as a
// single setLayout operation.
func (t *TabBar) SelectTab(index int) {
	cfg := t.config
	cfg.SelectedIndex = index
	t.Update(cfg)
}
