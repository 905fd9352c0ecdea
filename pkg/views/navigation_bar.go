package views

// NavigationBar mirrors a native top navigation bar. The title renders only
// while the middle section is empty; middle items take precedence.
type NavigationBar struct {
	*BarView
}

// NewNavigationBar creates a navigation bar and sends its construction
// payload.
func NewNavigationBar(cfg Config) (*NavigationBar, error) {
	v, err := newBarView(BarTypeNavigationBar, cfg)
	if err != nil {
		return nil, err
	}
	return &NavigationBar{BarView: v}, nil
}

// SetTitle updates the title without touching the rest of the
// configuration.
func (n *NavigationBar) SetTitle(title string) {
	cfg := n.config
	cfg.Title = title
	n.Update(cfg)
}
