package views

import "github.com/go-drift/nativebar/pkg/graphics"

// Bar type identifiers shared with the native side.
const (
	BarTypeToolbar                 = "toolbar"
	BarTypeNavigationBar           = "navigationBar"
	BarTypeTabBar                  = "tabBar"
	BarTypeScrollableNavigationBar = "scrollableNavigationBar"
)

// Toolbar mirrors a native bottom toolbar: leading, middle and trailing
// action sections rendered as capsule pill groups.
type Toolbar struct {
	*BarView
}

// NewToolbar creates a toolbar and sends its construction payload.
func NewToolbar(cfg Config) (*Toolbar, error) {
	v, err := newBarView(BarTypeToolbar, cfg)
	if err != nil {
		return nil, err
	}
	return &Toolbar{BarView: v}, nil
}

// SetStyle updates tint and transparency without touching the items.
func (t *Toolbar) SetStyle(tint *graphics.Color, transparent bool) {
	cfg := t.config
	cfg.Tint = tint
	cfg.Transparent = transparent
	t.Update(cfg)
}
