package views_test

import (
	"github.com/go-drift/nativebar/pkg/bar"
	"github.com/go-drift/nativebar/pkg/graphics"
	"github.com/go-drift/nativebar/pkg/views"
)

// This example builds a bottom toolbar with a grouped leading section and a
// single trailing button. The fixed spacer widens the gap between the two
// leading buttons without breaking them into separate pills.
func ExampleNewToolbar() {
	toolbar, err := views.NewToolbar(views.Config{
		Leading: []bar.ActionItem{
			bar.IconButton("pencil"),
			bar.FixedSpace(20),
			bar.IconButton("square.and.arrow.up"),
		},
		Trailing: []bar.ActionItem{bar.IconButton("gear")},
		OnLeadingTap: func(index int) {
			// index 0 is the pencil, index 2 the share button; the spacer at
			// index 1 never taps.
		},
		OnTrailingTap: func(index int) {
			// open settings
		},
	})
	if err != nil {
		return
	}
	defer toolbar.Dispose()
}

// This example shows the declarative update flow: build a fresh Config and
// hand it to Update. Only the fields that changed travel to the native side.
func ExampleBarView_Update() {
	nav, err := views.NewNavigationBar(views.Config{Title: "Inbox"})
	if err != nil {
		return
	}
	defer nav.Dispose()

	tint := graphics.RGB(0xFF, 0x45, 0x00)
	cfg := nav.Config()
	cfg.Title = "Archive"
	cfg.Tint = &tint
	nav.Update(cfg)
}

// This example keeps a bar's brightness in sync with the OS appearance.
func ExampleBarView_BindAppearance() {
	tabs, err := views.NewTabBar(views.Config{
		Middle: []bar.ActionItem{
			bar.LabelButton("Home"),
			bar.LabelButton("Search"),
		},
	})
	if err != nil {
		return
	}
	defer tabs.Dispose()

	unbind := tabs.BindAppearance()
	defer unbind()
}
