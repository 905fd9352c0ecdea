// The showcase wires the bar library to a console bridge and walks through
// the full lifecycle: construction, targeted updates, tap routing, appearance
// changes and teardown. Run it with "go run .".
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-drift/nativebar/pkg/bar"
	"github.com/go-drift/nativebar/pkg/graphics"
	"github.com/go-drift/nativebar/pkg/platform"
	"github.com/go-drift/nativebar/pkg/views"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	platform.SetNativeBridge(&consoleBridge{log: log})
	platform.RegisterDispatch(func(cb func()) { cb() })

	toolbar, err := views.NewToolbar(views.Config{
		Leading: []bar.ActionItem{
			bar.IconButton("pencil"),
			bar.FixedSpace(20),
			bar.IconButton("square.and.arrow.up"),
		},
		Trailing: []bar.ActionItem{bar.IconButton("gear")},
		OnLeadingTap: func(index int) {
			log.Info().Int("index", index).Msg("leading tap")
		},
		OnTrailingTap: func(index int) {
			log.Info().Int("index", index).Msg("trailing tap")
		},
		OnIntrinsicSize: func(size graphics.Size) {
			log.Info().Float64("width", size.Width).Float64("height", size.Height).Msg("measured")
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("toolbar construction failed")
	}
	unbind := toolbar.BindAppearance()

	// Simulate the native side tapping the gear button.
	simulateTap(log, toolbar.ViewID(), bar.EncodeIndex(bar.SectionTrailing, 0))

	// Restyle: only a setStyle operation travels.
	tint := graphics.RGB(0xFF, 0x45, 0x00)
	toolbar.SetStyle(&tint, false)

	// Simulate the OS switching to dark mode.
	simulateAppearance(log, true)

	// The measurement round trip is asynchronous; give it a beat.
	time.Sleep(50 * time.Millisecond)
	if size, ok := toolbar.IntrinsicSize(); ok {
		log.Info().Float64("height", size.Height).Msg("intrinsic size cached")
	}

	unbind()
	toolbar.Dispose()
}

// simulateTap injects a tap the way a host embedding delivers it.
func simulateTap(log zerolog.Logger, viewID int64, tag int) {
	data, err := platform.DefaultCodec.Encode(map[string]any{
		"viewId": viewID,
		"tag":    tag,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("encode tap")
	}
	if _, err := platform.HandleMethodCall(views.BarsChannelName, "tapped", data); err != nil {
		log.Error().Err(err).Msg("tap dispatch failed")
	}
}

// simulateAppearance injects an appearance event.
func simulateAppearance(log zerolog.Logger, isDark bool) {
	data, err := platform.DefaultCodec.Encode(map[string]any{"isDark": isDark})
	if err != nil {
		log.Fatal().Err(err).Msg("encode appearance")
	}
	if err := platform.HandleEvent("nativebar/appearance/events", data); err != nil {
		log.Error().Err(err).Msg("appearance dispatch failed")
	}
}
