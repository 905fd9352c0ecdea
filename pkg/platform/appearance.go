package platform

import (
	"sync"

	"github.com/go-drift/nativebar/pkg/errors"
)

// appearanceEventsChannel streams system appearance changes from native.
const appearanceEventsChannel = "nativebar/appearance/events"

// Appearance tracks the system appearance (dark/light) reported by native.
// Applications can observe it to resend bar brightness when the OS theme
// flips while the app is running.
var Appearance = &AppearanceService{
	events:   NewEventChannel(appearanceEventsChannel),
	handlers: make([]appearanceEntry, 0),
}

// AppearanceService manages system appearance events.
type AppearanceService struct {
	events   *EventChannel
	dark     bool
	handlers []appearanceEntry
	nextID   int
	mu       sync.RWMutex
}

// AppearanceHandler is called when the system appearance changes.
type AppearanceHandler func(isDark bool)

type appearanceEntry struct {
	id int
	fn AppearanceHandler
}

func init() {
	registerBuiltinInit(listenAppearance)
	listenAppearance()
}

// listenAppearance subscribes the service to its event channel.
func listenAppearance() {
	Appearance.events.Listen(EventHandler{
		OnEvent: func(data any) {
			m := ParseMap(data)
			if m == nil {
				errors.Report(&errors.BridgeError{
					Op:      "appearance.parseEvent",
					Kind:    errors.KindParsing,
					Channel: appearanceEventsChannel,
					Err: &errors.ParseError{
						Channel:  appearanceEventsChannel,
						DataType: "appearance",
						Got:      data,
					},
				})
				return
			}
			dark, ok := m["isDark"].(bool)
			if !ok {
				errors.Report(&errors.BridgeError{
					Op:      "appearance.parseEvent",
					Kind:    errors.KindParsing,
					Channel: appearanceEventsChannel,
					Err: &errors.ParseError{
						Channel:  appearanceEventsChannel,
						DataType: "appearance",
						Got:      data,
					},
				})
				return
			}
			Appearance.updateDark(dark)
		},
		OnError: func(err error) {
			errors.Report(&errors.BridgeError{
				Op:      "appearance.streamError",
				Kind:    errors.KindPlatform,
				Channel: appearanceEventsChannel,
				Err:     err,
			})
		},
	})
}

// IsDark returns the last appearance reported by native.
func (s *AppearanceService) IsDark() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark
}

// AddHandler registers a handler invoked on appearance changes.
// The returned function removes the handler.
func (s *AppearanceService) AddHandler(fn AppearanceHandler) func() {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.handlers = append(s.handlers, appearanceEntry{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		for i, e := range s.handlers {
			if e.id == id {
				s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
				break
			}
		}
		s.mu.Unlock()
	}
}

// updateDark records a new appearance and notifies handlers on change.
func (s *AppearanceService) updateDark(dark bool) {
	s.mu.Lock()
	if s.dark == dark {
		s.mu.Unlock()
		return
	}
	s.dark = dark
	handlers := make([]appearanceEntry, len(s.handlers))
	copy(handlers, s.handlers)
	s.mu.Unlock()

	for _, e := range handlers {
		e.fn(dark)
	}
}
