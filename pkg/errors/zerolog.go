package errors

import "github.com/rs/zerolog"

// ZerologHandler is an ErrorHandler that forwards errors to a zerolog logger.
// Applications that already route logs through zerolog can install it with
// SetHandler to keep bridge errors in the same stream:
//
//	errors.SetHandler(errors.NewZerologHandler(log.Logger))
type ZerologHandler struct {
	logger zerolog.Logger
}

// NewZerologHandler creates a handler writing to the given logger.
func NewZerologHandler(logger zerolog.Logger) *ZerologHandler {
	return &ZerologHandler{logger: logger}
}

// HandleError logs a BridgeError as a structured event.
func (h *ZerologHandler) HandleError(err *BridgeError) {
	if err == nil {
		return
	}
	ev := h.logger.Error().
		Str("op", err.Op).
		Stringer("kind", err.Kind).
		Time("at", err.Timestamp)
	if err.Channel != "" {
		ev = ev.Str("channel", err.Channel)
	}
	ev.Err(err.Err).Msg("bridge error")
}

// HandlePanic logs a recovered panic as a structured event.
func (h *ZerologHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.logger.Error().
		Str("op", err.Op).
		Interface("value", err.Value).
		Str("stack", err.StackTrace).
		Msg("recovered panic")
}
