package main

import (
	"github.com/rs/zerolog"

	"github.com/go-drift/nativebar/pkg/platform"
)

// consoleBridge stands in for a real host embedding: it logs every outbound
// call and answers the handshake and measurement requests with canned values,
// so the demo runs without a native UI attached.
type consoleBridge struct {
	log zerolog.Logger
}

func (b *consoleBridge) InvokeMethod(channel, method string, args []byte) ([]byte, error) {
	decoded, err := platform.DefaultCodec.Decode(args)
	if err != nil {
		return nil, err
	}

	ev := b.log.Info().Str("channel", channel).Str("method", method)
	if m, ok := decoded.(map[string]any); ok {
		if id, ok := m["viewId"]; ok {
			ev = ev.Interface("viewId", id)
		}
	}
	ev.Msg("invoke")

	switch method {
	case "protocolVersion":
		return platform.DefaultCodec.Encode(platform.ProtocolVersion)
	case "getIntrinsicSize":
		return platform.DefaultCodec.Encode(map[string]any{
			"width":  390.0,
			"height": 64.0,
		})
	default:
		return platform.DefaultCodec.Encode(nil)
	}
}

func (b *consoleBridge) StartEventStream(channel string) error {
	b.log.Info().Str("channel", channel).Msg("start event stream")
	return nil
}

func (b *consoleBridge) StopEventStream(channel string) error {
	b.log.Info().Str("channel", channel).Msg("stop event stream")
	return nil
}
