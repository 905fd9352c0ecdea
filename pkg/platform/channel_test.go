package platform

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
)

// recordingBridge captures native method invocations for assertions and
// returns canned responses per method name.
type recordingBridge struct {
	mu        sync.Mutex
	calls     []recordedCall
	responses map[string]any
}

type recordedCall struct {
	channel string
	method  string
	args    any // JSON-decoded
}

func (b *recordingBridge) InvokeMethod(channel, method string, argsData []byte) ([]byte, error) {
	var args any
	if len(argsData) > 0 {
		json.Unmarshal(argsData, &args)
	}
	b.mu.Lock()
	b.calls = append(b.calls, recordedCall{channel: channel, method: method, args: args})
	resp := b.responses[method]
	b.mu.Unlock()
	return DefaultCodec.Encode(resp)
}

func (b *recordingBridge) StartEventStream(string) error { return nil }
func (b *recordingBridge) StopEventStream(string) error  { return nil }

func (b *recordingBridge) callsFor(method string) []recordedCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []recordedCall
	for _, c := range b.calls {
		if c.method == method {
			out = append(out, c)
		}
	}
	return out
}

func installRecordingBridge(t *testing.T) *recordingBridge {
	t.Helper()
	bridge := &recordingBridge{responses: map[string]any{}}
	SetupTestBridge(t.Cleanup)
	SetNativeBridge(bridge)
	return bridge
}

func TestInvokeWithoutBridge(t *testing.T) {
	SetupTestBridge(t.Cleanup)
	SetNativeBridge(nil)

	ch := NewMethodChannel("test/nobridge")
	if _, err := ch.Invoke("ping", nil); !errors.Is(err, ErrPlatformUnavailable) {
		t.Errorf("Invoke without bridge = %v, want ErrPlatformUnavailable", err)
	}
}

func TestInvokeEncodesArgs(t *testing.T) {
	bridge := installRecordingBridge(t)

	ch := NewMethodChannel("test/invoke")
	if _, err := ch.Invoke("setTitle", map[string]any{"title": "Inbox"}); err != nil {
		t.Fatalf("Invoke: %v", err)
	}

	calls := bridge.callsFor("setTitle")
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].channel != "test/invoke" {
		t.Errorf("channel = %q", calls[0].channel)
	}
	args := calls[0].args.(map[string]any)
	if args["title"] != "Inbox" {
		t.Errorf("title = %v", args["title"])
	}
}

func TestHandleMethodCallRoutesToHandler(t *testing.T) {
	SetupTestBridge(t.Cleanup)

	ch := NewMethodChannel("test/inbound")
	var gotMethod string
	var gotArgs any
	ch.SetHandler(func(method string, args any) (any, error) {
		gotMethod = method
		gotArgs = args
		return map[string]any{"ok": true}, nil
	})

	payload, _ := DefaultCodec.Encode(map[string]any{"tag": 2001})
	resultData, err := HandleMethodCall("test/inbound", "tapped", payload)
	if err != nil {
		t.Fatalf("HandleMethodCall: %v", err)
	}
	if gotMethod != "tapped" {
		t.Errorf("method = %q", gotMethod)
	}
	if tag, ok := ToInt(ParseMap(gotArgs)["tag"]); !ok || tag != 2001 {
		t.Errorf("tag = %v", gotArgs)
	}

	result, _ := DefaultCodec.Decode(resultData)
	if ParseMap(result)["ok"] != true {
		t.Errorf("result = %v", result)
	}
}

func TestHandleMethodCallUnknownChannel(t *testing.T) {
	SetupTestBridge(t.Cleanup)

	if _, err := HandleMethodCall("test/missing-channel", "x", nil); !errors.Is(err, ErrChannelNotFound) {
		t.Errorf("err = %v, want ErrChannelNotFound", err)
	}
}

func TestHandleMethodCallNoHandler(t *testing.T) {
	SetupTestBridge(t.Cleanup)

	NewMethodChannel("test/nohandler")
	if _, err := HandleMethodCall("test/nohandler", "x", nil); !errors.Is(err, ErrMethodNotFound) {
		t.Errorf("err = %v, want ErrMethodNotFound", err)
	}
}

func TestEventChannelDispatch(t *testing.T) {
	SetupTestBridge(t.Cleanup)

	ch := NewEventChannel("test/events")
	var got []any
	sub := ch.Listen(EventHandler{OnEvent: func(data any) { got = append(got, data) }})

	payload, _ := DefaultCodec.Encode(map[string]any{"n": 1})
	if err := HandleEvent("test/events", payload); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}

	sub.Cancel()
	HandleEvent("test/events", payload)
	if len(got) != 1 {
		t.Errorf("canceled subscription still received events")
	}
}

func TestEventChannelDone(t *testing.T) {
	SetupTestBridge(t.Cleanup)

	ch := NewEventChannel("test/events-done")
	done := false
	sub := ch.Listen(EventHandler{OnDone: func() { done = true }})

	if err := HandleEventDone("test/events-done"); err != nil {
		t.Fatalf("HandleEventDone: %v", err)
	}
	if !done {
		t.Error("OnDone not called")
	}
	if !sub.IsCanceled() {
		t.Error("subscription should be canceled after done")
	}
}
