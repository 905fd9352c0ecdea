// Package views exposes the bridged bar kinds: Toolbar, NavigationBar,
// TabBar and ScrollableNavigationBar. Each instance mirrors its declarative
// configuration onto a native bar primitive through the platform channel,
// using the engine in pkg/bar for grouping, alignment, tap routing and
// minimal diffed updates.
package views

import (
	stderrors "errors"
	"sync"
	"sync/atomic"

	"github.com/go-drift/nativebar/pkg/bar"
	"github.com/go-drift/nativebar/pkg/errors"
	"github.com/go-drift/nativebar/pkg/platform"
)

// BarsChannelName carries all bar traffic, tagged per instance with viewId.
// Host embeddings register their native handler under this name.
const BarsChannelName = "nativebar/bars"

// BarRegistry manages the live bar instances and owns the shared channel.
type BarRegistry struct {
	bars    map[int64]*BarView
	nextID  atomic.Int64
	mu      sync.RWMutex
	channel *platform.MethodChannel
}

var (
	globalRegistry *BarRegistry
	registryOnce   sync.Once
)

// Registry returns the global bar registry.
func Registry() *BarRegistry {
	registryOnce.Do(func() {
		globalRegistry = &BarRegistry{
			bars:    make(map[int64]*BarView),
			channel: platform.NewMethodChannel(BarsChannelName),
		}
		globalRegistry.channel.SetHandler(globalRegistry.handleMethodCall)
		platform.RegisterResetHook(globalRegistry.reset)
	})
	return globalRegistry
}

// reset clears all instances; invoked by platform.ResetForTest.
func (r *BarRegistry) reset() {
	r.mu.Lock()
	r.bars = make(map[int64]*BarView)
	r.mu.Unlock()
	r.nextID.Store(0)
}

// create performs the protocol handshake if still pending, sends the
// construction payload and registers the instance for inbound dispatch.
func (r *BarRegistry) create(v *BarView, barType string, snap bar.Snapshot, attributes map[string]any) error {
	if err := platform.VerifyProtocol(); err != nil {
		return err
	}

	id := r.nextID.Add(1)
	payload := snap.ConstructionPayload()
	payload["viewId"] = id
	payload["barType"] = barType
	if len(attributes) > 0 {
		payload["attributes"] = attributes
	}

	if _, err := r.channel.Invoke("create", payload); err != nil {
		errors.Report(&errors.BridgeError{
			Op:      "views.BarRegistry.create",
			Kind:    errors.KindPlatform,
			Channel: BarsChannelName,
			Err:     err,
		})
		return err
	}

	v.id = id
	r.mu.Lock()
	r.bars[id] = v
	r.mu.Unlock()
	return nil
}

// dispose unregisters the instance and tells native to tear the bar down.
// Once removed from the map, no further inbound calls reach the instance.
func (r *BarRegistry) dispose(id int64) {
	r.mu.Lock()
	_, ok := r.bars[id]
	if ok {
		delete(r.bars, id)
	}
	r.mu.Unlock()

	if ok {
		r.channel.Invoke("dispose", map[string]any{"viewId": id})
	}
}

// invoke sends one update operation for a bar instance. An unattached
// bridge is a silent no-op: a future rebuild resends the delta once the
// channel exists. Other failures are reported.
func (r *BarRegistry) invoke(id int64, method string, args map[string]any) (any, error) {
	invokeArgs := make(map[string]any, len(args)+1)
	for k, v := range args {
		invokeArgs[k] = v
	}
	invokeArgs["viewId"] = id

	result, err := r.channel.Invoke(method, invokeArgs)
	if err != nil && !stderrors.Is(err, platform.ErrPlatformUnavailable) {
		errors.Report(&errors.BridgeError{
			Op:      "views.BarRegistry.invoke",
			Kind:    errors.KindPlatform,
			Channel: BarsChannelName,
			Err:     err,
		})
	}
	return result, err
}

// get returns a live instance by ID, or nil.
func (r *BarRegistry) get(id int64) *BarView {
	r.mu.RLock()
	v := r.bars[id]
	r.mu.RUnlock()
	return v
}

// handleMethodCall processes inbound calls from the native side.
func (r *BarRegistry) handleMethodCall(method string, args any) (any, error) {
	switch method {
	case "tapped":
		m := platform.ParseMap(args)
		id, okID := platform.ToInt64(m["viewId"])
		tag, okTag := platform.ToInt(m["tag"])
		if !okID || !okTag {
			errors.Report(&errors.BridgeError{
				Op:      "views.BarRegistry.handleMethodCall",
				Kind:    errors.KindParsing,
				Channel: BarsChannelName,
				Err: &errors.ParseError{
					Channel:  BarsChannelName,
					DataType: "tap event",
					Got:      args,
				},
			})
			return nil, nil
		}
		if v := r.get(id); v != nil {
			v.handleTap(tag)
		}
		return nil, nil

	default:
		return nil, platform.ErrMethodNotFound
	}
}
