package bar

import (
	"sync"

	"github.com/go-drift/nativebar/pkg/graphics"
)

// SizeNegotiator performs the one-shot intrinsic size measurement after a
// bar is created. The bar renders at a provisional default size until the
// native response lands; the result is cached for the life of the instance.
type SizeNegotiator struct {
	mu        sync.Mutex
	requested bool
	resolved  bool
	closed    bool
	size      graphics.Size
}

// Request issues the measurement round trip. fetch runs on its own goroutine
// so the rebuild pass never blocks on the native side; deliver receives the
// measured size once, and again synchronously on repeated Request calls once
// the size is cached. A response arriving after Close is dropped.
func (n *SizeNegotiator) Request(fetch func() (graphics.Size, error), deliver func(graphics.Size)) {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	if n.resolved {
		size := n.size
		n.mu.Unlock()
		if deliver != nil {
			deliver(size)
		}
		return
	}
	if n.requested {
		n.mu.Unlock()
		return
	}
	n.requested = true
	n.mu.Unlock()

	go func() {
		size, err := fetch()
		if err != nil || size.IsEmpty() {
			// The bar keeps its provisional size; nothing to deliver.
			return
		}
		n.mu.Lock()
		if n.closed {
			n.mu.Unlock()
			return
		}
		n.size = size
		n.resolved = true
		n.mu.Unlock()
		if deliver != nil {
			deliver(size)
		}
	}()
}

// Size returns the cached intrinsic size and whether it has resolved.
func (n *SizeNegotiator) Size() (graphics.Size, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.size, n.resolved
}

// Close cancels the negotiation at teardown. An in-flight response is
// ignored.
func (n *SizeNegotiator) Close() {
	n.mu.Lock()
	n.closed = true
	n.mu.Unlock()
}
