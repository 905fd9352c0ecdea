package bar

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-drift/nativebar/pkg/graphics"
)

func TestNegotiatorResolvesOnce(t *testing.T) {
	var n SizeNegotiator
	var fetches atomic.Int32

	fetch := func() (graphics.Size, error) {
		fetches.Add(1)
		return graphics.Size{Width: 320, Height: 44}, nil
	}

	delivered := make(chan graphics.Size, 2)
	n.Request(fetch, func(s graphics.Size) { delivered <- s })

	select {
	case size := <-delivered:
		if size.Height != 44 {
			t.Errorf("delivered height = %v", size.Height)
		}
	case <-time.After(time.Second):
		t.Fatal("size never delivered")
	}

	// A second request serves the cache synchronously without refetching.
	n.Request(fetch, func(s graphics.Size) { delivered <- s })
	select {
	case size := <-delivered:
		if size.Width != 320 {
			t.Errorf("cached width = %v", size.Width)
		}
	case <-time.After(time.Second):
		t.Fatal("cached size never delivered")
	}
	if fetches.Load() != 1 {
		t.Errorf("fetch called %d times, want 1", fetches.Load())
	}

	if size, ok := n.Size(); !ok || size.Width != 320 {
		t.Errorf("Size() = %v, %v", size, ok)
	}
}

func TestNegotiatorFetchErrorKeepsProvisionalSize(t *testing.T) {
	var n SizeNegotiator
	done := make(chan struct{})
	n.Request(func() (graphics.Size, error) {
		defer close(done)
		return graphics.Size{}, errors.New("native gone")
	}, func(graphics.Size) {
		t.Error("deliver must not run on fetch error")
	})

	<-done
	time.Sleep(10 * time.Millisecond)
	if _, ok := n.Size(); ok {
		t.Error("size should not resolve after a failed fetch")
	}
}

func TestNegotiatorClosedDropsResponse(t *testing.T) {
	var n SizeNegotiator
	release := make(chan struct{})

	n.Request(func() (graphics.Size, error) {
		<-release
		return graphics.Size{Width: 100, Height: 40}, nil
	}, func(graphics.Size) {
		t.Error("deliver must not run after Close")
	})

	n.Close()
	close(release)
	time.Sleep(20 * time.Millisecond)

	if _, ok := n.Size(); ok {
		t.Error("closed negotiator must ignore the in-flight response")
	}
}

func TestNegotiatorRequestAfterClose(t *testing.T) {
	var n SizeNegotiator
	n.Close()
	n.Request(func() (graphics.Size, error) {
		t.Error("fetch must not run after Close")
		return graphics.Size{}, nil
	}, nil)
	time.Sleep(10 * time.Millisecond)
}

func TestNegotiatorEmptySizeIgnored(t *testing.T) {
	var n SizeNegotiator
	done := make(chan struct{})
	n.Request(func() (graphics.Size, error) {
		defer close(done)
		return graphics.Size{}, nil
	}, func(graphics.Size) {
		t.Error("deliver must not run for an empty measurement")
	})
	<-done
	time.Sleep(10 * time.Millisecond)
	if _, ok := n.Size(); ok {
		t.Error("empty size should not resolve")
	}
}
