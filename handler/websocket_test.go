package handler

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

type recordingConn struct {
	mu       sync.Mutex
	messages []string
	fail     bool
	closed   bool
}

func (c *recordingConn) WriteMessage(_ int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	c.messages = append(c.messages, string(data))
	return nil
}

func (c *recordingConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// fakeSubscriptions stands in for redis: every started subscription hands its
// deliver func to the test and blocks until cancelled.
type fakeSubscriptions struct {
	started chan func([]byte)
	stopped chan uint
}

func newFakeSubscriptions() *fakeSubscriptions {
	return &fakeSubscriptions{started: make(chan func([]byte), 4), stopped: make(chan uint, 4)}
}

func (f *fakeSubscriptions) listen(ctx context.Context, kitchenId uint, deliver func([]byte)) error {
	f.started <- deliver
	<-ctx.Done()
	f.stopped <- kitchenId
	return nil
}

func waitFor[T any](t *testing.T, ch <-chan T, what string) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
	var zero T
	return zero
}

func TestKitchenHub(t *testing.T) {
	subs := newFakeSubscriptions()
	h := newKitchenHub(subs.listen)
	a, b, c := &recordingConn{}, &recordingConn{}, &recordingConn{}

	if n := h.add(1, "a", a); n != 1 {
		t.Fatalf("first client count = %d", n)
	}
	if n := h.add(1, "b", b); n != 2 {
		t.Fatalf("second client count = %d", n)
	}
	deliver := waitFor(t, subs.started, "kitchen subscription")

	h.add(2, "c", c)
	waitFor(t, subs.started, "second kitchen subscription")
	select {
	case <-subs.started:
		t.Fatalf("a kitchen was subscribed twice")
	default:
	}

	deliver([]byte(`{"type":"order.created"}`))
	if len(a.messages) != 1 || len(b.messages) != 1 || len(c.messages) != 0 {
		t.Fatalf("fan out: a=%v b=%v c=%v", a.messages, b.messages, c.messages)
	}

	h.remove(1, "a")
	if n := h.count(1); n != 1 {
		t.Fatalf("count after remove = %d", n)
	}
	h.remove(1, "b")
	if n := h.count(1); n != 0 {
		t.Fatalf("count after last remove = %d", n)
	}
	if got := waitFor(t, subs.stopped, "subscription stop"); got != 1 {
		t.Fatalf("stopped kitchen %d, want 1", got)
	}
	if n := h.count(2); n != 1 {
		t.Fatalf("other kitchen affected: %d", n)
	}
	h.remove(2, "c")
	waitFor(t, subs.stopped, "second subscription stop")
}

func TestKitchenHub_DropsBrokenConnections(t *testing.T) {
	subs := newFakeSubscriptions()
	h := newKitchenHub(subs.listen)
	healthy, broken := &recordingConn{}, &recordingConn{fail: true}

	h.add(7, "healthy", healthy)
	h.add(7, "broken", broken)
	deliver := waitFor(t, subs.started, "kitchen subscription")

	deliver([]byte("one"))
	deliver([]byte("two"))

	if !broken.closed {
		t.Fatalf("broken connection should be closed")
	}
	if n := h.count(7); n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
	if len(healthy.messages) != 2 {
		t.Fatalf("healthy got %v", healthy.messages)
	}

	// the reader of the broken connection still removes it; that must be harmless
	h.remove(7, "broken")
	h.remove(7, "healthy")
	waitFor(t, subs.stopped, "subscription stop")
}

func TestKitchenWebsocketUpgrade_RequiresUpgrade(t *testing.T) {
	app := fiber.New()
	app.Get("/ws", KitchenWebsocketUpgrade)

	resp, err := app.Test(httptest.NewRequest("GET", "/ws", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUpgradeRequired {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusUpgradeRequired)
	}
}

func TestPublicOrderURL(t *testing.T) {
	t.Setenv("PUBLIC_ORDER_URL", "https://order.example.com/")
	if got := publicOrderURL(); got != "https://order.example.com/" {
		t.Fatalf("publicOrderURL = %s", got)
	}
}
