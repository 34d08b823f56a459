package ws

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Wyydra/settingsync/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	id      string
	events  chan domain.Event
	closed  chan struct{}
	sendErr error
}

func newFakeClient(id string) *fakeClient {
	return &fakeClient{
		id:     id,
		events: make(chan domain.Event, 16),
		closed: make(chan struct{}, 1),
	}
}

func (c *fakeClient) ID() string { return c.id }

func (c *fakeClient) SendEvent(ev domain.Event) error {
	if c.sendErr != nil {
		return c.sendErr
	}
	c.events <- ev
	return nil
}

func (c *fakeClient) Close() error {
	select {
	case c.closed <- struct{}{}:
	default:
	}
	return nil
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub()
	go h.Run()
	t.Cleanup(h.Stop)
	return h
}

func TestHubBroadcastsEvents(t *testing.T) {
	h := startHub(t)
	a, b := newFakeClient("a"), newFakeClient("b")
	h.Register(a)
	h.Register(b)

	ev := domain.AudioOnlySet{Value: true, FromSettings: true}
	require.NoError(t, h.Publish(context.Background(), ev))

	for _, c := range []*fakeClient{a, b} {
		select {
		case got := <-c.events:
			assert.Equal(t, ev, got)
		case <-time.After(time.Second):
			t.Fatalf("client %s got no event", c.id)
		}
	}
}

func TestHubDropsFailingClient(t *testing.T) {
	h := startHub(t)
	bad := newFakeClient("bad")
	bad.sendErr = errors.New("broken pipe")
	h.Register(bad)

	require.NoError(t, h.Publish(context.Background(), domain.LocationSet{}))

	select {
	case <-bad.closed:
	case <-time.After(time.Second):
		t.Fatal("failing client was not closed")
	}
	assert.Eventually(t, func() bool { return h.Count() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHubUnregister(t *testing.T) {
	h := startHub(t)
	c := newFakeClient("c")
	h.Register(c)
	h.Unregister(c)

	select {
	case <-c.closed:
	case <-time.After(time.Second):
		t.Fatal("client was not closed on unregister")
	}
	assert.Equal(t, 0, h.Count())
}

func TestHubRegisterAfterStop(t *testing.T) {
	h := NewHub()
	h.Stop()

	c := newFakeClient("late")
	h.Register(c)

	select {
	case <-c.closed:
	default:
		t.Fatal("late client was not closed")
	}
}
