package mediator

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/capitan"
)

func newDeveloper(t *testing.T, name string, m *Mediator) *Developer {
	t.Helper()
	d, err := NewDeveloper(name, m)
	require.NoError(t, err)
	return d
}

func TestRegister(t *testing.T) {
	m := New()
	alice := newDeveloper(t, "alice", m)
	newDeveloper(t, "bob", m)

	// duplicate names are ignored
	m.Register(&Developer{name: "alice", mediator: m})
	m.Register(nil)

	assert.Equal(t, []string{"alice", "bob"}, m.Names())
	assert.True(t, m.Has("alice"))

	m.Unregister("alice")
	m.Unregister("missing")
	assert.Equal(t, []string{"bob"}, m.Names())
	assert.False(t, m.Has("alice"))

	m.Register(alice)
	assert.Equal(t, []string{"bob", "alice"}, m.Names())
}

func TestNewDeveloperNameTaken(t *testing.T) {
	m := New()
	first := newDeveloper(t, "alice", m)

	second, err := NewDeveloper("alice", m)
	require.Error(t, err)
	assert.Nil(t, second)
	assert.True(t, errors.Is(err, ErrNameTaken))
	assert.Contains(t, err.Error(), `"alice"`)

	// the first registration still receives
	bob := newDeveloper(t, "bob", m)
	require.NoError(t, bob.Send("alice", "ping"))
	assert.Equal(t, []Message{{From: "bob", Text: "ping"}}, first.Inbox())
}

func TestSend(t *testing.T) {
	m := New()
	alice := newDeveloper(t, "alice", m)
	bob := newDeveloper(t, "bob", m)

	require.NoError(t, alice.Send("bob", "hi bob"))
	require.NoError(t, bob.Send("alice", "hi alice"))

	assert.Equal(t, []Message{{From: "alice", Text: "hi bob"}}, bob.Inbox())
	assert.Equal(t, []Message{{From: "bob", Text: "hi alice"}}, alice.Inbox())
}

func TestSendUnknownColleague(t *testing.T) {
	m := New()
	alice := newDeveloper(t, "alice", m)

	err := alice.Send("carol", "anyone there?")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownColleague))
	assert.Contains(t, err.Error(), `"carol"`)
	assert.Empty(t, alice.Inbox())
}

func TestBroadcast(t *testing.T) {
	m := New()
	alice := newDeveloper(t, "alice", m)
	bob := newDeveloper(t, "bob", m)
	carol := newDeveloper(t, "carol", m)

	m.Broadcast(alice, "standup")

	assert.Empty(t, alice.Inbox())
	assert.Equal(t, []Message{{From: "alice", Text: "standup"}}, bob.Inbox())
	assert.Equal(t, []Message{{From: "alice", Text: "standup"}}, carol.Inbox())
}

func TestMessageDeliveredSignal(t *testing.T) {
	type delivery struct{ from, to string }
	got := make(chan delivery, 16)

	listener := capitan.Hook(MessageDelivered, func(_ context.Context, e *capitan.Event) {
		from, _ := KeyFrom.From(e)
		to, _ := KeyTo.From(e)
		got <- delivery{from: from, to: to}
	})
	defer listener.Close()

	m := New()
	sender := newDeveloper(t, "signal-sender", m)
	newDeveloper(t, "signal-receiver", m)
	require.NoError(t, sender.Send("signal-receiver", "hello"))

	want := delivery{from: "signal-sender", to: "signal-receiver"}
	timeout := time.After(time.Second)
	for {
		select {
		case d := <-got:
			if d == want {
				return
			}
		case <-timeout:
			t.Fatalf("expected %+v to be emitted", want)
		}
	}
}
