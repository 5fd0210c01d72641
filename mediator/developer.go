package mediator

import (
	"slices"

	"github.com/pkg/errors"
)

// Message is a message as seen by its receiver.
type Message struct {
	From string
	Text string
}

// Developer is a Colleague that keeps every message it receives.
type Developer struct {
	name     string
	mediator *Mediator
	inbox    []Message
}

// NewDeveloper creates a developer and registers it with m. It returns ErrNameTaken if m already
// has a colleague with that name, since the new developer could never receive anything.
func NewDeveloper(name string, m *Mediator) (*Developer, error) {
	if m.Has(name) {
		return nil, errors.Wrapf(ErrNameTaken, "register %q", name)
	}
	d := &Developer{
		name:     name,
		mediator: m,
	}
	m.Register(d)
	return d, nil
}

// Name returns the developer's name.
func (d *Developer) Name() string {
	return d.name
}

// Send asks the mediator to deliver message to the colleague named to.
func (d *Developer) Send(to, message string) error {
	return d.mediator.Send(d, to, message)
}

// Receive appends the message to the inbox.
func (d *Developer) Receive(from, message string) {
	d.inbox = append(d.inbox, Message{From: from, Text: message})
}

// Inbox returns the received messages, oldest first.
func (d *Developer) Inbox() []Message {
	return slices.Clone(d.inbox)
}
