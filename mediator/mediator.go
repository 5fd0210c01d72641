// Package mediator routes messages between colleagues that never reference each other directly.
package mediator

import (
	"context"
	"log/slog"
	"slices"

	"github.com/pkg/errors"
	"github.com/zoobzio/capitan"
)

var (
	ErrUnknownColleague = errors.New("no colleague registered with this name")
	ErrNameTaken        = errors.New("a colleague is already registered with this name")
)

// Colleague is a participant that talks to others only through a Mediator.
type Colleague interface {
	Name() string
	Receive(from, message string)
}

// Mediator keeps the registered colleagues, unique by name, in registration order.
// It is not safe for concurrent use.
type Mediator struct {
	colleagues []Colleague
	logger     *slog.Logger
}

// New creates an empty Mediator.
func New() *Mediator {
	return &Mediator{
		colleagues: make([]Colleague, 0),
		logger:     slog.New(slog.DiscardHandler),
	}
}

// Register adds a colleague. Registering a name twice does nothing, and so does a nil interface
// value or an empty name. A typed nil pointer panics when its name is read.
func (m *Mediator) Register(c Colleague) {
	if c == nil || c.Name() == "" || m.indexOf(c.Name()) >= 0 {
		return
	}
	m.colleagues = append(m.colleagues, c)
	m.logger.Info("registered colleague", "name", c.Name())
}

// Unregister removes the colleague with the given name, if any.
func (m *Mediator) Unregister(name string) {
	i := m.indexOf(name)
	if i < 0 {
		return
	}
	m.colleagues = slices.Delete(m.colleagues, i, i+1)
	m.logger.Info("unregistered colleague", "name", name)
}

// Send delivers message from sender to the colleague named to.
func (m *Mediator) Send(from Colleague, to, message string) error {
	i := m.indexOf(to)
	if i < 0 {
		return errors.Wrapf(ErrUnknownColleague, "send to %q", to)
	}
	m.deliver(senderName(from), m.colleagues[i], message)
	return nil
}

// Broadcast delivers message to every registered colleague except the sender.
func (m *Mediator) Broadcast(from Colleague, message string) {
	name := senderName(from)
	for _, c := range slices.Clone(m.colleagues) {
		if c.Name() == name {
			continue
		}
		m.deliver(name, c, message)
	}
}

// Has reports whether a colleague with the given name is registered.
func (m *Mediator) Has(name string) bool {
	return m.indexOf(name) >= 0
}

// Names returns the registered colleague names in registration order.
func (m *Mediator) Names() []string {
	names := make([]string, 0, len(m.colleagues))
	for _, c := range m.colleagues {
		names = append(names, c.Name())
	}
	return names
}

// SetLogger sets the structured logger for the mediator.
func (m *Mediator) SetLogger(logger *slog.Logger) {
	m.logger = logger
}

func (m *Mediator) deliver(from string, to Colleague, message string) {
	m.logger.Debug("-->", "from", from, "to", to.Name(), "message", message)
	to.Receive(from, message)
	capitan.Emit(context.Background(), MessageDelivered,
		KeyFrom.Field(from),
		KeyTo.Field(to.Name()),
	)
}

func (m *Mediator) indexOf(name string) int {
	return slices.IndexFunc(m.colleagues, func(c Colleague) bool {
		return c.Name() == name
	})
}

func senderName(c Colleague) string {
	if c == nil {
		return ""
	}
	return c.Name()
}
