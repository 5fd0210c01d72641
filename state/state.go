// Package state lets a Context change its behaviour by swapping the State it delegates to.
package state

import "log/slog"

// State handles a request on behalf of a Context and may move it to another state.
type State interface {
	Name() string
	Handle(ctx *Context)
}

// StateA moves the context to StateB.
type StateA struct{}

// Name returns "A".
func (StateA) Name() string { return "A" }

// Handle does the work of state A and switches to StateB.
func (StateA) Handle(ctx *Context) {
	ctx.logger.Info("doing something in state A, done, change state to B")
	ctx.Change(StateB{})
}

// StateB moves the context to StateA.
type StateB struct{}

// Name returns "B".
func (StateB) Name() string { return "B" }

// Handle does the work of state B and switches to StateA.
func (StateB) Handle(ctx *Context) {
	ctx.logger.Info("doing something in state B, done, change state to A")
	ctx.Change(StateA{})
}

// Context forwards every request to its current state. It starts in StateA.
type Context struct {
	state  State
	logger *slog.Logger
}

// NewContext creates a Context in StateA.
func NewContext() *Context {
	return &Context{
		state:  StateA{},
		logger: slog.New(slog.DiscardHandler),
	}
}

// State returns the current state.
func (c *Context) State() State {
	return c.state
}

// Change switches to s. A nil state is ignored.
func (c *Context) Change(s State) {
	if s == nil {
		return
	}
	c.logger.Debug("state changed", "from", c.state.Name(), "to", s.Name())
	c.state = s
}

// Request lets the current state handle one request.
func (c *Context) Request() {
	c.state.Handle(c)
}

// SetLogger sets the structured logger for the context.
func (c *Context) SetLogger(logger *slog.Logger) {
	c.logger = logger
}
