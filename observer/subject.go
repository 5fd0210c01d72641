package observer

import (
	"context"
	"log/slog"
	"slices"

	"github.com/zoobzio/capitan"
)

// Subject holds a state value and the observers that want to hear about it. This is based on
// the documentation here:
// https://refactoring.guru/design-patterns/observer
//
// A Subject is not safe for concurrent use.
type Subject[T any] struct {

	// current observable state. Changing it does not notify anyone.
	state T

	// registered observers in attachment order. No two entries share an ID.
	observers []Observer[T]

	// structured logger for registry and broadcast events.
	logger *slog.Logger
}

// NewSubject creates a Subject with the zero state and no observers.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{
		observers: make([]Observer[T], 0),
		logger:    slog.New(slog.DiscardHandler),
	}
}

// State returns the current state.
func (s *Subject[T]) State() T {
	return s.state
}

// SetState replaces the current state. Call Notify to tell the observers.
func (s *Subject[T]) SetState(v T) {
	s.state = v
}

// Attach registers an observer. If an observer with the same ID is already registered the call
// does nothing. A nil interface value or an observer with an empty ID is ignored; a typed nil
// pointer is the caller's fault and panics when its ID is read.
func (s *Subject[T]) Attach(o Observer[T]) {
	if o == nil || o.ID() == "" {
		s.logger.Warn("ignoring observer without an id")
		capitan.Emit(context.Background(), ObserverIgnored,
			KeyReason.Field(reasonEmptyID),
		)
		return
	}

	id := o.ID()
	if s.indexOf(id) >= 0 {
		s.logger.Debug("observer already attached", "id", id)
		capitan.Emit(context.Background(), ObserverIgnored,
			KeyObserverID.Field(id),
			KeyReason.Field(reasonDuplicate),
		)
		return
	}

	s.observers = append(s.observers, o)
	s.logger.Info("attached observer", "id", id)
	capitan.Emit(context.Background(), ObserverAttached,
		KeyObserverID.Field(id),
		KeyObserverCount.Field(len(s.observers)),
	)
}

// Detach removes the registered observer whose ID matches o's ID. The match is by ID only, so a
// different value carrying the same ID detaches the original registration.
// If no observer matches, it does nothing.
func (s *Subject[T]) Detach(o Observer[T]) {
	if o == nil {
		return
	}
	s.DetachID(o.ID())
}

// DetachID removes the observer registered under id, if any.
func (s *Subject[T]) DetachID(id string) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}

	s.observers = slices.Delete(s.observers, i, i+1)
	s.logger.Info("detached observer", "id", id)
	capitan.Emit(context.Background(), ObserverDetached,
		KeyObserverID.Field(id),
		KeyObserverCount.Field(len(s.observers)),
	)
}

// Notify calls Update on every attached observer, in attachment order, on the calling goroutine.
//
// The observers are read from a copy taken when Notify starts, so an Update that attaches or
// detaches observers changes the next pass, not this one. A panic inside Update is not recovered.
func (s *Subject[T]) Notify() {
	observersCopy := s.observerSafeCopy()

	if len(observersCopy) == 0 {
		s.logger.Debug("no observers to notify", "state", s.state)
	}

	for _, o := range observersCopy {
		s.logger.Debug("-->", "id", o.ID(), "state", s.state)
		o.Update(s)
	}

	capitan.Emit(context.Background(), SubjectNotified,
		KeyObserverCount.Field(len(observersCopy)),
	)
}

// ObserverCount returns the number of attached observers.
func (s *Subject[T]) ObserverCount() int {
	return len(s.observers)
}

// ObserverIDs returns the IDs of the attached observers in attachment order.
func (s *Subject[T]) ObserverIDs() []string {
	ids := make([]string, 0, len(s.observers))
	for _, o := range s.observers {
		ids = append(ids, o.ID())
	}
	return ids
}

// Has reports whether an observer with the given ID is attached.
func (s *Subject[T]) Has(id string) bool {
	return s.indexOf(id) >= 0
}

// SetLogger sets the structured logger for the subject.
func (s *Subject[T]) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Logger returns the structured logger for the subject.
func (s *Subject[T]) Logger() *slog.Logger {
	return s.logger
}

func (s *Subject[T]) indexOf(id string) int {
	return slices.IndexFunc(s.observers, func(o Observer[T]) bool {
		return o.ID() == id
	})
}

// observerSafeCopy copies the registry so Notify is unaffected by changes made during the pass.
func (s *Subject[T]) observerSafeCopy() []Observer[T] {
	return slices.Clone(s.observers)
}
