package observer

import (
	"fmt"
	"log/slog"
)

// LogObserver writes every state it is notified about to a logger.
type LogObserver[T any] struct {
	id     string
	logger *slog.Logger
}

// NewLogObserver creates a LogObserver. A nil logger falls back to slog.Default.
func NewLogObserver[T any](id string, logger *slog.Logger) *LogObserver[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver[T]{
		id:     id,
		logger: logger,
	}
}

// ID returns the name the observer was created with.
func (l *LogObserver[T]) ID() string {
	return l.id
}

// Update logs the subject's current state.
func (l *LogObserver[T]) Update(subject *Subject[T]) {
	l.logger.Info(fmt.Sprintf("subject state %v, update observer %s.", subject.State(), l.id))
}

// FuncObserver turns a function into an Observer.
type FuncObserver[T any] struct {
	id string
	f  func(*Subject[T])
}

// NewFuncObserver creates an observer named id that calls f on every update.
func NewFuncObserver[T any](id string, f func(*Subject[T])) *FuncObserver[T] {
	return &FuncObserver[T]{
		id: id,
		f:  f,
	}
}

// ID returns the name the observer was created with.
func (o *FuncObserver[T]) ID() string {
	return o.id
}

// Update calls the wrapped function. A nil function does nothing.
func (o *FuncObserver[T]) Update(subject *Subject[T]) {
	if o.f == nil {
		return
	}
	o.f(subject)
}
