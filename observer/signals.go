package observer

import "github.com/zoobzio/capitan"

// Registry signals.
var (
	// ObserverAttached is emitted when an observer is added to a subject.
	ObserverAttached = capitan.NewSignal(
		"patterns.observer.attached",
		"Observer attached to subject",
	)

	// ObserverDetached is emitted when an observer is removed from a subject.
	ObserverDetached = capitan.NewSignal(
		"patterns.observer.detached",
		"Observer detached from subject",
	)

	// ObserverIgnored is emitted when an attach is skipped because the ID is
	// already registered or unusable.
	ObserverIgnored = capitan.NewSignal(
		"patterns.observer.ignored",
		"Observer attach ignored",
	)
)

// Broadcast signals.
var (
	// SubjectNotified is emitted after a Notify pass has reached every observer, including a
	// pass over an empty registry, which reports a count of 0.
	SubjectNotified = capitan.NewSignal(
		"patterns.subject.notified",
		"Subject notified observers",
	)
)
