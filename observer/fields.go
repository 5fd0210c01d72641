package observer

import "github.com/zoobzio/capitan"

// Field keys for observer events.
var (
	// KeyObserverID is the ID of the observer involved in the event.
	KeyObserverID = capitan.NewStringKey("observer_id")

	// KeyObserverCount is the number of registered observers after the event.
	KeyObserverCount = capitan.NewIntKey("observer_count")

	// KeyReason explains why an attach was ignored.
	KeyReason = capitan.NewStringKey("reason")
)

const (
	reasonDuplicate = "duplicate"
	reasonEmptyID   = "empty_id"
)
