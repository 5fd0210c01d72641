package mediator

import "github.com/zoobzio/capitan"

// MessageDelivered is emitted after a colleague has received a message.
var MessageDelivered = capitan.NewSignal(
	"patterns.mediator.delivered",
	"Message delivered to colleague",
)

// Field keys for mediator events.
var (
	KeyFrom = capitan.NewStringKey("from")
	KeyTo   = capitan.NewStringKey("to")
)
