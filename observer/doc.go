/*
Package observer implements the Observer pattern around a Subject that owns a
piece of state and a registry of observers.

Observers are identified by a string ID. A Subject keeps at most one observer
per ID and remembers the order in which they were attached:

	subject := observer.NewSubject[int]()

	a := observer.NewLogObserver[int]("A", slog.Default())
	b := observer.NewLogObserver[int]("B", slog.Default())

	subject.Attach(a)
	subject.Attach(b)

	subject.SetState(1)
	subject.Notify() // A then B, both see 1

	subject.Detach(b)
	subject.SetState(2)
	subject.Notify() // only A, sees 2

Setting state never notifies on its own. Callers decide when to broadcast, so
several changes can be batched into a single Notify.

Notify works on a snapshot of the registry taken when it is called. Observers
that attach or detach from inside Update only affect the next pass.

A Subject is meant to be driven from a single goroutine. Wrap it with your own
locking if several goroutines need to share one.
*/
package observer
