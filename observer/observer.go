package observer

// Observer receives updates from a Subject it is attached to.
type Observer[T any] interface {

	// ID identifies the observer within a Subject. Two observers with the same ID are
	// treated as the same registration, regardless of whether they are the same value.
	ID() string

	// Update is called once per Notify pass with the subject that is notifying.
	Update(subject *Subject[T])
}
