// Package emitter provides a minimal typed publish/subscribe primitive.
//
// An Emitter delivers every payload synchronously, in registration order,
// on the goroutine that calls Emit. There is no buffering and no
// backpressure. Listener panics are not recovered.
package emitter

// ListenerID identifies a registered listener for later removal.
type ListenerID uint64

type entry[T any] struct {
	id ListenerID
	fn func(T)
}

// Emitter is a single event channel carrying payloads of type T.
// The zero value is ready to use. It is not safe for concurrent use.
type Emitter[T any] struct {
	listeners []entry[T]
	nextID    ListenerID
}

// New creates an empty emitter.
func New[T any]() *Emitter[T] {
	return &Emitter[T]{}
}

// AddListener registers fn and returns an id that can be passed to
// RemoveListener.
func (e *Emitter[T]) AddListener(fn func(T)) ListenerID {
	e.nextID++
	e.listeners = append(e.listeners, entry[T]{id: e.nextID, fn: fn})
	return e.nextID
}

// RemoveListener unregisters the listener with the given id.
// Returns false if no such listener is registered.
func (e *Emitter[T]) RemoveListener(id ListenerID) bool {
	for i, l := range e.listeners {
		if l.id == id {
			// Copy so a dispatch in progress keeps its snapshot intact.
			next := make([]entry[T], 0, len(e.listeners)-1)
			next = append(next, e.listeners[:i]...)
			next = append(next, e.listeners[i+1:]...)
			e.listeners = next
			return true
		}
	}
	return false
}

// Emit calls every listener registered at the time of the call.
func (e *Emitter[T]) Emit(payload T) {
	listeners := e.listeners
	for _, l := range listeners {
		l.fn(payload)
	}
}

// Len returns the number of registered listeners.
func (e *Emitter[T]) Len() int {
	return len(e.listeners)
}
