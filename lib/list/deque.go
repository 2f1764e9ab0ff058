package list

var _ Deque[struct{}] = (*linkedDeque[struct{}])(nil) // Type check assertion

type dequeElement[T any] struct {
	prev, next *dequeElement[T]
	value      T
}

// The root is a sentinel element of the ring, root.next is the
// front and root.prev is the back. An empty deque links root to itself.
type linkedDeque[T any] struct {
	root dequeElement[T]
	len  int64
}

func NewDeque[T any]() Deque[T] {
	return new(linkedDeque[T]).init()
}

func (dq *linkedDeque[T]) init() *linkedDeque[T] {
	dq.root.next = &dq.root
	dq.root.prev = &dq.root
	dq.len = 0
	return dq
}

func (dq *linkedDeque[T]) Len() int64 {
	return dq.len
}

func (dq *linkedDeque[T]) IsEmpty() bool {
	return dq.len == 0
}

func (dq *linkedDeque[T]) insertAfter(v T, at *dequeElement[T]) {
	e := &dequeElement[T]{
		value: v,
		prev:  at,
		next:  at.next,
	}
	at.next.prev = e
	at.next = e
	dq.len++
}

func (dq *linkedDeque[T]) remove(e *dequeElement[T]) T {
	e.prev.next = e.next
	e.next.prev = e.prev
	// avoid memory leaks
	e.next, e.prev = nil, nil
	v := e.value
	var zero T
	e.value = zero
	dq.len--
	return v
}

func (dq *linkedDeque[T]) PushBack(v T) {
	dq.insertAfter(v, dq.root.prev)
}

func (dq *linkedDeque[T]) PopFront() (v T, ok bool) {
	if dq.len == 0 {
		return v, false
	}
	return dq.remove(dq.root.next), true
}

func (dq *linkedDeque[T]) PopBack() (v T, ok bool) {
	if dq.len == 0 {
		return v, false
	}
	return dq.remove(dq.root.prev), true
}

func (dq *linkedDeque[T]) Back() (v T, ok bool) {
	if dq.len == 0 {
		return v, false
	}
	return dq.root.prev.value, true
}

func (dq *linkedDeque[T]) Clear() {
	for dq.len > 0 {
		dq.remove(dq.root.next)
	}
}
