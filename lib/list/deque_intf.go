package list

// Deque is a minimal double-ended queue. It works as the
// LIFO (PushBack/PopBack) or FIFO (PushBack/PopFront) scratch
// buffer for the tree traversals.
// Note that the deque is not thread safe.
type Deque[T any] interface {
	Len() int64
	IsEmpty() bool
	// PushBack inserts v at the back of the deque.
	PushBack(v T)
	// PopFront removes and returns the front value, false if the deque is empty.
	PopFront() (T, bool)
	// PopBack removes and returns the back value, false if the deque is empty.
	PopBack() (T, bool)
	// Back returns the back value without removing it.
	Back() (T, bool)
	Clear()
}
