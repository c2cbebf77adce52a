package Queues

// Queue is a first in first out container.
type Queue[T any] interface {
	//Push item to the back of the Queue.
	Push(item T)
	//Pop the item at the front of the Queue. Returns *EmptyQueueError if
	//there's nothing to pop.
	Pop() (T, error)
	//Peek at the front item without removing it. Zero value if empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a circular slice.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing slice to fit the current items.
	Shrink()
	//Clear all items. The backing slice is kept.
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
