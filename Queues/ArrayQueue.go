package Queues

// circArrQ keeps sz items in content starting at head, wrapping around the end.
// tail is the index the next pushed item goes to.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// New ArrayQueue with room for initCap items before the first resize.
func New[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, initCap)}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

func (u *circArrQ[T]) Size() uint {
	return u.sz
}

// resize copies the items in order into a new slice of newLen, newLen>=sz.
func (u *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.sz > 0 {
		if u.head < u.tail {
			copy(nc, u.content[u.head:u.tail])
		} else {
			n := copy(nc, u.content[u.head:])
			copy(nc[n:], u.content[:u.tail])
		}
	}
	u.content, u.head = nc, 0
	u.tail = u.sz % newLen
}

func (u *circArrQ[T]) Shrink() {
	u.resize(u.sz | 1)
}

func (u *circArrQ[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

// Push grows the backing slice by half (at least by 4) when it is full.
func (u *circArrQ[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz + max(u.sz>>1, 4))
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *circArrQ[T]) Pop() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T) //drop the reference
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return t, nil
}

func (u *circArrQ[T]) Peek() T {
	if u.Empty() {
		return *new(T)
	}
	return u.content[u.head]
}
