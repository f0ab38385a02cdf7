package pulsenet

// Queue is a FIFO queue. The zero value is ready to use.
type Queue[T any] struct {
	q    []T
	head int
}

// NewQueue returns a queue holding in, front first.
func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

func (q *Queue[T]) Len() int {
	return len(q.q) - q.head
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

// Pop removes and returns the front of the queue.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.head == len(q.q) {
		return zero, false
	}
	v := q.q[q.head]
	q.q[q.head] = zero
	q.head++
	if q.head == len(q.q) {
		// Drained; reuse the backing array.
		q.q = q.q[:0]
		q.head = 0
	}
	return v, true
}

// While pops until the queue is empty or f returns false. f may push.
func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}
