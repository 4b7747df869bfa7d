package aoc

// Queue is a FIFO queue. The zero value is ready to use.
type Queue[T any] struct {
	q    []T
	head int
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{q: in}
}

func (q *Queue[T]) Len() int {
	return len(q.q) - q.head
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.head == len(q.q) {
		return zero, false
	}
	v := q.q[q.head]
	q.q[q.head] = zero // release references held by popped items
	q.head++
	if q.head == len(q.q) {
		q.q, q.head = q.q[:0], 0
	}
	return v, true
}

// While pops items and calls f on each until the queue is empty or f
// returns false. f may push more items.
func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok || !f(v) {
			return
		}
	}
}
