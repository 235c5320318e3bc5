package stream

import "sync"

type Consumer[T any] interface {
	Consume(v T)
}

// ArrayConsumer collects everything it is given. It is safe for use by
// several producers at once.
type ArrayConsumer[T any] struct {
	mu   sync.Mutex
	list []T
}

func NewArrayConsumer[T any]() *ArrayConsumer[T] {
	return &ArrayConsumer[T]{}
}

func (c *ArrayConsumer[T]) Consume(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = append(c.list, v)
}

func (c *ArrayConsumer[T]) Collect() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list
}
