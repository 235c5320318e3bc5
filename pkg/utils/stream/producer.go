package stream

type Producer[T any] interface {
	Produce() (T, bool)
}

type ArrayProducer[T any] struct {
	list []T
}

func NewArrayProducer[T any](list []T) *ArrayProducer[T] {
	return &ArrayProducer[T]{
		list: list,
	}
}

func (p *ArrayProducer[T]) Produce() (T, bool) {
	var zero T
	if len(p.list) == 0 {
		return zero, false
	}
	v := p.list[0]
	p.list = p.list[1:]
	return v, true
}

type ChannelProducer[T any] struct {
	ch <-chan T
}

func NewChannelProducer[T any](ch <-chan T) *ChannelProducer[T] {
	return &ChannelProducer[T]{
		ch: ch,
	}
}

func (p *ChannelProducer[T]) Produce() (T, bool) {
	if p.ch == nil {
		var zero T
		return zero, false
	}

	v, ok := <-p.ch
	return v, ok
}

// Drain moves every value from producer to consumer and returns the count.
func Drain[T any](producer Producer[T], consumer Consumer[T]) int {
	count := 0
	for {
		v, ok := producer.Produce()
		if !ok {
			return count
		}
		consumer.Consume(v)
		count++
	}
}
