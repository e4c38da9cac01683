package services

import (
	"sync"

	"github.com/todoly/backend/internal/core/ports"
	"github.com/todoly/backend/internal/domain"
	"github.com/todoly/backend/internal/infrastructure/logger"
)

// TodoBroker is an in-process fan-out of todo events. Publish never blocks:
// a subscriber with a full buffer misses the event.
type TodoBroker struct {
	mu         sync.Mutex
	subs       map[chan domain.TodoEvent]struct{}
	bufferSize int
	closed     bool
	logger     *logger.Logger
}

func NewTodoBroker(bufferSize int, log *logger.Logger) *TodoBroker {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &TodoBroker{
		subs:       make(map[chan domain.TodoEvent]struct{}),
		bufferSize: bufferSize,
		logger:     log,
	}
}

var _ ports.TodoEventBroker = (*TodoBroker)(nil)

// Subscribe registers a listener. The returned func is safe to call more
// than once. After Close, Subscribe hands back an already closed channel.
func (b *TodoBroker) Subscribe() (<-chan domain.TodoEvent, func()) {
	ch := make(chan domain.TodoEvent, b.bufferSize)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	b.subs[ch] = struct{}{}
	count := len(b.subs)
	b.mu.Unlock()

	b.logger.Debugw("todo_broker_subscribed", "subscribers", count)

	var once sync.Once
	return ch, func() {
		once.Do(func() { b.unsubscribe(ch) })
	}
}

func (b *TodoBroker) unsubscribe(ch chan domain.TodoEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[ch]; !ok {
		return
	}
	delete(b.subs, ch)
	close(ch)
}

func (b *TodoBroker) Publish(event domain.TodoEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	for ch := range b.subs {
		select {
		case ch <- event:
		default:
			b.logger.Warnw("todo_broker_event_dropped", "type", event.Type, "id", event.Todo.ID)
		}
	}
}

// Subscribers reports the number of live subscriptions.
func (b *TodoBroker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close ends every subscription by closing its channel.
func (b *TodoBroker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subs {
		close(ch)
	}
	b.subs = make(map[chan domain.TodoEvent]struct{})
}
