package service

import (
	"sync"

	"cinelog/internal/models"
)

// subscriber channel buffer; slow consumers drop events rather than
// block publishers.
const activityBuffer = 16

// ActivityBroker fans activity events out to websocket subscribers.
type ActivityBroker struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan models.ActivityEvent
}

func NewActivityBroker() *ActivityBroker {
	return &ActivityBroker{subs: make(map[int]chan models.ActivityEvent)}
}

var _ Activity = (*ActivityBroker)(nil)

// Publish delivers the event to every subscriber without blocking.
func (b *ActivityBroker) Publish(ev models.ActivityEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default: // subscriber is behind; drop
		}
	}
}

// Subscribe registers a consumer. The returned cancel func must be
// called when the consumer goes away.
func (b *ActivityBroker) Subscribe() (<-chan models.ActivityEvent, func()) {
	ch := make(chan models.ActivityEvent, activityBuffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}
