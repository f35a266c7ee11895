package realtime

import (
	"sync"

	"github.com/studiohair/salon-scheduler/internal/models"
)

// Event mirrors what the UI's live listeners used to receive from the
// document store: the entity that changed and how.
type Event struct {
	Action      string              `json:"action"` // created | updated | status_changed
	Appointment *models.Appointment `json:"appointment,omitempty"`
}

// Broker fans appointment events out to subscribers. Subscribe returns
// the event channel and a cancel handle; cancelling closes the channel.
// Slow subscribers drop events instead of blocking writers.
type Broker struct {
	mu   sync.RWMutex
	subs map[uint64]chan Event
	next uint64
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[uint64]chan Event)}
}

func (b *Broker) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++

	ch := make(chan Event, 16)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (b *Broker) Publish(ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			// assinante lento: descarta
		}
	}
}
