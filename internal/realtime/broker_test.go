package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrokerPublishReachesSubscribers(t *testing.T) {
	b := NewBroker()

	ch1, cancel1 := b.Subscribe()
	ch2, cancel2 := b.Subscribe()
	defer cancel2()

	b.Publish(Event{Action: "created"})

	ev := <-ch1
	assert.Equal(t, "created", ev.Action)
	ev = <-ch2
	assert.Equal(t, "created", ev.Action)

	cancel1()
	_, open := <-ch1
	assert.False(t, open, "cancel closes the channel")

	// Publishing after a cancel must not panic or block.
	b.Publish(Event{Action: "updated"})
	ev = <-ch2
	require.Equal(t, "updated", ev.Action)
}

func TestBrokerCancelIsIdempotent(t *testing.T) {
	b := NewBroker()
	_, cancel := b.Subscribe()
	cancel()
	cancel()
}

func TestBrokerDropsWhenSubscriberIsFull(t *testing.T) {
	b := NewBroker()
	ch, cancel := b.Subscribe()
	defer cancel()

	for i := 0; i < 50; i++ {
		b.Publish(Event{Action: "created"})
	}

	// Buffer holds 16; the rest were dropped, nothing blocked.
	n := 0
	for len(ch) > 0 {
		<-ch
		n++
	}
	assert.Equal(t, 16, n)
}
