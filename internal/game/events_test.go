package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

// recordingPub captures published events for assertions.
type recordingPub struct {
	events []Event
}

func (p *recordingPub) Publish(ev Event) {
	p.events = append(p.events, ev)
}

func (p *recordingPub) names() []string {
	out := make([]string, len(p.events))
	for i, ev := range p.events {
		out[i] = ev.EventName()
	}
	return out
}

func (p *recordingPub) count(name string) int {
	n := 0
	for _, ev := range p.events {
		if ev.EventName() == name {
			n++
		}
	}
	return n
}

func TestDispatcher_DeliveryOrder(t *testing.T) {
	d := NewDispatcher()

	var order []string
	d.Subscribe(func(Event) { order = append(order, "first") })
	d.Subscribe(func(Event) { order = append(order, "second") })
	d.Subscribe(func(Event) { order = append(order, "third") })

	d.Publish(EntityDespawned{Id: "x"})

	testutil.AssertEqual(t, "deliveries", len(order), 3)
	testutil.AssertEqual(t, "first", order[0], "first")
	testutil.AssertEqual(t, "second", order[1], "second")
	testutil.AssertEqual(t, "third", order[2], "third")
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()

	calls := 0
	unsub := d.Subscribe(func(Event) { calls++ })

	d.Publish(EntityDespawned{Id: "x"})
	unsub()
	d.Publish(EntityDespawned{Id: "y"})

	testutil.AssertEqual(t, "calls", calls, 1)
}

func TestDispatcher_NoSubscribers(t *testing.T) {
	d := NewDispatcher()

	// Publishing with no subscribers must not panic
	d.Publish(EntityDespawned{Id: "x"})
}
