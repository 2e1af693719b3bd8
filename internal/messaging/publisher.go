package messaging

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/astrogirlnim/salvage/internal/game"
)

// SubjectPrefix is prepended to every event name to form its NATS subject,
// e.g. "salvage.events.item_collected".
const SubjectPrefix = "salvage.events."

// EventPublisher forwards engine events onto the NATS bus as JSON. Register
// its Handle method with the engine's dispatcher; delivery failures are
// logged, never propagated back into the simulation.
type EventPublisher struct {
	server *NatsServer
}

func NewEventPublisher(server *NatsServer) *EventPublisher {
	return &EventPublisher{server: server}
}

// Handle publishes one event. Implements the dispatcher callback signature.
func (p *EventPublisher) Handle(ev game.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		slog.Warn("marshalling event", "event", ev.EventName(), "error", err)
		return
	}
	subject := fmt.Sprintf("%s%s", SubjectPrefix, ev.EventName())
	if err := p.server.Publish(subject, data); err != nil {
		slog.Warn("publishing event", "subject", subject, "error", err)
	}
}
