package sim

import "github.com/google/uuid"

// Event types emitted by the engine.
const (
	EventInitialized = "Initialized"
	EventSeekerMoved = "SeekerMoved"
	EventChaserMoved = "ChaserMoved"
	EventSeekerWon   = "SeekerWon"
	EventChaserWon   = "ChaserWon"
	EventStopped     = "Stopped"
)

// Event is a simulation notification. Type is the event tag; Payload
// carries event-specific detail (positions, chaser index).
type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Handler receives engine events. Handlers run outside the grid lock, so
// they may call back into the engine.
type Handler func(Event)

type subscriber struct {
	id uuid.UUID
	fn Handler
}

// registry holds subscribers in insertion order so notification order is
// stable within a run.
type registry struct {
	subs []subscriber
}

func (r *registry) add(fn Handler) uuid.UUID {
	id := uuid.New()
	r.subs = append(r.subs, subscriber{id: id, fn: fn})
	return id
}

func (r *registry) remove(id uuid.UUID) {
	for i, s := range r.subs {
		if s.id == id {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return
		}
	}
}

func (r *registry) handlers() []Handler {
	out := make([]Handler, len(r.subs))
	for i, s := range r.subs {
		out[i] = s.fn
	}
	return out
}
