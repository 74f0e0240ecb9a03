package events

import "time"

// Event is anything published on the bus.
type Event interface {
	Type() string
	Timestamp() time.Time
	GameID() string
}

// BaseEvent carries the fields every game event shares. Embed it.
type BaseEvent struct {
	EventType string    `json:"type"`
	Time      time.Time `json:"timestamp"`
	Game      string    `json:"game_id"`
}

func newBaseEvent(eventType, gameID string) BaseEvent {
	return BaseEvent{EventType: eventType, Time: time.Now(), Game: gameID}
}

func (e BaseEvent) Type() string         { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }
func (e BaseEvent) GameID() string       { return e.Game }

// EventHandler receives events registered through SubscribeFunc.
type EventHandler func(Event)

// Subscriber receives every event it declares interest in.
// ID must be unique per bus; subscribing again with the same ID replaces
// the earlier subscriber.
type Subscriber interface {
	ID() string
	HandleEvent(Event)
	InterestedIn(eventType string) bool
}

// Publisher is the write side of the bus, all the state machine needs.
type Publisher interface {
	Publish(Event)
}
