package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventRecalculateStats EventType = "recalculate-stats"
)

// RecalculateRequest is the payload for a recalculate-stats message.
// Empty fields mean all seasons / all active players.
type RecalculateRequest struct {
	SeasonID string `msgpack:"seasonId"`
	PlayerID string `msgpack:"playerId"`
}
