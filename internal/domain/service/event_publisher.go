package service

import (
	"context"
	"time"
)

// PlaceEventType names the kind of mutation a PlaceEvent reports.
type PlaceEventType string

const (
	PlaceCreated PlaceEventType = "place.created"
	PlaceUpdated PlaceEventType = "place.updated"
	PlaceDeleted PlaceEventType = "place.deleted"
)

// PlaceEvent is published after a successful place mutation.
type PlaceEvent struct {
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing
	Type       PlaceEventType `json:"type"`
	PlaceID    string         `json:"place_id"`
	Name       string         `json:"name,omitempty"`
	Types      string         `json:"types,omitempty"`
	Latitude   float64        `json:"latitude,omitempty"`
	Longitude  float64        `json:"longitude,omitempty"`
	Pincode    string         `json:"pincode,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPlaceEvent publishes a place change event
	PublishPlaceEvent(ctx context.Context, event *PlaceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
