package domain

import (
	"context"
	"time"
)

// EventTimeLayout is the accepted input format for event start and end times.
const EventTimeLayout = "2006-01-02 15:04"

// Location is where an event takes place.
// swagger:model Location
type Location struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Long    float64 `json:"long"`
	Address string  `json:"address"`
}

// Event is an organizer-owned gathering that attendees are invited to.
// swagger:model Event
type Event struct {
	ID            string    `json:"event_id"`
	OrganizerID   string    `json:"organizer_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Location      Location  `json:"location"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	AttendeeLimit int       `json:"attendee_limit"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateEventInput carries the raw, unvalidated fields of a new event.
type CreateEventInput struct {
	Title         string
	OrganizerID   string
	Description   string
	LocationName  string
	Address       string
	Lat           float64
	Long          float64
	StartTime     string
	EndTime       string
	AttendeeLimit int
}

// EventRepository defines storage operations for events.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	ListByOrganizerID(ctx context.Context, organizerID string) ([]*Event, error)
}

// EventService validates and stores event metadata.
type EventService interface {
	CreateEvent(ctx context.Context, in CreateEventInput) (*Event, error)
	GetEvent(ctx context.Context, eventID string) (*Event, error)
	// GetOrganizerID returns the identity that owns the event; used for access checks.
	GetOrganizerID(ctx context.Context, eventID string) (string, error)
	ListEventsByOrganizer(ctx context.Context, organizerID string) ([]*Event, error)
}
