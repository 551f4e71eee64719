package trip

import (
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// EventType enumerates the lifecycle facts that can be recorded on a trip.
type EventType int

const (
	// EventTypeUnknown represents an invalid or undefined event type.
	EventTypeUnknown EventType = iota

	// EventTripStarted marks the departure of a planned trip.
	EventTripStarted

	// EventTripCompleted marks the end of a trip in progress.
	EventTripCompleted

	// EventCheckpointPassed records the passing of a named planned stop.
	// The payload carries the checkpoint name.
	EventCheckpointPassed

	// EventAccident records an incident during the trip.
	// The payload carries a free-text description.
	EventAccident
)

func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		EventTripStarted:      "TripStarted",
		EventTripCompleted:    "TripCompleted",
		EventCheckpointPassed: "CheckpointPassed",
		EventAccident:         "Accident",
	}
}

// Validate checks that the EventType holds one of the defined values.
func (t EventType) Validate() error {
	if _, ok := getEventTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("eventType", fmt.Errorf("%d is not a valid event type", t))
	}
	return nil
}

// String returns the wire name of the event type, e.g. "CheckpointPassed".
// The same names appear in persisted events and report event logs.
func (t EventType) String() string {
	if str, ok := getEventTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// EventTypeFromString parses a wire name back into an EventType.
func EventTypeFromString(s string) (EventType, error) {
	for eventType, name := range getEventTypeStrings() {
		if name == s {
			return eventType, nil
		}
	}
	return EventTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"eventType", fmt.Errorf("%q is not a valid event type", s))
}

// Event is an immutable lifecycle fact appended to a trip's history.
// The identity is assigned when the event is accepted into a workflow;
// the creation timestamp is stamped by the caller before validation.
type Event struct {
	id        kernel.UUID
	tripID    kernel.UUID
	createdAt time.Time
	eventType EventType
	payload   string
}

// NewEvent creates an event for the given trip. The payload is free-form and
// is never inspected for transition legality; for CheckpointPassed it names
// the checkpoint, for Accident it describes the incident.
func NewEvent(id kernel.UUID, tripID kernel.UUID, createdAt time.Time, eventType EventType, payload string) (Event, error) {
	if err := id.Validate(); err != nil {
		return Event{}, err
	}
	if err := tripID.Validate(); err != nil {
		return Event{}, err
	}
	if err := eventType.Validate(); err != nil {
		return Event{}, err
	}
	if createdAt.IsZero() {
		return Event{}, errs.NewValueIsRequiredError("createdAt")
	}

	return Event{
		id:        id,
		tripID:    tripID,
		createdAt: createdAt.UTC(),
		eventType: eventType,
		payload:   payload,
	}, nil
}

// ID returns the event's unique identifier.
func (e Event) ID() kernel.UUID {
	return e.id
}

// TripID returns the identifier of the trip this event belongs to.
func (e Event) TripID() kernel.UUID {
	return e.tripID
}

// CreatedAt returns the UTC instant the event was recorded.
func (e Event) CreatedAt() time.Time {
	return e.createdAt
}

// Type returns the event type.
func (e Event) Type() EventType {
	return e.eventType
}

// Payload returns the optional payload string.
func (e Event) Payload() string {
	return e.payload
}
