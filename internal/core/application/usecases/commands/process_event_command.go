package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/trip"
	"dispatch/internal/pkg/guard"
)

var ErrProcessEventCommandIsNotConstructed = errors.New(
	"ProcessEventCommand must be created via NewProcessEventCommand constructor",
)

// ProcessEventCommand represents a reported trip event awaiting admission.
// Carries the target trip, the event type and an optional payload such as
// a checkpoint name or an incident note.
type ProcessEventCommand struct { //nolint:recvcheck //using for validation
	tripID    kernel.UUID
	eventType trip.EventType
	payload   string

	guard guard.ConstructorGuard
}

// NewProcessEventCommand creates a command to admit an event into a trip.
// Validates the trip identity and the event type. The payload may be empty.
func NewProcessEventCommand(
	tripID kernel.UUID, eventType trip.EventType, payload string,
) (ProcessEventCommand, error) {
	eventCommand := ProcessEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		eventCommand.setTripID(tripID),
		eventCommand.setEventType(eventType),
	); err != nil {
		return ProcessEventCommand{}, err
	}

	eventCommand.payload = payload

	return eventCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessEventCommandIsNotConstructed if validation fails.
func (c ProcessEventCommand) Validate() error {
	return c.guard.Validate(ErrProcessEventCommandIsNotConstructed)
}

// TripID returns the identity of the trip the event belongs to.
func (c ProcessEventCommand) TripID() kernel.UUID {
	return c.tripID
}

// EventType returns the reported event type.
func (c ProcessEventCommand) EventType() trip.EventType {
	return c.eventType
}

// Payload returns the free-form event payload.
func (c ProcessEventCommand) Payload() string {
	return c.payload
}

func (c *ProcessEventCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}

func (c *ProcessEventCommand) setEventType(eventType trip.EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}

	c.eventType = eventType
	return nil
}
