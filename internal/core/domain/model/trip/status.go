package trip

import (
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/outcome"
)

// CodeInvalidEvent is the domain failure code returned when an event is not
// legal for the trip's current status.
const CodeInvalidEvent = "invalid_event"

// Status represents the lifecycle state of a trip.
// It implements a state machine with defined transitions:
//
//	Planned ──TripStarted──> InProgress ──TripCompleted──> Finished
//	                             │ ▲
//	         CheckpointPassed────┘ │
//	         Accident──────────────┘
//
// Finished is terminal: no further event is legal. Status alone determines
// the legality of an event; payloads are never inspected.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPlanned is the initial status assigned when a trip is planned.
	// The trip has a driver and vehicle reserved but has not departed yet.
	StatusPlanned

	// StatusInProgress indicates the trip has started and is underway.
	StatusInProgress

	// StatusFinished indicates the trip has completed. Terminal state.
	StatusFinished
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPlanned:    "Planned",
		StatusInProgress: "InProgress",
		StatusFinished:   "Finished",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPlanned:    "Planned",
		StatusInProgress: "InProgress",
		StatusFinished:   "Finished",
	}
}

// Validate checks that the Status holds one of the defined lifecycle values.
// Used when rehydrating trips from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a persisted status name back into a Status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Next computes the status that results from admitting an event of the given
// type, or a typed invalid_event failure when the transition is illegal.
// The decision is pure: no payload, no clock, no storage.
func (s Status) Next(eventType EventType) (Status, *outcome.Error) {
	switch s {
	case StatusPlanned:
		if eventType == EventTripStarted {
			return StatusInProgress, nil
		}
	case StatusInProgress:
		switch eventType {
		case EventTripCompleted:
			return StatusFinished, nil
		case EventCheckpointPassed, EventAccident:
			return StatusInProgress, nil
		}
	case StatusFinished:
		// Terminal: nothing is legal.
	}

	return StatusUnknown, outcome.NewError(CodeInvalidEvent,
		fmt.Sprintf("event %s is not allowed for trip in status %s", eventType, s))
}
