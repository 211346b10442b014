package ride

import (
	"fmt"

	"ridehail/internal/pkg/errs"
)

// Status represents the lifecycle state of a ride order.
// It implements a state machine with defined transitions:
//
//	Created ──> Accepted ──> DriverArriving ──> InProgress ──> Completed
//	   │            │              │                  └──(no cancel)
//	   ├──> Rejected└──────> Cancelled <──┘
//	   └──────────────────> Cancelled
//
// Accepted may skip DriverArriving and move straight to InProgress.
// Completed and Cancelled are final; InProgress cannot be cancelled.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status of a requested ride waiting for a driver.
	StatusCreated

	// StatusAccepted indicates a driver has accepted the ride.
	StatusAccepted

	// StatusDriverArriving indicates the accepting driver is on the way to pickup.
	StatusDriverArriving

	// StatusInProgress indicates the ride has started.
	StatusInProgress

	// StatusCompleted indicates the ride finished with a final fare. Final state.
	StatusCompleted

	// StatusRejected indicates a driver declined the ride request.
	StatusRejected

	// StatusCancelled indicates the ride was cancelled before starting. Final state.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusCreated:        "Created",
		StatusAccepted:       "Accepted",
		StatusDriverArriving: "DriverArriving",
		StatusInProgress:     "InProgress",
		StatusCompleted:      "Completed",
		StatusRejected:       "Rejected",
		StatusCancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:        "Created",
		StatusAccepted:       "Accepted",
		StatusDriverArriving: "DriverArriving",
		StatusInProgress:     "InProgress",
		StatusCompleted:      "Completed",
		StatusRejected:       "Rejected",
		StatusCancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Used to verify Status values from external sources (database, API) before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status permits no further transitions.
func (s Status) IsFinal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Accept transitions the status to Accepted.
// Only a Created ride can be accepted.
func (s Status) Accept() (Status, error) {
	if s != StatusCreated {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to accept", s),
		)
	}

	return StatusAccepted, nil
}

// Reject transitions the status to Rejected.
// Only a Created ride can be rejected.
func (s Status) Reject() (Status, error) {
	if s != StatusCreated {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to reject", s),
		)
	}

	return StatusRejected, nil
}

// StartArriving transitions the status to DriverArriving.
// Only an Accepted ride can move to DriverArriving.
func (s Status) StartArriving() (Status, error) {
	if s != StatusAccepted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to start arriving", s),
		)
	}

	return StatusDriverArriving, nil
}

// Start transitions the status to InProgress.
// Valid from Accepted or DriverArriving.
func (s Status) Start() (Status, error) {
	if s != StatusAccepted && s != StatusDriverArriving {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to start", s),
		)
	}

	return StatusInProgress, nil
}

// Complete transitions the status to Completed.
// Only an InProgress ride can be completed.
func (s Status) Complete() (Status, error) {
	if s != StatusInProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s),
		)
	}

	return StatusCompleted, nil
}

// Cancel transitions the status to Cancelled.
// Valid from Created, Accepted, DriverArriving, and Rejected; an in-progress
// ride cannot be cancelled and final states stay final.
func (s Status) Cancel() (Status, error) {
	switch s {
	case StatusInProgress:
		return 0, ErrCancelRideInProgress
	case StatusCompleted, StatusCancelled:
		return 0, ErrCancelFinalizedRide
	case StatusCreated, StatusAccepted, StatusDriverArriving, StatusRejected:
		return StatusCancelled, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s),
		)
	}
}
