// Package ride contains the RideOrder aggregate, the central consistency
// boundary of the system. A ride order owns its lifecycle state machine and
// the timestamps associated with each transition; it is mutated only through
// the named transition methods, each of which validates the current state and
// returns a domain event on success.
package ride

import (
	"errors"
	"strings"
	"time"

	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/model/user"
	"ridehail/internal/pkg/errs"
	"ridehail/internal/pkg/guard"
)

// Domain errors for ride order operations. Business-rule violations are
// expected outcomes the caller branches on, never panics.
var (
	// ErrRideOrderIsNotConstructed is returned when a RideOrder was not created
	// through NewRideOrder or RestoreRideOrder.
	ErrRideOrderIsNotConstructed = errors.New("RideOrder must be created via NewRideOrder constructor")
	// ErrDriverIsRequired is returned when a transition needs a driver and none was given.
	ErrDriverIsRequired = errs.NewValueIsRequiredError("driver")
	// ErrDriverNotAvailable is returned when an unavailable driver tries to accept a ride.
	ErrDriverNotAvailable = errors.New("Driver is not available")
	// ErrNoDriverAssigned is returned when a transition requires an assigned driver.
	ErrNoDriverAssigned = errors.New("ride has no assigned driver")
	// ErrCancelRideInProgress is returned when cancelling a ride that already started.
	ErrCancelRideInProgress = errors.New("Cannot cancel a ride in progress")
	// ErrCancelFinalizedRide is returned when cancelling a completed or cancelled ride.
	ErrCancelFinalizedRide = errors.New("Cannot cancel a completed or already cancelled ride")
)

// RideOrder is the aggregate root for a single ride from request to
// completion or cancellation.
//
// Invariants:
//   - driverID is set for Accepted, DriverArriving, InProgress, and Completed
//     rides; Rejected and Cancelled rides may retain the driver from a prior
//     assignment.
//   - Status transitions follow the graph documented on Status.
//   - A failed transition leaves the aggregate unchanged.
//
// The aggregate performs no I/O and never reads the wall clock: callers pass
// the current time into every mutating operation, which keeps transitions
// deterministic and trivially testable.
type RideOrder struct {
	id          kernel.UUID
	passengerID kernel.UUID
	driverID    *kernel.UUID

	pickup      kernel.Address
	destination kernel.Address

	estimatedFare kernel.Money
	finalFare     *kernel.Money

	status Status

	createdAt   time.Time
	acceptedAt  *time.Time
	startedAt   *time.Time
	completedAt *time.Time
	cancelledAt *time.Time

	rejectionReason    string
	cancellationReason string
	cancelledBy        *kernel.UUID

	// version is the optimistic concurrency token maintained by persistence.
	version int64

	// guard ensures the ride order was properly constructed
	guard guard.ConstructorGuard
}

// NewRideOrder creates a new ride order in Created status and returns it with
// the corresponding CreatedEvent. All required parts are validated; failures
// name the offending field.
func NewRideOrder(
	id kernel.UUID,
	passengerID kernel.UUID,
	pickup kernel.Address,
	destination kernel.Address,
	estimatedFare kernel.Money,
	now time.Time,
) (*RideOrder, CreatedEvent, error) {
	order := &RideOrder{
		status:    StatusCreated,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setPassengerID(passengerID),
		order.setPickup(pickup),
		order.setDestination(destination),
		order.setEstimatedFare(estimatedFare),
	); err != nil {
		return nil, CreatedEvent{}, err
	}

	event := CreatedEvent{
		baseEvent:   baseEvent{rideID: id, occurredAt: now},
		PassengerID: passengerID,
	}
	return order, event, nil
}

// RestoreRideOrder reconstructs a ride order from persistent storage,
// including its transition timestamps and concurrency version. The restored
// aggregate behaves identically to one built through domain operations.
func RestoreRideOrder(
	id kernel.UUID,
	passengerID kernel.UUID,
	driverID *kernel.UUID,
	pickup kernel.Address,
	destination kernel.Address,
	estimatedFare kernel.Money,
	finalFare *kernel.Money,
	status Status,
	createdAt time.Time,
	acceptedAt *time.Time,
	startedAt *time.Time,
	completedAt *time.Time,
	cancelledAt *time.Time,
	rejectionReason string,
	cancellationReason string,
	cancelledBy *kernel.UUID,
	version int64,
) (*RideOrder, error) {
	order := &RideOrder{
		status:             status,
		createdAt:          createdAt,
		acceptedAt:         acceptedAt,
		startedAt:          startedAt,
		completedAt:        completedAt,
		cancelledAt:        cancelledAt,
		rejectionReason:    rejectionReason,
		cancellationReason: cancellationReason,
		version:            version,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setPassengerID(passengerID),
		order.setPickup(pickup),
		order.setDestination(destination),
		order.setEstimatedFare(estimatedFare),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		order.driverID = driverID
	}

	if finalFare != nil {
		if err := finalFare.Validate(); err != nil {
			return nil, err
		}
		order.finalFare = finalFare
	}

	if cancelledBy != nil {
		if err := cancelledBy.Validate(); err != nil {
			return nil, err
		}
		order.cancelledBy = cancelledBy
	}

	return order, nil
}

// Validate ensures the RideOrder instance was properly constructed.
func (r *RideOrder) Validate() error {
	if r == nil {
		return ErrRideOrderIsNotConstructed
	}
	return r.guard.Validate(ErrRideOrderIsNotConstructed)
}

// IsEqual compares two ride orders by their unique identifiers.
func (r *RideOrder) IsEqual(other *RideOrder) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the ride order's unique identifier.
func (r *RideOrder) ID() kernel.UUID {
	return r.id
}

// PassengerID returns the requesting passenger's identifier.
func (r *RideOrder) PassengerID() kernel.UUID {
	return r.passengerID
}

// DriverID returns the assigned driver's identifier, or nil before acceptance.
func (r *RideOrder) DriverID() *kernel.UUID {
	return r.driverID
}

// Pickup returns the pickup address.
func (r *RideOrder) Pickup() kernel.Address {
	return r.pickup
}

// Destination returns the destination address.
func (r *RideOrder) Destination() kernel.Address {
	return r.destination
}

// EstimatedFare returns the fare estimated at creation time.
func (r *RideOrder) EstimatedFare() kernel.Money {
	return r.estimatedFare
}

// FinalFare returns the final fare, or nil until the ride completes.
func (r *RideOrder) FinalFare() *kernel.Money {
	return r.finalFare
}

// Status returns the current lifecycle status.
func (r *RideOrder) Status() Status {
	return r.status
}

// CreatedAt returns when the ride order was created.
func (r *RideOrder) CreatedAt() time.Time {
	return r.createdAt
}

// AcceptedAt returns when a driver accepted the ride, or nil.
func (r *RideOrder) AcceptedAt() *time.Time {
	return r.acceptedAt
}

// StartedAt returns when the ride started, or nil.
func (r *RideOrder) StartedAt() *time.Time {
	return r.startedAt
}

// CompletedAt returns when the ride completed, or nil.
func (r *RideOrder) CompletedAt() *time.Time {
	return r.completedAt
}

// CancelledAt returns when the ride was cancelled, or nil.
func (r *RideOrder) CancelledAt() *time.Time {
	return r.cancelledAt
}

// RejectionReason returns the reason given by a rejecting driver, if any.
func (r *RideOrder) RejectionReason() string {
	return r.rejectionReason
}

// CancellationReason returns the reason given on cancellation, if any.
func (r *RideOrder) CancellationReason() string {
	return r.cancellationReason
}

// CancelledBy returns who cancelled the ride, or nil.
func (r *RideOrder) CancelledBy() *kernel.UUID {
	return r.cancelledBy
}

// Version returns the optimistic concurrency token last read from persistence.
func (r *RideOrder) Version() int64 {
	return r.version
}

// Accept assigns an available driver to a Created ride and moves it to
// Accepted. Fails when the driver is missing or unavailable, or when the ride
// is not in Created status; on failure the ride is unchanged, so Accept is
// safely re-callable after the caller reloads fresh state.
func (r *RideOrder) Accept(driver *user.Driver, now time.Time) (AcceptedEvent, error) {
	if err := r.Validate(); err != nil {
		return AcceptedEvent{}, err
	}

	if driver == nil {
		return AcceptedEvent{}, ErrDriverIsRequired
	}
	if err := driver.Validate(); err != nil {
		return AcceptedEvent{}, err
	}
	if !driver.IsAvailable() {
		return AcceptedEvent{}, ErrDriverNotAvailable
	}

	newStatus, err := r.status.Accept()
	if err != nil {
		return AcceptedEvent{}, err
	}

	driverID := driver.ID()
	r.driverID = &driverID
	r.status = newStatus
	r.acceptedAt = &now

	return AcceptedEvent{
		baseEvent: baseEvent{rideID: r.id, occurredAt: now},
		DriverID:  driverID,
	}, nil
}

// Reject records a driver's refusal of a Created ride. The rejecting driver
// and reason are stored for diagnostics.
func (r *RideOrder) Reject(driver *user.Driver, reason string) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if driver == nil {
		return ErrDriverIsRequired
	}
	if err := driver.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Reject()
	if err != nil {
		return err
	}

	driverID := driver.ID()
	r.driverID = &driverID
	r.status = newStatus
	r.rejectionReason = strings.TrimSpace(reason)

	return nil
}

// StartArriving moves an Accepted ride to DriverArriving.
func (r *RideOrder) StartArriving() error {
	if err := r.Validate(); err != nil {
		return err
	}

	if r.driverID == nil {
		return ErrNoDriverAssigned
	}

	newStatus, err := r.status.StartArriving()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Start moves an Accepted or DriverArriving ride to InProgress.
// Requires an assigned driver.
func (r *RideOrder) Start(now time.Time) (StartedEvent, error) {
	if err := r.Validate(); err != nil {
		return StartedEvent{}, err
	}

	if r.driverID == nil {
		return StartedEvent{}, ErrNoDriverAssigned
	}

	newStatus, err := r.status.Start()
	if err != nil {
		return StartedEvent{}, err
	}

	r.status = newStatus
	r.startedAt = &now

	return StartedEvent{
		baseEvent: baseEvent{rideID: r.id, occurredAt: now},
	}, nil
}

// Complete finishes an InProgress ride with the given final fare.
// Requires an assigned driver and a constructed fare.
func (r *RideOrder) Complete(finalFare kernel.Money, now time.Time) (CompletedEvent, error) {
	if err := r.Validate(); err != nil {
		return CompletedEvent{}, err
	}

	if r.driverID == nil {
		return CompletedEvent{}, ErrNoDriverAssigned
	}
	if err := finalFare.Validate(); err != nil {
		return CompletedEvent{}, err
	}

	newStatus, err := r.status.Complete()
	if err != nil {
		return CompletedEvent{}, err
	}

	r.status = newStatus
	r.finalFare = &finalFare
	r.completedAt = &now

	return CompletedEvent{
		baseEvent: baseEvent{rideID: r.id, occurredAt: now},
		DriverID:  *r.driverID,
		FinalFare: finalFare,
	}, nil
}

// Cancel cancels a ride that has not yet started. The canceller and reason
// are recorded. An in-progress ride cannot be cancelled, and completed or
// already cancelled rides stay final.
func (r *RideOrder) Cancel(cancelledBy kernel.UUID, reason string, now time.Time) (CancelledEvent, error) {
	if err := r.Validate(); err != nil {
		return CancelledEvent{}, err
	}

	if err := cancelledBy.Validate(); err != nil {
		return CancelledEvent{}, err
	}

	newStatus, err := r.status.Cancel()
	if err != nil {
		return CancelledEvent{}, err
	}

	r.status = newStatus
	r.cancelledAt = &now
	r.cancellationReason = strings.TrimSpace(reason)
	r.cancelledBy = &cancelledBy

	return CancelledEvent{
		baseEvent:   baseEvent{rideID: r.id, occurredAt: now},
		CancelledBy: cancelledBy,
		Reason:      r.cancellationReason,
	}, nil
}

// UpdateEstimatedFare replaces the estimate of a not-yet-accepted ride.
func (r *RideOrder) UpdateEstimatedFare(newEstimate kernel.Money) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if err := newEstimate.Validate(); err != nil {
		return err
	}

	if r.status != StatusCreated {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("estimated fare can only be updated before the ride is accepted"))
	}

	r.estimatedFare = newEstimate
	return nil
}

func (r *RideOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *RideOrder) setPassengerID(passengerID kernel.UUID) error {
	if err := passengerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("passenger", err)
	}
	r.passengerID = passengerID
	return nil
}

func (r *RideOrder) setPickup(pickup kernel.Address) error {
	if err := pickup.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup address", err)
	}
	r.pickup = pickup
	return nil
}

func (r *RideOrder) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destination address", err)
	}
	r.destination = destination
	return nil
}

func (r *RideOrder) setEstimatedFare(estimatedFare kernel.Money) error {
	if err := estimatedFare.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("estimated fare", err)
	}
	r.estimatedFare = estimatedFare
	return nil
}
