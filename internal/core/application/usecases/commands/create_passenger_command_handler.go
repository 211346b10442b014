package commands

import (
	"context"
	"errors"

	"ridehail/internal/core/domain/model/user"
	"ridehail/internal/core/ports"
	"ridehail/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when creating a user whose email is
// already taken.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// CreatePassengerCommandHandler handles passenger registration.
// Emails are unique across passengers; uniqueness is checked inside the
// registration transaction.
type CreatePassengerCommandHandler struct {
	uowFactory PassengerUoWFactory
	clock      ports.Clock
}

// NewCreatePassengerCommandHandler creates a handler for passenger registration.
func NewCreatePassengerCommandHandler(
	uowFactory PassengerUoWFactory,
	clock ports.Clock,
) CreatePassengerCommandHandler {
	return CreatePassengerCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the passenger registration command.
func (h *CreatePassengerCommandHandler) Handle(ctx context.Context, cmd CreatePassengerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passenger, err := user.NewPassenger(
		cmd.PassengerID(),
		cmd.FullName(),
		cmd.Email(),
		cmd.PhoneNumber(),
		cmd.PreferredPaymentMethod(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	passengerRepo := uow.PassengerRepository()

	existing, err := passengerRepo.GetByEmail(ctx, passenger.Email())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return ErrEmailAlreadyRegistered
	}

	if err = passengerRepo.Add(ctx, passenger); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
