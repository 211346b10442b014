package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ridehail/internal/core/application/usecases/commands"
	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/pkg/errs"
)

func TestCreatePassengerCommand_Validation(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreatePassengerCommand(kernel.NewUUID(),
			"Ana Lomidze", "ana@example.com", "+995577112233", "card")
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("missing fields fail", func(t *testing.T) {
		_, err := commands.NewCreatePassengerCommand(kernel.NewUUID(),
			"", "ana@example.com", "+995577112233", "")
		require.ErrorIs(t, err, commands.ErrFullNameIsRequired)

		_, err = commands.NewCreatePassengerCommand(kernel.NewUUID(),
			"Ana Lomidze", "", "+995577112233", "")
		require.ErrorIs(t, err, commands.ErrEmailIsRequired)

		_, err = commands.NewCreatePassengerCommand(kernel.NewUUID(),
			"Ana Lomidze", "ana@example.com", "", "")
		require.ErrorIs(t, err, commands.ErrPhoneNumberIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		cmd := commands.CreatePassengerCommand{}
		require.Error(t, cmd.Validate())
	})
}

func TestCreatePassengerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePassengerCommand(kernel.NewUUID(),
		"Ana Lomidze", "Ana@Example.com", "+995577112233", "card")
	require.NoError(t, err)

	repo := new(MockPassengerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PassengerRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "ana@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "ana@example.com")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*user.Passenger")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPassengerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePassengerCommandHandler(factory, fixedClock())
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreatePassengerCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	existing := testPassenger(t)
	cmd, err := commands.NewCreatePassengerCommand(kernel.NewUUID(),
		"Another Ana", existing.Email(), "+995577999888", "")
	require.NoError(t, err)

	repo := new(MockPassengerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PassengerRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, existing.Email()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPassengerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePassengerCommandHandler(factory, fixedClock())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrEmailAlreadyRegistered)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreatePassengerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockPassengerUoWFactory)
	h := commands.NewCreatePassengerCommandHandler(factory, fixedClock())

	err := h.Handle(ctx, commands.CreatePassengerCommand{})
	require.Error(t, err)
}
