package commands_test

import (
	"errors"
	"testing"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/domain/model/address"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newIdentity(t *testing.T) user.Identity {
	t.Helper()
	identity, err := user.NewIdentity(kernel.NewID(), user.RoleUser)
	require.NoError(t, err)
	return identity
}

func TestCreateAddressCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	identity := newIdentity(t)
	cmd, err := commands.NewCreateAddressCommand(identity, address.Fields{
		Label: "Home", Street: "12 Baker St", City: "London", Country: "UK",
	})
	require.NoError(t, err)

	repo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AddressRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*address.Address")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateAddressCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, created.IsOwnedBy(identity.UserID()))
	assert.Equal(t, "London", created.City())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateAddressCommandHandler_Handle_InvalidFields(t *testing.T) {
	cmd, err := commands.NewCreateAddressCommand(newIdentity(t), address.Fields{Street: "12 Baker St"})
	require.NoError(t, err)
	factory := new(MockAddressUoWFactory)

	h := commands.NewCreateAddressCommandHandler(factory)
	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateAddressCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateAddressCommand(newIdentity(t), address.Fields{Street: "1 Road", City: "Paris"})
	require.NoError(t, err)

	repo := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AddressRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.Anything).Return(errors.New("disk full")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateAddressCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInternal)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewCreateAddressCommand_RequiresIdentity(t *testing.T) {
	_, err := commands.NewCreateAddressCommand(user.Identity{}, address.Fields{Street: "1 Road", City: "Paris"})
	require.ErrorIs(t, err, user.ErrIdentityIsNotConstructed)
}
