package commands

import (
	"context"
	"time"

	"swiftdrop/internal/core/domain/model/address"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
)

// CreateAddressCommandHandler stores a new address owned by the caller.
type CreateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
	now        func() time.Time
}

func NewCreateAddressCommandHandler(uowFactory AddressUoWFactory) CreateAddressCommandHandler {
	return CreateAddressCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h CreateAddressCommandHandler) Handle(ctx context.Context, cmd CreateAddressCommand) (*address.Address, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := address.NewAddress(kernel.NewID(), cmd.Identity().UserID(), cmd.Fields(), h.now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, errs.AsInternal("failed to create address", err)
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AddressRepository().Add(ctx, created); err != nil {
		return nil, errs.AsInternal("failed to create address", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.AsInternal("failed to create address", err)
	}

	return created, nil
}
