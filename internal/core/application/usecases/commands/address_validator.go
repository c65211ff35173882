package commands

import (
	"context"
	"errors"

	"swiftdrop/internal/core/domain/model/address"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/ports"
	"swiftdrop/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// AddressValidator confirms that the pickup and delivery addresses of an order
// exist and belong to the ordering user. It has no side effects.
type AddressValidator struct {
	addresses ports.AddressRepository
}

func NewAddressValidator(addresses ports.AddressRepository) AddressValidator {
	return AddressValidator{addresses: addresses}
}

// Validate looks both addresses up concurrently. When both are missing the
// pickup address is reported.
func (v AddressValidator) Validate(
	ctx context.Context,
	userID, pickupID, deliveryID kernel.ID,
) (*address.Address, *address.Address, error) {
	var (
		g                     errgroup.Group
		pickup, delivery      *address.Address
		pickupErr, deliverErr error
	)

	g.Go(func() error {
		pickup, pickupErr = v.addresses.GetOwned(ctx, pickupID, userID)
		return nil
	})
	g.Go(func() error {
		delivery, deliverErr = v.addresses.GetOwned(ctx, deliveryID, userID)
		return nil
	})
	_ = g.Wait()

	if pickupErr != nil {
		return nil, nil, lookupError("pickup address", pickupID, pickupErr)
	}
	if deliverErr != nil {
		return nil, nil, lookupError("delivery address", deliveryID, deliverErr)
	}

	return pickup, delivery, nil
}

func lookupError(param string, id kernel.ID, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewObjectNotFoundError(param, id.String())
	}
	return err
}
