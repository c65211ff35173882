package commands

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a delivery order on behalf
// of a verified user.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(identity, pickupID, deliveryID, order.Details{
//	    ItemDescription: "Two boxes of books",
//	})
//	if err != nil {
//	    return err // validation failed, nothing was read or written
//	}
//	view, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	identity          user.Identity
	pickupAddressID   kernel.ID
	deliveryAddressID kernel.ID
	details           order.Details

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the identity, both address ids, that the
// addresses differ, and the item details.
func NewPlaceOrderCommand(
	identity user.Identity,
	pickupAddressID, deliveryAddressID string,
	details order.Details,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIdentity(identity),
		cmd.setAddressIDs(pickupAddressID, deliveryAddressID),
		cmd.setDetails(details),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Identity() user.Identity {
	return c.identity
}

func (c PlaceOrderCommand) PickupAddressID() kernel.ID {
	return c.pickupAddressID
}

func (c PlaceOrderCommand) DeliveryAddressID() kernel.ID {
	return c.deliveryAddressID
}

func (c PlaceOrderCommand) Details() order.Details {
	return c.details
}

func (c *PlaceOrderCommand) setIdentity(identity user.Identity) error {
	if err := identity.Validate(); err != nil {
		return err
	}
	c.identity = identity
	return nil
}

func (c *PlaceOrderCommand) setAddressIDs(pickupAddressID, deliveryAddressID string) error {
	if pickupAddressID == "" || deliveryAddressID == "" {
		return errors.Join(
			requiredString("pickup address id", pickupAddressID),
			requiredString("delivery address id", deliveryAddressID),
		)
	}
	if pickupAddressID == deliveryAddressID {
		return errs.NewValueIsInvalidError("pickup and delivery addresses must be different")
	}

	pickup, err := kernel.IDFromString(pickupAddressID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickup address id", err)
	}
	delivery, err := kernel.IDFromString(deliveryAddressID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("delivery address id", err)
	}

	c.pickupAddressID = pickup
	c.deliveryAddressID = delivery
	return nil
}

func (c *PlaceOrderCommand) setDetails(details order.Details) error {
	if err := order.ValidateDetails(details); err != nil {
		return err
	}
	c.details = details
	return nil
}

func requiredString(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
