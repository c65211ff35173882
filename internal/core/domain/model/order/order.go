package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	MaxItemDescriptionLength     = 500
	MaxSpecialInstructionsLength = 1000
)

// MaxEstimatedValue is the largest value a numeric(10,2) column holds.
var MaxEstimatedValue = decimal.RequireFromString("99999999.99")

var ErrOrderIsNotConstructed = errors.New("Order must be created via PlaceOrder or RestoreOrder constructor")

// Details describe the item to deliver. Optional fields are nil when absent.
type Details struct {
	ItemDescription     string
	ItemImage           *string
	SpecialInstructions *string
	EstimatedValue      *decimal.Decimal
	ScheduledPickup     *time.Time
}

// Order is the aggregate root of a delivery request.
//
// Order follows these invariants:
//   - pickup and delivery address ids are valid and different
//   - details satisfy the length and range rules of the package
//   - charges are constructed and immutable
//   - tracking history is append-only and ordered by timestamp
type Order struct {
	id                kernel.ID
	userID            kernel.ID
	pickupAddressID   kernel.ID
	deliveryAddressID kernel.ID
	details           Details
	charges           Charges
	status            Status
	riderID           *kernel.ID
	tracking          []*TrackingEntry
	createdAt         time.Time

	isConstructed bool
}

// PlaceOrder creates a PENDING order and records its first tracking entry.
// Scheduled pickup, when present, must be after now.
//
// Example:
//
//	o, err := order.PlaceOrder(kernel.NewID(), identity.UserID(), pickupID, deliveryID,
//	    order.Details{ItemDescription: "Birthday cake"}, charges, time.Now())
func PlaceOrder(
	id, userID, pickupAddressID, deliveryAddressID kernel.ID,
	details Details,
	charges Charges,
	now time.Time,
) (*Order, error) {
	now = now.UTC()
	o := &Order{
		status:        Pending,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIDs(id, userID, pickupAddressID, deliveryAddressID),
		o.setDetails(details),
		validateScheduledPickup(details.ScheduledPickup, now),
		o.setCharges(charges),
	); err != nil {
		return nil, err
	}

	entry, err := NewTrackingEntry(kernel.NewID(), Pending, PlacedNote, now)
	if err != nil {
		return nil, err
	}
	o.tracking = append(o.tracking, entry)

	return o, nil
}

// RestoreOrder rebuilds a persisted order. Time-relative placement rules are
// not re-checked. Tracking entries are kept in timestamp order.
func RestoreOrder(
	id, userID, pickupAddressID, deliveryAddressID kernel.ID,
	details Details,
	charges Charges,
	status Status,
	riderID *kernel.ID,
	tracking []*TrackingEntry,
	createdAt time.Time,
) (*Order, error) {
	history := append([]*TrackingEntry(nil), tracking...)
	slices.SortStableFunc(history, func(a, b *TrackingEntry) int {
		return a.Timestamp().Compare(b.Timestamp())
	})

	o := &Order{
		riderID:       riderID,
		tracking:      history,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIDs(id, userID, pickupAddressID, deliveryAddressID),
		o.setDetails(details),
		o.setCharges(charges),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) UserID() kernel.ID {
	return o.userID
}

func (o *Order) PickupAddressID() kernel.ID {
	return o.pickupAddressID
}

func (o *Order) DeliveryAddressID() kernel.ID {
	return o.deliveryAddressID
}

func (o *Order) Details() Details {
	return o.details
}

func (o *Order) Charges() Charges {
	return o.charges
}

func (o *Order) Status() Status {
	return o.status
}

// RiderID is nil until a rider is assigned.
func (o *Order) RiderID() *kernel.ID {
	return o.riderID
}

// Tracking returns the history newest first, whatever order the entries
// were supplied in.
func (o *Order) Tracking() []*TrackingEntry {
	history := append([]*TrackingEntry(nil), o.tracking...)
	slices.Reverse(history)
	return history
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID kernel.ID) bool {
	return o.userID.IsEqual(userID)
}

func (o *Order) setIDs(id, userID, pickupAddressID, deliveryAddressID kernel.ID) error {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		pickupAddressID.Validate(),
		deliveryAddressID.Validate(),
	); err != nil {
		return err
	}
	if pickupAddressID.IsEqual(deliveryAddressID) {
		return errs.NewValueIsInvalidError("pickup and delivery addresses must be different")
	}

	o.id = id
	o.userID = userID
	o.pickupAddressID = pickupAddressID
	o.deliveryAddressID = deliveryAddressID
	return nil
}

func (o *Order) setDetails(details Details) error {
	if err := ValidateDetails(details); err != nil {
		return err
	}
	details.ItemDescription = strings.TrimSpace(details.ItemDescription)
	o.details = details
	return nil
}

func (o *Order) setCharges(charges Charges) error {
	if err := charges.Validate(); err != nil {
		return err
	}
	o.charges = charges
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// ValidateDetails checks the item rules that do not depend on time.
func ValidateDetails(details Details) error {
	var errList []error

	description := strings.TrimSpace(details.ItemDescription)
	switch {
	case description == "":
		errList = append(errList, errs.NewValueIsRequiredError("item description"))
	case utf8.RuneCountInString(details.ItemDescription) > MaxItemDescriptionLength:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("item description is too long",
			fmt.Errorf("item description cannot exceed %d characters", MaxItemDescriptionLength)))
	}

	if details.SpecialInstructions != nil &&
		utf8.RuneCountInString(*details.SpecialInstructions) > MaxSpecialInstructionsLength {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("special instructions are too long",
			fmt.Errorf("special instructions cannot exceed %d characters", MaxSpecialInstructionsLength)))
	}

	if value := details.EstimatedValue; value != nil &&
		(value.IsNegative() || value.GreaterThan(MaxEstimatedValue)) {
		errList = append(errList, errs.NewValueIsOutOfRangeError("estimated value",
			value.String(), decimal.Zero, MaxEstimatedValue))
	}

	return errors.Join(errList...)
}

func validateScheduledPickup(scheduledPickup *time.Time, now time.Time) error {
	if scheduledPickup == nil {
		return nil
	}
	if !scheduledPickup.After(now) {
		return errs.NewValueIsInvalidErrorWithCause("scheduled pickup is invalid",
			fmt.Errorf("%s is not in the future", scheduledPickup.Format(time.RFC3339)))
	}
	return nil
}
